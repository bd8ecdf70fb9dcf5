package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/casemark/strategist/internal/auth"
	"github.com/casemark/strategist/internal/cache"
	"github.com/casemark/strategist/internal/storage"
)

// CaseRequest represents a create/update case request body
type CaseRequest struct {
	Title            string          `json:"title"`
	PracticeArea     string          `json:"practice_area"`
	Offence          string          `json:"offence,omitempty"`
	SpecificIntent   bool            `json:"specific_intent,omitempty"`
	ProceduralStatus string          `json:"procedural_status,omitempty"`
	Input            json.RawMessage `json:"input,omitempty"` // dependencies, elements, position, timeline
}

// DocumentRequest represents an add-document request body
type DocumentRequest struct {
	Name          string          `json:"name"`
	Type          string          `json:"type,omitempty"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
}

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetMemberFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	memberID, err := uuid.Parse(claims.MemberID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	cases, err := s.caseRepo.GetByMemberID(r.Context(), memberID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list cases")
		return
	}

	respondJSON(w, http.StatusOK, cases)
}

func (s *Server) handleCreateCase(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetMemberFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	memberID, err := uuid.Parse(claims.MemberID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	c := &storage.Case{
		MemberID:         memberID,
		Title:            req.Title,
		PracticeArea:     req.PracticeArea,
		Offence:          req.Offence,
		SpecificIntent:   req.SpecificIntent,
		ProceduralStatus: req.ProceduralStatus,
		InputJSON:        req.Input,
	}
	if err := s.caseRepo.Create(r.Context(), c); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create case")
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleGetCase(w http.ResponseWriter, r *http.Request) {
	c, ok := s.ownedCase(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateCase(w http.ResponseWriter, r *http.Request) {
	c, ok := s.ownedCase(w, r)
	if !ok {
		return
	}

	var req CaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title != "" {
		c.Title = req.Title
	}
	if req.PracticeArea != "" {
		c.PracticeArea = req.PracticeArea
	}
	if req.Offence != "" {
		c.Offence = req.Offence
	}
	c.SpecificIntent = req.SpecificIntent
	if req.ProceduralStatus != "" {
		c.ProceduralStatus = req.ProceduralStatus
	}
	if len(req.Input) > 0 {
		c.InputJSON = req.Input
	}

	if err := s.caseRepo.Update(r.Context(), c); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update case")
		return
	}

	// Inputs changed; any cached report for the case is stale.
	docs, _ := s.documentRepo.GetByCaseID(r.Context(), c.ID)
	s.reports.Invalidate(cache.Fingerprint(c.ID.String(), toModelDocuments(docs)))

	respondJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCase(w http.ResponseWriter, r *http.Request) {
	c, ok := s.ownedCase(w, r)
	if !ok {
		return
	}

	if err := s.documentRepo.DeleteByCaseID(r.Context(), c.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete case documents")
		return
	}
	if err := s.caseRepo.Delete(r.Context(), c.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete case")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	c, ok := s.ownedCase(w, r)
	if !ok {
		return
	}

	docs, err := s.documentRepo.GetByCaseID(r.Context(), c.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	c, ok := s.ownedCase(w, r)
	if !ok {
		return
	}

	var req DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	hash := contentHash(req.Name, req.ExtractedJSON)
	if existing, err := s.documentRepo.GetByHash(r.Context(), c.ID, hash); err == nil && existing != nil {
		respondJSON(w, http.StatusOK, existing)
		return
	}

	doc := &storage.Document{
		CaseID:        c.ID,
		Name:          req.Name,
		Type:          req.Type,
		ContentHash:   hash,
		ExtractedJSON: req.ExtractedJSON,
	}
	if err := s.documentRepo.Create(r.Context(), doc); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to add document")
		return
	}

	respondJSON(w, http.StatusCreated, doc)
}

// ownedCase loads the case from the URL and enforces ownership.
func (s *Server) ownedCase(w http.ResponseWriter, r *http.Request) (*storage.Case, bool) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		respondError(w, http.StatusBadRequest, "case id is required")
		return nil, false
	}

	id, err := uuid.Parse(caseID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid case id")
		return nil, false
	}

	c, err := s.caseRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch case")
		return nil, false
	}
	if c == nil {
		respondError(w, http.StatusNotFound, "case not found")
		return nil, false
	}

	claims, ok := auth.GetMemberFromContext(r.Context())
	if !ok || c.MemberID.String() != claims.MemberID {
		respondError(w, http.StatusForbidden, "access denied")
		return nil, false
	}

	return c, true
}

func contentHash(name string, payload []byte) string {
	h := sha256.New()
	h.Write([]byte(name))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
