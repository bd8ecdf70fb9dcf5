package api

import (
	"encoding/json"
	"net/http"

	"github.com/casemark/strategist/internal/cache"
	"github.com/casemark/strategist/internal/storage"
	"github.com/casemark/strategist/pkg/models"
)

// caseInputExtras holds the parts of a CaseInput stored as the case's raw
// input blob: everything external collaborators supply that isn't a column.
type caseInputExtras struct {
	Timeline       []models.TimelineEvent `json:"timeline,omitempty"`
	Elements       []models.ElementState  `json:"elements,omitempty"`
	Dependencies   []models.Dependency    `json:"dependencies,omitempty"`
	Position       *models.CasePosition   `json:"position,omitempty"`
	ExtractedText  string                 `json:"extracted_text,omitempty"`
	RawProbability *float64               `json:"raw_probability,omitempty"`
}

// handleStrategy computes (or serves from cache) the full strategic
// work-up for a case.
func (s *Server) handleStrategy(w http.ResponseWriter, r *http.Request) {
	report, ok := s.caseReport(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleStrategyRoutes(w http.ResponseWriter, r *http.Request) {
	report, ok := s.caseReport(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, report.Routes)
}

func (s *Server) handleStrategyMoves(w http.ResponseWriter, r *http.Request) {
	report, ok := s.caseReport(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"moves":    report.Moves,
		"optics":   report.MoveOptics,
		"warnings": report.Warnings,
		"cost":     report.Cost,
	})
}

func (s *Server) handleStrategyObservations(w http.ResponseWriter, r *http.Request) {
	report, ok := s.caseReport(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, report.Observations)
}

func (s *Server) handleStrategyImpacts(w http.ResponseWriter, r *http.Request) {
	report, ok := s.caseReport(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, report.Impacts)
}

func (s *Server) handleStrategyTriggers(w http.ResponseWriter, r *http.Request) {
	report, ok := s.caseReport(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, report.Triggers)
}

// caseReport assembles the engine input for an owned case and runs the
// engine, consulting the fingerprint-keyed cache first.
func (s *Server) caseReport(w http.ResponseWriter, r *http.Request) (models.Report, bool) {
	c, ok := s.ownedCase(w, r)
	if !ok {
		return models.Report{}, false
	}

	docs, err := s.documentRepo.GetByCaseID(r.Context(), c.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch documents")
		return models.Report{}, false
	}

	input := buildCaseInput(c, docs)
	key := cache.Fingerprint(input.CaseID, input.Documents)
	if report, hit := s.reports.Get(key); hit {
		return report, true
	}

	report := s.engine.Analyze(r.Context(), input)
	s.reports.Set(key, report)
	return report, true
}

func buildCaseInput(c *storage.Case, docs []*storage.Document) models.CaseInput {
	var extras caseInputExtras
	if len(c.InputJSON) > 0 {
		// Malformed extras degrade to empty, never fail the request.
		_ = json.Unmarshal(c.InputJSON, &extras)
	}

	return models.CaseInput{
		CaseID:       c.ID.String(),
		PracticeArea: c.PracticeArea,
		Charge: models.Charge{
			Offence:        c.Offence,
			SpecificIntent: c.SpecificIntent,
		},
		Documents:        toModelDocuments(docs),
		Timeline:         extras.Timeline,
		Elements:         extras.Elements,
		Dependencies:     extras.Dependencies,
		Position:         extras.Position,
		ProceduralStatus: models.ProceduralStatus(c.ProceduralStatus),
		ExtractedText:    extras.ExtractedText,
		RawProbability:   extras.RawProbability,
	}
}

func toModelDocuments(docs []*storage.Document) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.Document{
			ID:            doc.ID.String(),
			Name:          doc.Name,
			Type:          doc.Type,
			CreatedAt:     doc.CreatedAt,
			ExtractedJSON: doc.ExtractedJSON,
		})
	}
	return out
}
