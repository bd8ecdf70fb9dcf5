package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestPostgresCaseRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresCaseRepository(db)

	c := &Case{
		MemberID:         uuid.New(),
		Title:            "R v Smith",
		PracticeArea:     "criminal",
		Offence:          "wounding with intent",
		SpecificIntent:   true,
		ProceduralStatus: "UNKNOWN",
		InputJSON:        json.RawMessage(`{}`),
	}

	mock.ExpectExec("INSERT INTO cases").
		WithArgs(sqlmock.AnyArg(), c.MemberID, c.Title, c.PracticeArea, c.Offence, c.SpecificIntent, c.ProceduralStatus, c.InputJSON, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), c)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if c.ID == uuid.Nil {
		t.Error("expected case ID to be generated")
	}

	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCaseRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresCaseRepository(db)

	caseID := uuid.New()
	memberID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "member_id", "title", "practice_area", "offence", "specific_intent", "procedural_status", "input_json", "created_at", "updated_at"}).
		AddRow(caseID, memberID, "R v Smith", "criminal", "wounding with intent", true, "UNKNOWN", []byte(`{}`), time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM cases WHERE id").
		WithArgs(caseID).
		WillReturnRows(rows)

	c, err := repo.GetByID(context.Background(), caseID)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if c == nil {
		t.Fatal("expected case to be returned")
	}

	if c.ID != caseID || c.PracticeArea != "criminal" || !c.SpecificIntent {
		t.Errorf("unexpected case: %+v", c)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCaseRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresCaseRepository(db)

	caseID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM cases WHERE id").
		WithArgs(caseID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "title", "practice_area", "offence", "specific_intent", "procedural_status", "input_json", "created_at", "updated_at"}))

	c, err := repo.GetByID(context.Background(), caseID)
	if err != nil {
		t.Errorf("expected no error for missing case, got %v", err)
	}

	if c != nil {
		t.Error("expected nil case")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCaseRepository_GetByMemberID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresCaseRepository(db)

	memberID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "member_id", "title", "practice_area", "offence", "specific_intent", "procedural_status", "input_json", "created_at", "updated_at"}).
		AddRow(uuid.New(), memberID, "R v Smith", "criminal", "wounding", true, "UNKNOWN", []byte(`{}`), time.Now(), time.Now()).
		AddRow(uuid.New(), memberID, "Jones v Acme Housing", "housing_disrepair", "", false, "UNKNOWN", []byte(`{}`), time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM cases WHERE member_id").
		WithArgs(memberID).
		WillReturnRows(rows)

	cases, err := repo.GetByMemberID(context.Background(), memberID)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCaseRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresCaseRepository(db)

	c := &Case{
		ID:               uuid.New(),
		Title:            "R v Smith (amended)",
		PracticeArea:     "criminal",
		Offence:          "wounding with intent",
		SpecificIntent:   true,
		ProceduralStatus: "UNSAFE",
		InputJSON:        json.RawMessage(`{"procedural_status":"UNSAFE"}`),
	}

	mock.ExpectExec("UPDATE cases").
		WithArgs(c.ID, c.Title, c.PracticeArea, c.Offence, c.SpecificIntent, c.ProceduralStatus, c.InputJSON, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(context.Background(), c)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresCaseRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresCaseRepository(db)

	caseID := uuid.New()

	mock.ExpectExec("DELETE FROM cases").
		WithArgs(caseID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), caseID)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresDocumentRepository_GetByHash_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresDocumentRepository(db)

	caseID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM documents WHERE case_id").
		WithArgs(caseID, "abc123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "case_id", "name", "type", "content_hash", "extracted_json", "created_at", "updated_at"}))

	document, err := repo.GetByHash(context.Background(), caseID, "abc123")
	if err != nil {
		t.Errorf("expected no error for missing document, got %v", err)
	}

	if document != nil {
		t.Error("expected nil document")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresDocumentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresDocumentRepository(db)

	document := &Document{
		CaseID:        uuid.New(),
		Name:          "custody record",
		Type:          "pdf",
		ContentHash:   "abc123",
		ExtractedJSON: json.RawMessage(`{"summary":"custody record"}`),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), document.CaseID, document.Name, document.Type, document.ContentHash, document.ExtractedJSON, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), document)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if document.ID == uuid.Nil {
		t.Error("expected document ID to be generated")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
