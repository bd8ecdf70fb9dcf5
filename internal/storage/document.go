package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents a case document and its extraction payload
type Document struct {
	ID            uuid.UUID
	CaseID        uuid.UUID
	Name          string
	Type          string
	ContentHash   string
	ExtractedJSON json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DocumentRepository defines the interface for document storage operations
type DocumentRepository interface {
	Create(ctx context.Context, document *Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	GetByCaseID(ctx context.Context, caseID uuid.UUID) ([]*Document, error)
	GetByHash(ctx context.Context, caseID uuid.UUID, hash string) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCaseID(ctx context.Context, caseID uuid.UUID) error
}

// PostgresDocumentRepository implements DocumentRepository using PostgreSQL
type PostgresDocumentRepository struct {
	db *sql.DB
}

// NewPostgresDocumentRepository creates a new PostgresDocumentRepository
func NewPostgresDocumentRepository(db *sql.DB) *PostgresDocumentRepository {
	return &PostgresDocumentRepository{db: db}
}

// Create inserts a new document into the database
func (r *PostgresDocumentRepository) Create(ctx context.Context, document *Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}

	now := time.Now()
	if document.CreatedAt.IsZero() {
		document.CreatedAt = now
	}
	if document.UpdatedAt.IsZero() {
		document.UpdatedAt = now
	}

	query := `
		INSERT INTO documents (id, case_id, name, type, content_hash, extracted_json, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		document.ID,
		document.CaseID,
		document.Name,
		document.Type,
		document.ContentHash,
		document.ExtractedJSON,
		document.CreatedAt,
		document.UpdatedAt,
	)

	return err
}

// GetByID retrieves a document by its ID
func (r *PostgresDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	query := `
		SELECT id, case_id, name, type, content_hash, extracted_json, created_at, updated_at
		FROM documents
		WHERE id = $1
	`

	document := &Document{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&document.ID,
		&document.CaseID,
		&document.Name,
		&document.Type,
		&document.ContentHash,
		&document.ExtractedJSON,
		&document.CreatedAt,
		&document.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return document, nil
}

// GetByCaseID retrieves all documents for a case
func (r *PostgresDocumentRepository) GetByCaseID(ctx context.Context, caseID uuid.UUID) ([]*Document, error) {
	query := `
		SELECT id, case_id, name, type, content_hash, extracted_json, created_at, updated_at
		FROM documents
		WHERE case_id = $1
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*Document
	for rows.Next() {
		document := &Document{}
		err := rows.Scan(
			&document.ID,
			&document.CaseID,
			&document.Name,
			&document.Type,
			&document.ContentHash,
			&document.ExtractedJSON,
			&document.CreatedAt,
			&document.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}

// GetByHash retrieves a document by its content hash within a case
func (r *PostgresDocumentRepository) GetByHash(ctx context.Context, caseID uuid.UUID, hash string) (*Document, error) {
	query := `
		SELECT id, case_id, name, type, content_hash, extracted_json, created_at, updated_at
		FROM documents
		WHERE case_id = $1 AND content_hash = $2
	`

	document := &Document{}
	err := r.db.QueryRowContext(ctx, query, caseID, hash).Scan(
		&document.ID,
		&document.CaseID,
		&document.Name,
		&document.Type,
		&document.ContentHash,
		&document.ExtractedJSON,
		&document.CreatedAt,
		&document.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return document, nil
}

// Delete removes a document from the database
func (r *PostgresDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// DeleteByCaseID removes all documents for a case
func (r *PostgresDocumentRepository) DeleteByCaseID(ctx context.Context, caseID uuid.UUID) error {
	query := `DELETE FROM documents WHERE case_id = $1`
	_, err := r.db.ExecContext(ctx, query, caseID)
	return err
}
