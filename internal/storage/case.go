package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Case represents a litigation matter in the system
type Case struct {
	ID               uuid.UUID
	MemberID         uuid.UUID
	Title            string
	PracticeArea     string
	Offence          string
	SpecificIntent   bool
	ProceduralStatus string
	InputJSON        json.RawMessage // dependencies, elements, recorded position
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CaseRepository defines the interface for case storage operations
type CaseRepository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*Case, error)
	GetByMemberID(ctx context.Context, memberID uuid.UUID) ([]*Case, error)
	Update(ctx context.Context, c *Case) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PostgresCaseRepository implements CaseRepository using PostgreSQL
type PostgresCaseRepository struct {
	db *sql.DB
}

// NewPostgresCaseRepository creates a new PostgresCaseRepository
func NewPostgresCaseRepository(db *sql.DB) *PostgresCaseRepository {
	return &PostgresCaseRepository{db: db}
}

// Create inserts a new case into the database
func (r *PostgresCaseRepository) Create(ctx context.Context, c *Case) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	query := `
		INSERT INTO cases (id, member_id, title, practice_area, offence, specific_intent, procedural_status, input_json, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.MemberID,
		c.Title,
		c.PracticeArea,
		c.Offence,
		c.SpecificIntent,
		c.ProceduralStatus,
		c.InputJSON,
		c.CreatedAt,
		c.UpdatedAt,
	)

	return err
}

// GetByID retrieves a case by its ID
func (r *PostgresCaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*Case, error) {
	query := `
		SELECT id, member_id, title, practice_area, offence, specific_intent, procedural_status, input_json, created_at, updated_at
		FROM cases
		WHERE id = $1
	`

	c := &Case{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.MemberID,
		&c.Title,
		&c.PracticeArea,
		&c.Offence,
		&c.SpecificIntent,
		&c.ProceduralStatus,
		&c.InputJSON,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// GetByMemberID retrieves all cases owned by a member
func (r *PostgresCaseRepository) GetByMemberID(ctx context.Context, memberID uuid.UUID) ([]*Case, error) {
	query := `
		SELECT id, member_id, title, practice_area, offence, specific_intent, procedural_status, input_json, created_at, updated_at
		FROM cases
		WHERE member_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*Case
	for rows.Next() {
		c := &Case{}
		err := rows.Scan(
			&c.ID,
			&c.MemberID,
			&c.Title,
			&c.PracticeArea,
			&c.Offence,
			&c.SpecificIntent,
			&c.ProceduralStatus,
			&c.InputJSON,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cases, nil
}

// Update modifies an existing case
func (r *PostgresCaseRepository) Update(ctx context.Context, c *Case) error {
	c.UpdatedAt = time.Now()

	query := `
		UPDATE cases
		SET title = $2, practice_area = $3, offence = $4, specific_intent = $5, procedural_status = $6, input_json = $7, updated_at = $8
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.PracticeArea,
		c.Offence,
		c.SpecificIntent,
		c.ProceduralStatus,
		c.InputJSON,
		c.UpdatedAt,
	)

	return err
}

// Delete removes a case from the database
func (r *PostgresCaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cases WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
