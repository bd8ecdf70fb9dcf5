package auth

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// PostgresRepository implements MemberRepository using PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new member into the database
func (r *PostgresRepository) Create(ctx context.Context, member *Member) error {
	member.ID = uuid.New().String()

	query := `
		INSERT INTO members (id, email, name, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		member.ID,
		member.Email,
		member.Name,
		member.Role,
		member.PasswordHash,
		member.CreatedAt,
		member.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// GetByID retrieves a member by their ID
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Member, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at, updated_at
		FROM members
		WHERE id = $1
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Email,
		&member.Name,
		&member.Role,
		&member.PasswordHash,
		&member.CreatedAt,
		&member.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member by ID: %w", err)
	}

	return member, nil
}

// GetByEmail retrieves a member by their email address
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Member, error) {
	query := `
		SELECT id, email, name, role, password_hash, created_at, updated_at
		FROM members
		WHERE email = $1
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&member.ID,
		&member.Email,
		&member.Name,
		&member.Role,
		&member.PasswordHash,
		&member.CreatedAt,
		&member.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}

	return member, nil
}
