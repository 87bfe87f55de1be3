package authinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MieMoo/recruitment-module/pkg/iam/auth"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresStaffRepository struct {
	db *sqlx.DB
}

func NewPostgresStaffRepository(db *sqlx.DB) auth.StaffRepository {
	return &PostgresStaffRepository{db: db}
}

// GetByEmail retrieves a staff member by email
func (r *PostgresStaffRepository) GetByEmail(ctx context.Context, email kernel.Email) (*auth.Staff, error) {
	query := `
		SELECT id, email, name, password_hash, active, created_at
		FROM staff
		WHERE email = $1
	`

	var staff auth.Staff
	err := r.db.GetContext(ctx, &staff, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrStaffNotFound().WithDetail("email", email.String())
	}
	if err != nil {
		return nil, err
	}

	return &staff, nil
}

// GetByID retrieves a staff member by ID
func (r *PostgresStaffRepository) GetByID(ctx context.Context, id kernel.StaffID) (*auth.Staff, error) {
	query := `
		SELECT id, email, name, password_hash, active, created_at
		FROM staff
		WHERE id = $1
	`

	var staff auth.Staff
	err := r.db.GetContext(ctx, &staff, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrStaffNotFound().WithDetail("id", id.String())
	}
	if err != nil {
		return nil, err
	}

	return &staff, nil
}
