package auth

import (
	"context"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

// Staff is a recruiting staff account.
type Staff struct {
	ID           kernel.StaffID `db:"id" json:"id"`
	Email        kernel.Email   `db:"email" json:"email"`
	Name         string         `db:"name" json:"name"`
	PasswordHash string         `db:"password_hash" json:"-"`
	Active       bool           `db:"active" json:"active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

// StaffRepository loads staff accounts for authentication.
type StaffRepository interface {
	// GetByEmail retrieves a staff account by email.
	GetByEmail(ctx context.Context, email kernel.Email) (*Staff, error)

	// GetByID retrieves a staff account by ID.
	GetByID(ctx context.Context, id kernel.StaffID) (*Staff, error)
}
