// Package auth provides staff credential sign-in and session management.
package auth

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

// Config holds authentication settings.
type Config struct {
	JWT JWTConfig
}

type JWTConfig struct {
	SecretKey  string
	Issuer     string
	SessionTTL time.Duration
}

// DefaultConfig returns sane defaults; the secret must be provided.
func DefaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			Issuer:     "recruitment-module",
			SessionTTL: 12 * time.Hour,
		},
	}
}

// Credentials is the sign-in payload.
type Credentials struct {
	Email    kernel.Email `json:"email"`
	Password string       `json:"password"`
}

// Session is the process-wide record of a signed-in staff member. It is
// created on sign-in, mirrored in the session store, and torn down on
// sign-out.
type Session struct {
	ID        kernel.SessionID `json:"id"`
	StaffID   kernel.StaffID   `json:"staff_id"`
	Email     kernel.Email     `json:"email"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
