package auth

import (
	"context"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/google/uuid"
)

// LoginResult is what a successful login returns to the caller.
type LoginResult struct {
	Token   string   `json:"token"`
	Session *Session `json:"session"`
}

// AuthService authenticates staff and manages their sessions.
type AuthService struct {
	staffRepo StaffRepository
	passwords PasswordService
	tokens    TokenService
	sessions  SessionStore
	cfg       Config
}

// NewAuthService creates the authentication service.
func NewAuthService(
	staffRepo StaffRepository,
	passwords PasswordService,
	tokens TokenService,
	sessions SessionStore,
	cfg Config,
) *AuthService {
	return &AuthService{
		staffRepo: staffRepo,
		passwords: passwords,
		tokens:    tokens,
		sessions:  sessions,
		cfg:       cfg,
	}
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	if !creds.Email.IsValid() || creds.Password == "" {
		return nil, ErrInvalidCredentials()
	}

	staff, err := s.staffRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		// Hide whether the account exists.
		return nil, ErrInvalidCredentials()
	}
	if !staff.Active {
		return nil, ErrStaffInactive()
	}
	if !s.passwords.Compare(staff.PasswordHash, creds.Password) {
		return nil, ErrInvalidCredentials()
	}

	now := time.Now()
	session := &Session{
		ID:        kernel.NewSessionID(uuid.New().String()),
		StaffID:   staff.ID,
		Email:     staff.Email,
		Name:      staff.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.JWT.SessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(session)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Session: session}, nil
}

// Logout closes the session identified by the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

// CurrentSession resolves a token to its live session.
func (s *AuthService) CurrentSession(ctx context.Context, token string) (*Session, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now()) {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, ErrSessionExpired()
	}
	return session, nil
}
