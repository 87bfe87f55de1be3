package auth

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the validated contents of a session token.
type TokenClaims struct {
	SessionID kernel.SessionID
	StaffID   kernel.StaffID
	Email     kernel.Email
	ExpiresAt time.Time
}

// TokenService issues and validates session tokens.
type TokenService interface {
	Generate(session *Session) (string, error)
	Validate(token string) (*TokenClaims, error)
}

type sessionClaims struct {
	StaffID string `json:"staff_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService implements TokenService with HMAC-signed JWTs. The session ID
// travels as the token's JTI so the session store can be consulted on every
// request.
type JWTService struct {
	secretKey []byte
	issuer    string
}

// NewJWTService creates a JWT token service.
func NewJWTService(secretKey, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Generate signs a token carrying the session identity.
func (s *JWTService) Generate(session *Session) (string, error) {
	claims := sessionClaims{
		StaffID: session.StaffID.String(),
		Email:   session.Email.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			Issuer:    s.issuer,
			Subject:   session.StaffID.String(),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate parses and verifies a token, returning its claims.
func (s *JWTService) Validate(tokenString string) (*TokenClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken()
	}

	expiresAt := time.Time{}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		SessionID: kernel.SessionID(claims.ID),
		StaffID:   kernel.StaffID(claims.StaffID),
		Email:     kernel.Email(claims.Email),
		ExpiresAt: expiresAt,
	}, nil
}
