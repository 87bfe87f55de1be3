package auth

import (
	"net/http"

	"github.com/MieMoo/recruitment-module/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeInvalidCredentials = ErrRegistry.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password")
	CodeStaffNotFound      = ErrRegistry.Register("STAFF_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Staff account not found")
	CodeStaffInactive      = ErrRegistry.Register("STAFF_INACTIVE", errx.TypeBusiness, http.StatusForbidden, "Staff account is inactive")
	CodeMissingToken       = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization token")
	CodeInvalidToken       = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeSessionNotFound    = ErrRegistry.Register("SESSION_NOT_FOUND", errx.TypeAuthentication, http.StatusUnauthorized, "Session not found or signed out")
	CodeSessionExpired     = ErrRegistry.Register("SESSION_EXPIRED", errx.TypeAuthentication, http.StatusUnauthorized, "Session has expired")
	CodeInvalidRequest     = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrStaffNotFound() *errx.Error {
	return ErrRegistry.New(CodeStaffNotFound)
}

func ErrStaffInactive() *errx.Error {
	return ErrRegistry.New(CodeStaffInactive)
}

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrSessionNotFound() *errx.Error {
	return ErrRegistry.New(CodeSessionNotFound)
}

func ErrSessionExpired() *errx.Error {
	return ErrRegistry.New(CodeSessionExpired)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
