package actionlog

import (
	"net/http"

	"github.com/MieMoo/recruitment-module/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ACTIONLOG")

// Error codes
var (
	CodeEntryNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Action log entry not found")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrEntryNotFound() *errx.Error {
	return ErrRegistry.New(CodeEntryNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
