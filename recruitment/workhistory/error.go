package workhistory

import (
	"net/http"

	"github.com/MieMoo/recruitment-module/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("WORKHISTORY")

// Error codes
var (
	CodeRecordNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Work history record not found")
	CodeInvalidDateRange = ErrRegistry.Register("INVALID_DATE_RANGE", errx.TypeValidation, http.StatusBadRequest, "End date precedes start date")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrRecordNotFound() *errx.Error {
	return ErrRegistry.New(CodeRecordNotFound)
}

func ErrInvalidDateRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidDateRange)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
