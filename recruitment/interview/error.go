package interview

import (
	"net/http"

	"github.com/MieMoo/recruitment-module/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERVIEW")

// Error codes
var (
	CodeInterviewNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Interview not found")
	CodePastDateTime      = ErrRegistry.Register("PAST_DATETIME", errx.TypeValidation, http.StatusBadRequest, "Interview time must be in the future")
	CodeInvalidDateTime   = ErrRegistry.Register("INVALID_DATETIME", errx.TypeValidation, http.StatusBadRequest, "Invalid interview date or time")
	CodeInvalidType       = ErrRegistry.Register("INVALID_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unknown interview type")
	CodeInvalidStatus     = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown interview status")
	CodeNoApplicants      = ErrRegistry.Register("NO_APPLICANTS", errx.TypeValidation, http.StatusBadRequest, "No applicants selected")
	CodeAlreadyScheduled  = ErrRegistry.Register("ALREADY_SCHEDULED", errx.TypeConflict, http.StatusConflict, "Applicant already has a scheduled interview")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrInterviewNotFound() *errx.Error {
	return ErrRegistry.New(CodeInterviewNotFound)
}

func ErrPastDateTime() *errx.Error {
	return ErrRegistry.New(CodePastDateTime)
}

func ErrInvalidDateTime() *errx.Error {
	return ErrRegistry.New(CodeInvalidDateTime)
}

func ErrInvalidType() *errx.Error {
	return ErrRegistry.New(CodeInvalidType)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrNoApplicants() *errx.Error {
	return ErrRegistry.New(CodeNoApplicants)
}

func ErrAlreadyScheduled() *errx.Error {
	return ErrRegistry.New(CodeAlreadyScheduled)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
