package applicant

import (
	"net/http"

	"github.com/MieMoo/recruitment-module/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICANT")

// Error codes
var (
	CodeApplicantNotFound       = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Applicant not found")
	CodeDuplicateApplicant      = ErrRegistry.Register("DUPLICATE", errx.TypeConflict, http.StatusConflict, "Applicant already exists")
	CodeInvalidEmail            = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email address")
	CodeInvalidPhone            = ErrRegistry.Register("INVALID_PHONE", errx.TypeValidation, http.StatusBadRequest, "Invalid phone number")
	CodeInvalidBirthDate        = ErrRegistry.Register("INVALID_BIRTH_DATE", errx.TypeValidation, http.StatusBadRequest, "Invalid birth date")
	CodeMissingResume           = ErrRegistry.Register("MISSING_RESUME", errx.TypeValidation, http.StatusBadRequest, "Resume file is required")
	CodeInvalidStatus           = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown applicant status")
	CodeInvalidStatusTransition = ErrRegistry.Register("INVALID_STATUS_TRANSITION", errx.TypeBusiness, http.StatusBadRequest, "Invalid status transition")
	CodeVersionConflict         = ErrRegistry.Register("VERSION_CONFLICT", errx.TypeConflict, http.StatusConflict, "Applicant was modified by another request")
	CodeInvalidRequest          = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeResumeUploadFailed      = ErrRegistry.Register("RESUME_UPLOAD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Resume upload failed")
)

// Helper functions
func ErrApplicantNotFound() *errx.Error {
	return ErrRegistry.New(CodeApplicantNotFound)
}

func ErrDuplicateApplicant() *errx.Error {
	return ErrRegistry.New(CodeDuplicateApplicant)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrInvalidPhone() *errx.Error {
	return ErrRegistry.New(CodeInvalidPhone)
}

func ErrInvalidBirthDate() *errx.Error {
	return ErrRegistry.New(CodeInvalidBirthDate)
}

func ErrMissingResume() *errx.Error {
	return ErrRegistry.New(CodeMissingResume)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidStatusTransition() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusTransition)
}

func ErrVersionConflict() *errx.Error {
	return ErrRegistry.New(CodeVersionConflict)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrResumeUploadFailed() *errx.Error {
	return ErrRegistry.New(CodeResumeUploadFailed)
}
