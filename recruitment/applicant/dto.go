package applicant

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

// IntakeRequest - DTO for registering a new applicant
type IntakeRequest struct {
	FirstName      kernel.FirstName      `json:"first_name" validate:"required"`
	LastName       kernel.LastName       `json:"last_name" validate:"required"`
	Email          kernel.Email          `json:"email" validate:"required"`
	Phone          kernel.Phone          `json:"phone" validate:"required"`
	Sex            kernel.Sex            `json:"sex" validate:"required"`
	BirthDate      string                `json:"birth_date" validate:"required"` // YYYY-MM-DD
	Address        string                `json:"address"`
	Position       kernel.Position       `json:"position" validate:"required"`
	EducationLevel kernel.EducationLevel `json:"education_level"`
	Institution    string                `json:"institution"`
	EducationFrom  string                `json:"education_from"` // YYYY-MM-DD, optional
	EducationTo    string                `json:"education_to"`   // YYYY-MM-DD, optional
	Source         kernel.Source         `json:"source"`
	Notes          string                `json:"notes"`
	ResumeFileName string                `json:"resume_file_name" validate:"required"`
	ResumeData     []byte                `json:"-"` // File data, not serialized
	ContentType    string                `json:"content_type"`
}

// UpdateStatusRequest - Request to move an applicant through the pipeline
type UpdateStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Version int64  `json:"version" validate:"required"`
}

// ListFilter - Filtering options for applicant listings
type ListFilter struct {
	Statuses     []Status                 `json:"statuses,omitempty"`
	Position     kernel.Position          `json:"position,omitempty"`
	Search       string                   `json:"search,omitempty"`
	AppliedAfter *time.Time               `json:"applied_after,omitempty"`
	Pagination   kernel.PaginationOptions `json:"pagination"`
}

// ApplicantResponse - DTO for returning applicant data
type ApplicantResponse struct {
	ID             kernel.ApplicantID    `json:"id"`
	FirstName      kernel.FirstName      `json:"first_name"`
	LastName       kernel.LastName       `json:"last_name"`
	Email          kernel.Email          `json:"email"`
	Phone          kernel.Phone          `json:"phone"`
	Sex            kernel.Sex            `json:"sex"`
	Age            int                   `json:"age"`
	Address        string                `json:"address"`
	Position       kernel.Position       `json:"position"`
	EducationLevel kernel.EducationLevel `json:"education_level"`
	Institution    string                `json:"institution"`
	EducationFrom  *time.Time            `json:"education_from,omitempty"`
	EducationTo    *time.Time            `json:"education_to,omitempty"`
	Source         kernel.Source         `json:"source"`
	Notes          string                `json:"notes"`
	ResumeURL      kernel.BucketURL      `json:"resume_url"`
	Status         Status                `json:"status"`
	StatusLabel    string                `json:"status_label"`
	Version        int64                 `json:"version"`
	AppliedAt      time.Time             `json:"applied_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// NewApplicantResponse builds the response DTO from the entity.
func NewApplicantResponse(a *Applicant) ApplicantResponse {
	return ApplicantResponse{
		ID:             a.ID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		Phone:          a.Phone,
		Sex:            a.Sex,
		Age:            a.Age(time.Now()),
		Address:        a.Address,
		Position:       a.Position,
		EducationLevel: a.EducationLevel,
		Institution:    a.Institution,
		EducationFrom:  a.EducationFrom,
		EducationTo:    a.EducationTo,
		Source:         a.Source,
		Notes:          a.Notes,
		ResumeURL:      a.ResumeURL,
		Status:         a.Status,
		StatusLabel:    a.Status.DisplayLabel(),
		Version:        a.Version,
		AppliedAt:      a.AppliedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// Response type alias for paginated applicants
type PaginatedApplicantsResponse = kernel.Paginated[ApplicantResponse]

// OnboardingApplicantResponse - Row in the onboarding listing
type OnboardingApplicantResponse struct {
	ID          kernel.ApplicantID `json:"id"`
	Name        string             `json:"name"`
	Position    kernel.Position    `json:"position"`
	Status      Status             `json:"status"`
	StatusLabel string             `json:"status_label"`
	Version     int64              `json:"version"`
	AppliedAt   time.Time          `json:"applied_at"`
}
