package applicant

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"slices"
)

// Status represents the stage of an applicant in the hiring pipeline
type Status string

const (
	StatusApplied          Status = "Applied"           // Initial intake
	StatusPendingInterview Status = "Pending Interview" // Interview scheduled
	StatusOfferSent        Status = "Offer Sent"        // Offer extended
	StatusHired            Status = "Hired"             // Offer accepted
	StatusRejected         Status = "Rejected"          // Out of the pipeline
)

// statusAliases maps legacy labels to their canonical status.
var statusAliases = map[string]Status{
	"Interviewed": StatusPendingInterview,
	"Offered":     StatusOfferSent,
}

// AllStatuses lists every canonical status.
func AllStatuses() []Status {
	return []Status{
		StatusApplied,
		StatusPendingInterview,
		StatusOfferSent,
		StatusHired,
		StatusRejected,
	}
}

// ParseStatus normalizes a status string, accepting legacy aliases.
func ParseStatus(s string) (Status, error) {
	if alias, ok := statusAliases[s]; ok {
		return alias, nil
	}
	status := Status(s)
	if slices.Contains(AllStatuses(), status) {
		return status, nil
	}
	return "", ErrInvalidStatus().WithDetail("status", s)
}

// DisplayLabel returns the label shown in listings. Freshly applied
// applicants read as "New".
func (s Status) DisplayLabel() string {
	if s == StatusApplied {
		return "New"
	}
	return string(s)
}

// IsTerminal reports whether the status ends the interview stage. Reaching
// a terminal status removes the applicant's scheduled interviews.
func (s Status) IsTerminal() bool {
	return s == StatusOfferSent || s == StatusRejected || s == StatusHired
}

// CanTransitionTo checks whether the pipeline allows moving to newStatus.
func (s Status) CanTransitionTo(newStatus Status) bool {
	validTransitions := map[Status][]Status{
		StatusApplied: {
			StatusPendingInterview,
			StatusOfferSent,
			StatusRejected,
		},
		StatusPendingInterview: {
			StatusOfferSent,
			StatusRejected,
			StatusHired,
		},
		StatusOfferSent: {
			StatusHired,
			StatusRejected,
		},
	}

	allowed, ok := validTransitions[s]
	if !ok {
		return false // Hired and Rejected are final
	}

	return slices.Contains(allowed, newStatus)
}

type Applicant struct {
	ID             kernel.ApplicantID    `db:"id" json:"id"`
	FirstName      kernel.FirstName      `db:"first_name" json:"first_name"`
	LastName       kernel.LastName       `db:"last_name" json:"last_name"`
	Email          kernel.Email          `db:"email" json:"email"`
	Phone          kernel.Phone          `db:"phone" json:"phone"`
	Sex            kernel.Sex            `db:"sex" json:"sex"`
	BirthDate      time.Time             `db:"birth_date" json:"birth_date"`
	Address        string                `db:"address" json:"address"`
	Position       kernel.Position       `db:"position" json:"position"`
	EducationLevel kernel.EducationLevel `db:"education_level" json:"education_level"`
	Institution    string                `db:"institution" json:"institution"`
	EducationFrom  *time.Time            `db:"education_from" json:"education_from,omitempty"`
	EducationTo    *time.Time            `db:"education_to" json:"education_to,omitempty"`
	Source         kernel.Source         `db:"source" json:"source"`
	Notes          string                `db:"notes" json:"notes"`
	ResumeURL      kernel.BucketURL      `db:"resume_url" json:"resume_url"`
	Status         Status                `db:"status" json:"status"`
	Version        int64                 `db:"version" json:"version"`
	AppliedAt      time.Time             `db:"applied_at" json:"applied_at"`
	UpdatedAt      time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// FullName returns the applicant's display name
func (a *Applicant) FullName() string {
	return a.FirstName.String() + " " + a.LastName.String()
}

// Age derives the applicant's age from birth year alone.
func (a *Applicant) Age(now time.Time) int {
	return now.Year() - a.BirthDate.Year()
}

// InPipeline reports whether the applicant still has an open interview stage
func (a *Applicant) InPipeline() bool {
	return !a.Status.IsTerminal()
}

// ValidateTransition checks a status change against the pipeline rules
func (a *Applicant) ValidateTransition(newStatus Status) error {
	if !a.Status.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", a.Status).
			WithDetail("new_status", newStatus)
	}
	return nil
}
