package interview

import (
	"context"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

type Repository interface {
	// Schedule creates an interview, moves the applicant to the pending
	// interview status and writes the action log entry, all in one
	// transaction.
	Schedule(ctx context.Context, iv *Interview, logAction, actor string) error

	// Reschedule moves an interview to a new time and writes the action log
	// entry in the same transaction. The applicant's status is untouched.
	Reschedule(ctx context.Context, id kernel.InterviewID, newTime time.Time, logAction, actor string) error

	// GetByID retrieves an interview by ID
	GetByID(ctx context.Context, id kernel.InterviewID) (*Interview, error)

	// ListAll retrieves every interview, soonest first
	ListAll(ctx context.Context) ([]Interview, error)

	// ListUpcoming retrieves the next interviews after the given time
	ListUpcoming(ctx context.Context, after time.Time, limit int) ([]Interview, error)

	// ExistsForApplicant checks if the applicant already has an interview
	ExistsForApplicant(ctx context.Context, applicantID kernel.ApplicantID) (bool, error)
}
