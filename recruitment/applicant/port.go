package applicant

import (
	"context"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

type Repository interface {
	// Create creates a new applicant and writes the intake action log entry
	// in one transaction.
	Create(ctx context.Context, a *Applicant, logAction, actor string) error

	// GetByID retrieves an applicant by ID
	GetByID(ctx context.Context, id kernel.ApplicantID) (*Applicant, error)

	// List retrieves applicants matching the filter with pagination
	List(ctx context.Context, filter ListFilter) (*kernel.Paginated[Applicant], error)

	// ListByStatuses retrieves all applicants in any of the given statuses
	ListByStatuses(ctx context.Context, statuses []Status) ([]Applicant, error)

	// FindMatches retrieves applicants sharing a full name, email or phone
	FindMatches(ctx context.Context, firstName kernel.FirstName, lastName kernel.LastName, email kernel.Email, phone kernel.Phone) ([]Applicant, error)

	// AdvanceStatus moves an applicant to a new status, writes the action log
	// entry and removes scheduled interviews when the status is terminal, all
	// in one transaction. The update only applies when the stored version
	// matches expectedVersion.
	AdvanceStatus(ctx context.Context, id kernel.ApplicantID, newStatus Status, expectedVersion int64, logAction, actor string) error

	// Exists checks if an applicant exists by ID
	Exists(ctx context.Context, id kernel.ApplicantID) (bool, error)

	// StatusCounts counts applicants per status
	StatusCounts(ctx context.Context) (map[Status]int64, error)

	// CountHiredSince counts applicants hired at or after the given time
	CountHiredSince(ctx context.Context, since time.Time) (int64, error)

	// ListRecent retrieves the most recently applied applicants
	ListRecent(ctx context.Context, limit int) ([]Applicant, error)
}
