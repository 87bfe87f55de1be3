package actionlog

import (
	"context"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

type Repository interface {
	// Record appends a new entry
	Record(ctx context.Context, entry *Entry) error

	// ListByApplicant retrieves all entries for an applicant, newest first
	ListByApplicant(ctx context.Context, applicantID kernel.ApplicantID) ([]Entry, error)

	// List retrieves entries across applicants with pagination, newest first
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Entry], error)
}
