package workhistory

import (
	"context"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

type Repository interface {
	// Create appends a new record
	Create(ctx context.Context, record *Record) error

	// ListByApplicant retrieves an applicant's records, most recent job first
	ListByApplicant(ctx context.Context, applicantID kernel.ApplicantID) ([]Record, error)
}
