package workhistorysrv

import (
	"context"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/errx"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/MieMoo/recruitment-module/recruitment/workhistory"
	"github.com/google/uuid"
)

// WorkHistoryService provides business operations for work history records
type WorkHistoryService struct {
	historyRepo   workhistory.Repository
	applicantRepo applicant.Repository
}

// NewWorkHistoryService creates a new instance of the work history service
func NewWorkHistoryService(
	historyRepo workhistory.Repository,
	applicantRepo applicant.Repository,
) *WorkHistoryService {
	return &WorkHistoryService{
		historyRepo:   historyRepo,
		applicantRepo: applicantRepo,
	}
}

// AddRecord appends a work history record to an applicant
func (s *WorkHistoryService) AddRecord(ctx context.Context, applicantID kernel.ApplicantID, req workhistory.AddRecordRequest) (*workhistory.Record, error) {
	if req.Company == "" || req.Position == "" {
		return nil, workhistory.ErrInvalidRequest().
			WithDetail("company", req.Company).
			WithDetail("position", req.Position)
	}

	exists, err := s.applicantRepo.Exists(ctx, applicantID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check applicant", errx.TypeInternal)
	}
	if !exists {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", applicantID.String())
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, workhistory.ErrInvalidRequest().WithDetail("start_date", req.StartDate)
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, workhistory.ErrInvalidRequest().WithDetail("end_date", req.EndDate)
		}
		if parsed.Before(startDate) {
			return nil, workhistory.ErrInvalidDateRange().
				WithDetail("start_date", req.StartDate).
				WithDetail("end_date", req.EndDate)
		}
		endDate = &parsed
	}

	record := &workhistory.Record{
		ID:               kernel.NewWorkHistoryID(uuid.NewString()),
		ApplicantID:      applicantID,
		Company:          req.Company,
		Position:         req.Position,
		StartDate:        startDate,
		EndDate:          endDate,
		Responsibilities: req.Responsibilities,
		CreatedAt:        time.Now(),
	}

	if err := s.historyRepo.Create(ctx, record); err != nil {
		return nil, errx.Wrap(err, "failed to create work history record", errx.TypeInternal)
	}

	return record, nil
}

// ListRecords retrieves an applicant's work history, most recent job first
func (s *WorkHistoryService) ListRecords(ctx context.Context, applicantID kernel.ApplicantID) ([]workhistory.Record, error) {
	exists, err := s.applicantRepo.Exists(ctx, applicantID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check applicant", errx.TypeInternal)
	}
	if !exists {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", applicantID.String())
	}

	return s.historyRepo.ListByApplicant(ctx, applicantID)
}
