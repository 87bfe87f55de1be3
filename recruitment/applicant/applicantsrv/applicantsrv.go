package applicantsrv

import (
	"context"
	"fmt"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/errx"
	"github.com/MieMoo/recruitment-module/pkg/fsx"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/google/uuid"
)

const maxResumeSize = 10 * 1024 * 1024 // 10MB

// ApplicantService provides business operations for applicants
type ApplicantService struct {
	applicantRepo applicant.Repository
	actionRepo    actionlog.Repository
	fileSystem    fsx.FileSystem
}

// NewApplicantService creates a new instance of the applicant service
func NewApplicantService(
	applicantRepo applicant.Repository,
	actionRepo actionlog.Repository,
	fileSystem fsx.FileSystem,
) *ApplicantService {
	return &ApplicantService{
		applicantRepo: applicantRepo,
		actionRepo:    actionRepo,
		fileSystem:    fileSystem,
	}
}

// Intake registers a new applicant, uploading the resume to storage
func (s *ApplicantService) Intake(ctx context.Context, req applicant.IntakeRequest, actor string) (*applicant.ApplicantResponse, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, applicant.ErrInvalidRequest().WithDetail("name", "first and last name are required")
	}

	if !req.Email.IsValid() {
		return nil, applicant.ErrInvalidEmail().WithDetail("email", req.Email.String())
	}

	if !req.Phone.IsValid() {
		return nil, applicant.ErrInvalidPhone().WithDetail("phone", req.Phone.String())
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil || !birthDate.Before(time.Now()) {
		return nil, applicant.ErrInvalidBirthDate().WithDetail("birth_date", req.BirthDate)
	}

	educationFrom, err := parseOptionalDate(req.EducationFrom)
	if err != nil {
		return nil, applicant.ErrInvalidRequest().WithDetail("education_from", req.EducationFrom)
	}
	educationTo, err := parseOptionalDate(req.EducationTo)
	if err != nil {
		return nil, applicant.ErrInvalidRequest().WithDetail("education_to", req.EducationTo)
	}

	if len(req.ResumeData) == 0 || req.ResumeFileName == "" {
		return nil, applicant.ErrMissingResume()
	}

	if len(req.ResumeData) > maxResumeSize {
		return nil, applicant.ErrInvalidRequest().
			WithDetail("file_size", len(req.ResumeData)).
			WithDetail("max_size", maxResumeSize)
	}

	// Business rule: same full name, email or phone blocks the intake
	matches, err := s.applicantRepo.FindMatches(ctx, req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check duplicate applicant", errx.TypeInternal)
	}

	if len(matches) > 0 {
		return nil, applicant.ErrDuplicateApplicant().
			WithDetail("matched_id", matches[0].ID.String()).
			WithDetail("matches", len(matches))
	}

	id := kernel.NewApplicantID(uuid.NewString())

	// Upload resume to storage
	storagePath := s.fileSystem.Join("resumes", id.String(), req.ResumeFileName)
	if err := s.fileSystem.WriteFile(ctx, storagePath, req.ResumeData); err != nil {
		return nil, applicant.ErrResumeUploadFailed().WithDetail("path", storagePath)
	}

	now := time.Now()
	newApplicant := &applicant.Applicant{
		ID:             id,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Sex:            req.Sex,
		BirthDate:      birthDate,
		Address:        req.Address,
		Position:       req.Position,
		EducationLevel: req.EducationLevel,
		Institution:    req.Institution,
		EducationFrom:  educationFrom,
		EducationTo:    educationTo,
		Source:         req.Source,
		Notes:          req.Notes,
		ResumeURL:      kernel.BucketURL(s.fileSystem.PublicURL(storagePath)),
		Status:         applicant.StatusApplied,
		Version:        1,
		AppliedAt:      now,
		UpdatedAt:      now,
	}

	logAction := fmt.Sprintf("Applied for %s position", newApplicant.Position)
	if err := s.applicantRepo.Create(ctx, newApplicant, logAction, actor); err != nil {
		// Cleanup uploaded file on failure
		s.fileSystem.DeleteFile(context.Background(), storagePath)
		return nil, errx.Wrap(err, "failed to create applicant", errx.TypeInternal)
	}

	resp := applicant.NewApplicantResponse(newApplicant)
	return &resp, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// GetApplicant retrieves an applicant by ID
func (s *ApplicantService) GetApplicant(ctx context.Context, id kernel.ApplicantID) (*applicant.ApplicantResponse, error) {
	a, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := applicant.NewApplicantResponse(a)
	return &resp, nil
}

// ListApplicants retrieves applicants matching the filter
func (s *ApplicantService) ListApplicants(ctx context.Context, filter applicant.ListFilter) (*applicant.PaginatedApplicantsResponse, error) {
	page, err := s.applicantRepo.List(ctx, filter)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applicants", errx.TypeInternal)
	}

	responses := make([]applicant.ApplicantResponse, 0, len(page.Items))
	for i := range page.Items {
		responses = append(responses, applicant.NewApplicantResponse(&page.Items[i]))
	}

	return &kernel.Paginated[applicant.ApplicantResponse]{
		Items: responses,
		Page:  page.Page,
		Empty: page.Empty,
	}, nil
}

// UpdateStatus moves an applicant through the pipeline. The status change,
// its log entry and the interview cleanup for terminal statuses commit
// together.
func (s *ApplicantService) UpdateStatus(ctx context.Context, id kernel.ApplicantID, req applicant.UpdateStatusRequest, actor string) (*applicant.ApplicantResponse, error) {
	newStatus, err := applicant.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	current, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := current.ValidateTransition(newStatus); err != nil {
		return nil, err
	}

	logAction := fmt.Sprintf("Status changed from %s to %s", current.Status, newStatus)
	if err := s.applicantRepo.AdvanceStatus(ctx, id, newStatus, req.Version, logAction, actor); err != nil {
		return nil, err
	}

	return s.GetApplicant(ctx, id)
}

// Hire marks an onboarding applicant as hired
func (s *ApplicantService) Hire(ctx context.Context, id kernel.ApplicantID, version int64, actor string) (*applicant.ApplicantResponse, error) {
	return s.UpdateStatus(ctx, id, applicant.UpdateStatusRequest{
		Status:  string(applicant.StatusHired),
		Version: version,
	}, actor)
}

// ListOnboarding retrieves applicants in the onboarding stages
func (s *ApplicantService) ListOnboarding(ctx context.Context) ([]applicant.OnboardingApplicantResponse, error) {
	applicants, err := s.applicantRepo.ListByStatuses(ctx, []applicant.Status{
		applicant.StatusPendingInterview,
		applicant.StatusOfferSent,
	})
	if err != nil {
		return nil, errx.Wrap(err, "failed to list onboarding applicants", errx.TypeInternal)
	}

	responses := make([]applicant.OnboardingApplicantResponse, 0, len(applicants))
	for i := range applicants {
		a := &applicants[i]
		responses = append(responses, applicant.OnboardingApplicantResponse{
			ID:          a.ID,
			Name:        a.FullName(),
			Position:    a.Position,
			Status:      a.Status,
			StatusLabel: a.Status.DisplayLabel(),
			Version:     a.Version,
			AppliedAt:   a.AppliedAt,
		})
	}

	return responses, nil
}

// GetActionLog retrieves the recorded actions for an applicant
func (s *ApplicantService) GetActionLog(ctx context.Context, id kernel.ApplicantID) ([]actionlog.Entry, error) {
	exists, err := s.applicantRepo.Exists(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check applicant", errx.TypeInternal)
	}
	if !exists {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}

	return s.actionRepo.ListByApplicant(ctx, id)
}

// GetActionFeed retrieves recorded actions across all applicants, newest
// first
func (s *ApplicantService) GetActionFeed(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[actionlog.Entry], error) {
	feed, err := s.actionRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list actions", errx.TypeInternal)
	}
	return feed, nil
}
