package interviewsrv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/errx"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/pkg/logx"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/MieMoo/recruitment-module/recruitment/interview"
	"github.com/google/uuid"
)

// InterviewService provides business operations for interviews
type InterviewService struct {
	interviewRepo interview.Repository
	applicantRepo applicant.Repository
}

// NewInterviewService creates a new instance of the interview service
func NewInterviewService(
	interviewRepo interview.Repository,
	applicantRepo applicant.Repository,
) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		applicantRepo: applicantRepo,
	}
}

// Schedule books interviews for a batch of applicants. Each applicant is
// scheduled independently; failures are reported per applicant without
// aborting the rest of the batch.
func (s *InterviewService) Schedule(ctx context.Context, req interview.ScheduleRequest, actor string) (*interview.BulkScheduleResponse, error) {
	if len(req.ApplicantIDs) == 0 {
		return nil, interview.ErrNoApplicants()
	}

	ivType, err := interview.ParseType(req.Type)
	if err != nil {
		return nil, err
	}

	scheduledFor, err := interview.ComposeDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if scheduledFor.Before(now) {
		return nil, interview.ErrPastDateTime().
			WithDetail("scheduled_for", scheduledFor.Format(time.RFC3339))
	}

	result := &interview.BulkScheduleResponse{
		Successful: make([]kernel.ApplicantID, 0, len(req.ApplicantIDs)),
		Failed:     make(map[kernel.ApplicantID]string),
		Total:      len(req.ApplicantIDs),
	}

	logAction := fmt.Sprintf("%s interview scheduled for %s", ivType, scheduledFor.Format("2006-01-02 15:04"))

	for _, applicantID := range req.ApplicantIDs {
		current, err := s.applicantRepo.GetByID(ctx, applicantID)
		if err != nil {
			result.Failed[applicantID] = errorMessage(err)
			continue
		}

		// One scheduled interview per applicant
		alreadyScheduled, err := s.interviewRepo.ExistsForApplicant(ctx, applicantID)
		if err != nil {
			result.Failed[applicantID] = errorMessage(err)
			continue
		}
		if alreadyScheduled {
			result.Failed[applicantID] = errorMessage(interview.ErrAlreadyScheduled().
				WithDetail("applicant_id", applicantID.String()))
			continue
		}

		if err := current.ValidateTransition(applicant.StatusPendingInterview); err != nil {
			result.Failed[applicantID] = errorMessage(err)
			continue
		}

		iv := &interview.Interview{
			ID:           kernel.NewInterviewID(uuid.NewString()),
			ApplicantID:  applicantID,
			Type:         ivType,
			ScheduledFor: scheduledFor,
			Status:       interview.StatusScheduled,
			Result:       interview.ResultPending,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := s.interviewRepo.Schedule(ctx, iv, logAction, actor); err != nil {
			logx.Warnf("scheduling interview for applicant %s failed: %v", applicantID, err)
			result.Failed[applicantID] = errorMessage(err)
			continue
		}

		result.Successful = append(result.Successful, applicantID)
	}

	return result, nil
}

// Reschedule moves an interview to a new time
func (s *InterviewService) Reschedule(ctx context.Context, id kernel.InterviewID, req interview.RescheduleRequest, actor string) (*interview.Interview, error) {
	newTime, err := interview.ComposeDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	if newTime.Before(time.Now()) {
		return nil, interview.ErrPastDateTime().
			WithDetail("scheduled_for", newTime.Format(time.RFC3339))
	}

	logAction := fmt.Sprintf("Interview rescheduled to %s", newTime.Format("2006-01-02 15:04"))
	if err := s.interviewRepo.Reschedule(ctx, id, newTime, logAction, actor); err != nil {
		return nil, err
	}

	return s.interviewRepo.GetByID(ctx, id)
}

// ListActive retrieves scheduled interviews joined with their applicants.
// Applicants who already left the interview stage are hidden.
func (s *InterviewService) ListActive(ctx context.Context, filter interview.ActiveListFilter) ([]interview.ActiveInterviewResponse, error) {
	interviews, err := s.interviewRepo.ListAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list interviews", errx.TypeInternal)
	}

	applicants, err := s.applicantRepo.ListByStatuses(ctx, []applicant.Status{
		applicant.StatusApplied,
		applicant.StatusPendingInterview,
	})
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applicants", errx.TypeInternal)
	}

	byID := make(map[kernel.ApplicantID]*applicant.Applicant, len(applicants))
	for i := range applicants {
		byID[applicants[i].ID] = &applicants[i]
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	responses := make([]interview.ActiveInterviewResponse, 0, len(interviews))
	for i := range interviews {
		iv := &interviews[i]
		a, ok := byID[iv.ApplicantID]
		if !ok {
			continue
		}

		if filter.Status != "" && iv.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.FullName()), search) &&
			!strings.Contains(strings.ToLower(iv.ApplicantID.String()), search) {
			continue
		}

		responses = append(responses, interview.ActiveInterviewResponse{
			ID:              iv.ID,
			ApplicantID:     iv.ApplicantID,
			ApplicantName:   a.FullName(),
			Position:        a.Position,
			ApplicantStatus: a.Status.DisplayLabel(),
			Type:            iv.Type,
			ScheduledFor:    iv.ScheduledFor,
			Status:          iv.Status,
			Result:          iv.Result,
		})
	}

	return responses, nil
}

// Upcoming retrieves the next interviews ahead of now, joined with their
// applicants
func (s *InterviewService) Upcoming(ctx context.Context, limit int) ([]interview.UpcomingInterviewResponse, error) {
	interviews, err := s.interviewRepo.ListUpcoming(ctx, time.Now(), limit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list upcoming interviews", errx.TypeInternal)
	}

	responses := make([]interview.UpcomingInterviewResponse, 0, len(interviews))
	for i := range interviews {
		iv := &interviews[i]

		a, err := s.applicantRepo.GetByID(ctx, iv.ApplicantID)
		if err != nil {
			continue
		}

		responses = append(responses, interview.UpcomingInterviewResponse{
			ID:            iv.ID,
			ApplicantID:   iv.ApplicantID,
			ApplicantName: a.FullName(),
			Position:      a.Position,
			Type:          iv.Type,
			ScheduledFor:  iv.ScheduledFor,
		})
	}

	return responses, nil
}

func errorMessage(err error) string {
	var e *errx.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
