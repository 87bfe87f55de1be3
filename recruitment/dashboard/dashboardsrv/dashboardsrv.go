package dashboardsrv

import (
	"context"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/errx"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/MieMoo/recruitment-module/recruitment/interview"
	"github.com/MieMoo/recruitment-module/recruitment/interview/interviewsrv"
)

const (
	recentApplicantsLimit   = 5
	upcomingInterviewsLimit = 3
)

// Stats summarizes the state of the hiring pipeline
type Stats struct {
	Total            int64 `json:"total"`
	Applied          int64 `json:"applied"`
	PendingInterview int64 `json:"pending_interview"`
	OfferSent        int64 `json:"offer_sent"`
	Hired            int64 `json:"hired"`
	Rejected         int64 `json:"rejected"`
	HiredToday       int64 `json:"hired_today"`
}

// Overview is the full dashboard payload
type Overview struct {
	Stats              Stats                                 `json:"stats"`
	RecentApplicants   []applicant.ApplicantResponse         `json:"recent_applicants"`
	UpcomingInterviews []interview.UpcomingInterviewResponse `json:"upcoming_interviews"`
}

// DashboardService composes pipeline statistics for the dashboard
type DashboardService struct {
	applicantRepo applicant.Repository
	interviews    *interviewsrv.InterviewService
}

// NewDashboardService creates a new instance of the dashboard service
func NewDashboardService(
	applicantRepo applicant.Repository,
	interviews *interviewsrv.InterviewService,
) *DashboardService {
	return &DashboardService{
		applicantRepo: applicantRepo,
		interviews:    interviews,
	}
}

// GetStats retrieves pipeline counters
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	counts, err := s.applicantRepo.StatusCounts(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applicants", errx.TypeInternal)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hiredToday, err := s.applicantRepo.CountHiredSince(ctx, startOfDay)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count today's hires", errx.TypeInternal)
	}

	stats := &Stats{
		Applied:          counts[applicant.StatusApplied],
		PendingInterview: counts[applicant.StatusPendingInterview],
		OfferSent:        counts[applicant.StatusOfferSent],
		Hired:            counts[applicant.StatusHired],
		Rejected:         counts[applicant.StatusRejected],
		HiredToday:       hiredToday,
	}
	for _, count := range counts {
		stats.Total += count
	}

	return stats, nil
}

// GetRecentApplicants retrieves the latest arrivals in the pipeline
func (s *DashboardService) GetRecentApplicants(ctx context.Context) ([]applicant.ApplicantResponse, error) {
	applicants, err := s.applicantRepo.ListRecent(ctx, recentApplicantsLimit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list recent applicants", errx.TypeInternal)
	}

	responses := make([]applicant.ApplicantResponse, 0, len(applicants))
	for i := range applicants {
		responses = append(responses, applicant.NewApplicantResponse(&applicants[i]))
	}

	return responses, nil
}

// GetOverview retrieves the full dashboard payload
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	stats, err := s.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.GetRecentApplicants(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.interviews.Upcoming(ctx, upcomingInterviewsLimit)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Stats:              *stats,
		RecentApplicants:   recent,
		UpcomingInterviews: upcoming,
	}, nil
}
