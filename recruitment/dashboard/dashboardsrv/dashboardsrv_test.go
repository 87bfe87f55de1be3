package dashboardsrv

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/MieMoo/recruitment-module/recruitment/interview"
	"github.com/MieMoo/recruitment-module/recruitment/interview/interviewsrv"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeApplicantRepo struct {
	mu         sync.Mutex
	applicants []applicant.Applicant
}

func (r *fakeApplicantRepo) add(status applicant.Status, at time.Time) kernel.ApplicantID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := kernel.ApplicantID(fmt.Sprintf("app-%d", len(r.applicants)))
	r.applicants = append(r.applicants, applicant.Applicant{
		ID:        id,
		FirstName: "Test",
		LastName:  kernel.LastName(id),
		Position:  "Payroll",
		Status:    status,
		Version:   1,
		AppliedAt: at,
		UpdatedAt: at,
	})
	return id
}

func (r *fakeApplicantRepo) Create(ctx context.Context, a *applicant.Applicant, logAction, actor string) error {
	return nil
}

func (r *fakeApplicantRepo) GetByID(ctx context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.applicants {
		if r.applicants[i].ID == id {
			clone := r.applicants[i]
			return &clone, nil
		}
	}
	return nil, applicant.ErrApplicantNotFound()
}

func (r *fakeApplicantRepo) List(ctx context.Context, filter applicant.ListFilter) (*kernel.Paginated[applicant.Applicant], error) {
	return kernel.NewPaginated([]applicant.Applicant{}, 1, 20, 0), nil
}

func (r *fakeApplicantRepo) ListByStatuses(ctx context.Context, statuses []applicant.Status) ([]applicant.Applicant, error) {
	return nil, nil
}

func (r *fakeApplicantRepo) FindMatches(ctx context.Context, firstName kernel.FirstName, lastName kernel.LastName, email kernel.Email, phone kernel.Phone) ([]applicant.Applicant, error) {
	return nil, nil
}

func (r *fakeApplicantRepo) AdvanceStatus(ctx context.Context, id kernel.ApplicantID, newStatus applicant.Status, expectedVersion int64, logAction, actor string) error {
	return nil
}

func (r *fakeApplicantRepo) Exists(ctx context.Context, id kernel.ApplicantID) (bool, error) {
	return true, nil
}

func (r *fakeApplicantRepo) StatusCounts(ctx context.Context) (map[applicant.Status]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[applicant.Status]int64)
	for i := range r.applicants {
		counts[r.applicants[i].Status]++
	}
	return counts, nil
}

func (r *fakeApplicantRepo) CountHiredSince(ctx context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for i := range r.applicants {
		a := &r.applicants[i]
		if a.Status == applicant.StatusHired && !a.AppliedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicantRepo) ListRecent(ctx context.Context, limit int) ([]applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]applicant.Applicant, 0, limit)
	for i := len(r.applicants) - 1; i >= 0 && len(items) < limit; i-- {
		items = append(items, r.applicants[i])
	}
	return items, nil
}

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews []interview.Interview
}

func (r *fakeInterviewRepo) add(applicantID kernel.ApplicantID, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interviews = append(r.interviews, interview.Interview{
		ID:           kernel.InterviewID(fmt.Sprintf("iv-%d", len(r.interviews))),
		ApplicantID:  applicantID,
		Type:         interview.TypeOffice,
		ScheduledFor: at,
		Status:       interview.StatusScheduled,
		Result:       interview.ResultPending,
	})
}

func (r *fakeInterviewRepo) Schedule(ctx context.Context, iv *interview.Interview, logAction, actor string) error {
	return nil
}

func (r *fakeInterviewRepo) Reschedule(ctx context.Context, id kernel.InterviewID, newTime time.Time, logAction, actor string) error {
	return nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	return nil, interview.ErrInterviewNotFound()
}

func (r *fakeInterviewRepo) ListAll(ctx context.Context) ([]interview.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]interview.Interview, 0)
	for i := range r.interviews {
		if r.interviews[i].ScheduledFor.After(after) && len(items) < limit {
			items = append(items, r.interviews[i])
		}
	}
	return items, nil
}

func (r *fakeInterviewRepo) ExistsForApplicant(ctx context.Context, applicantID kernel.ApplicantID) (bool, error) {
	return false, nil
}

// ============================================================================
// Tests
// ============================================================================

func newService() (*DashboardService, *fakeApplicantRepo, *fakeInterviewRepo) {
	applicantRepo := &fakeApplicantRepo{}
	interviewRepo := &fakeInterviewRepo{}
	interviews := interviewsrv.NewInterviewService(interviewRepo, applicantRepo)
	return NewDashboardService(applicantRepo, interviews), applicantRepo, interviewRepo
}

func TestGetStats(t *testing.T) {
	svc, repo, _ := newService()
	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	repo.add(applicant.StatusApplied, now)
	repo.add(applicant.StatusApplied, now)
	repo.add(applicant.StatusPendingInterview, now)
	repo.add(applicant.StatusOfferSent, now)
	repo.add(applicant.StatusHired, now)
	repo.add(applicant.StatusHired, yesterday)
	repo.add(applicant.StatusRejected, now)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}

	if stats.Total != 7 {
		t.Errorf("total = %d, want 7", stats.Total)
	}
	if stats.Applied != 2 || stats.PendingInterview != 1 || stats.OfferSent != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Hired != 2 {
		t.Errorf("hired = %d, want 2", stats.Hired)
	}
	if stats.HiredToday != 1 {
		t.Errorf("hired today = %d, want 1", stats.HiredToday)
	}
}

func TestGetOverview(t *testing.T) {
	svc, repo, interviewRepo := newService()
	now := time.Now()

	for i := 0; i < 8; i++ {
		repo.add(applicant.StatusApplied, now)
	}
	id := repo.add(applicant.StatusPendingInterview, now)

	for i := 0; i < 5; i++ {
		interviewRepo.add(id, now.Add(time.Duration(i+1)*time.Hour))
	}

	overview, err := svc.GetOverview(context.Background())
	if err != nil {
		t.Fatalf("GetOverview returned error: %v", err)
	}

	if len(overview.RecentApplicants) != 5 {
		t.Errorf("recent applicants = %d, want 5", len(overview.RecentApplicants))
	}
	if len(overview.UpcomingInterviews) != 3 {
		t.Errorf("upcoming interviews = %d, want 3", len(overview.UpcomingInterviews))
	}
	if overview.Stats.Total != 9 {
		t.Errorf("total = %d, want 9", overview.Stats.Total)
	}
}
