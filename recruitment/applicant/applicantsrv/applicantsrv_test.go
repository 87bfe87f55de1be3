package applicantsrv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/errx"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeApplicantRepo struct {
	mu         sync.Mutex
	applicants map[kernel.ApplicantID]*applicant.Applicant
	interviews map[kernel.ApplicantID]int
	failCreate bool
	log        []string
}

func newFakeApplicantRepo() *fakeApplicantRepo {
	return &fakeApplicantRepo{
		applicants: make(map[kernel.ApplicantID]*applicant.Applicant),
		interviews: make(map[kernel.ApplicantID]int),
	}
}

func (r *fakeApplicantRepo) Create(ctx context.Context, a *applicant.Applicant, logAction, actor string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("insert failed")
	}
	clone := *a
	r.applicants[a.ID] = &clone
	r.log = append(r.log, logAction+" by "+actor)
	return nil
}

func (r *fakeApplicantRepo) GetByID(ctx context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applicants[id]
	if !ok {
		return nil, applicant.ErrApplicantNotFound()
	}
	clone := *a
	return &clone, nil
}

func (r *fakeApplicantRepo) List(ctx context.Context, filter applicant.ListFilter) (*kernel.Paginated[applicant.Applicant], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]applicant.Applicant, 0, len(r.applicants))
	for _, a := range r.applicants {
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, a.Status) {
			continue
		}
		if filter.Search != "" {
			name := strings.ToLower(a.FirstName.String() + " " + a.LastName.String())
			if !strings.Contains(name, strings.ToLower(filter.Search)) {
				continue
			}
		}
		if filter.AppliedAfter != nil && a.AppliedAt.Before(*filter.AppliedAfter) {
			continue
		}
		items = append(items, *a)
	}
	slices.SortFunc(items, func(a, b applicant.Applicant) int {
		return b.AppliedAt.Compare(a.AppliedAt)
	})
	return kernel.NewPaginated(items, filter.Pagination.Page, filter.Pagination.PageSize, len(items)), nil
}

func (r *fakeApplicantRepo) ListByStatuses(ctx context.Context, statuses []applicant.Status) ([]applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]applicant.Applicant, 0)
	for _, a := range r.applicants {
		for _, status := range statuses {
			if a.Status == status {
				items = append(items, *a)
				break
			}
		}
	}
	return items, nil
}

func (r *fakeApplicantRepo) FindMatches(ctx context.Context, firstName kernel.FirstName, lastName kernel.LastName, email kernel.Email, phone kernel.Phone) ([]applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := make([]applicant.Applicant, 0)
	for _, a := range r.applicants {
		sameName := strings.EqualFold(a.FirstName.String(), firstName.String()) &&
			strings.EqualFold(a.LastName.String(), lastName.String())
		if sameName || a.Email == email || a.Phone == phone {
			matches = append(matches, *a)
		}
	}
	return matches, nil
}

func (r *fakeApplicantRepo) AdvanceStatus(ctx context.Context, id kernel.ApplicantID, newStatus applicant.Status, expectedVersion int64, logAction, actor string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applicants[id]
	if !ok {
		return applicant.ErrApplicantNotFound()
	}
	if a.Version != expectedVersion {
		return applicant.ErrVersionConflict()
	}
	a.Status = newStatus
	a.Version++
	a.UpdatedAt = time.Now()
	r.log = append(r.log, logAction+" by "+actor)
	if newStatus.IsTerminal() {
		delete(r.interviews, id)
	}
	return nil
}

func (r *fakeApplicantRepo) Exists(ctx context.Context, id kernel.ApplicantID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.applicants[id]
	return ok, nil
}

func (r *fakeApplicantRepo) StatusCounts(ctx context.Context) (map[applicant.Status]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[applicant.Status]int64)
	for _, a := range r.applicants {
		counts[a.Status]++
	}
	return counts, nil
}

func (r *fakeApplicantRepo) CountHiredSince(ctx context.Context, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, a := range r.applicants {
		if a.Status == applicant.StatusHired && !a.UpdatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicantRepo) ListRecent(ctx context.Context, limit int) ([]applicant.Applicant, error) {
	return r.ListByStatuses(ctx, applicant.AllStatuses())
}

type fakeActionLogRepo struct {
	mu      sync.Mutex
	entries []actionlog.Entry
}

func (r *fakeActionLogRepo) Record(ctx context.Context, entry *actionlog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActionLogRepo) ListByApplicant(ctx context.Context, applicantID kernel.ApplicantID) ([]actionlog.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]actionlog.Entry, 0)
	for _, e := range r.entries {
		if e.ApplicantID == applicantID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *fakeActionLogRepo) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[actionlog.Entry], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return kernel.NewPaginated(r.entries, pagination.Page, pagination.PageSize, len(r.entries)), nil
}

type fakeFileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{files: make(map[string][]byte)}
}

func (f *fakeFileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[p] = data
	return nil
}

func (f *fakeFileSystem) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[p]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (f *fakeFileSystem) DeleteFile(ctx context.Context, p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, p)
	return nil
}

func (f *fakeFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

func (f *fakeFileSystem) PublicURL(p string) string {
	return "https://files.test/" + p
}

// ============================================================================
// Helpers
// ============================================================================

func validIntake() applicant.IntakeRequest {
	return applicant.IntakeRequest{
		FirstName:      "Maria",
		LastName:       "Santos",
		Email:          "maria.santos@example.com",
		Phone:          "09171234567",
		Sex:            kernel.SexFemale,
		BirthDate:      "1995-03-20",
		Address:        "Quezon City",
		Position:       "Recruiter",
		EducationLevel: "Bachelor",
		Institution:    "University of Santo Tomas",
		EducationFrom:  "2011-06-01",
		EducationTo:    "2015-04-30",
		Source:         "LinkedIn",
		Notes:          "Referred by staffing partner",
		ResumeFileName: "resume.pdf",
		ResumeData:     []byte("%PDF-1.4 fake"),
		ContentType:    "application/pdf",
	}
}

func newService() (*ApplicantService, *fakeApplicantRepo, *fakeActionLogRepo, *fakeFileSystem) {
	repo := newFakeApplicantRepo()
	logRepo := &fakeActionLogRepo{}
	fs := newFakeFileSystem()
	return NewApplicantService(repo, logRepo, fs), repo, logRepo, fs
}

// ============================================================================
// Intake
// ============================================================================

func TestIntakeCreatesApplicant(t *testing.T) {
	svc, repo, logRepo, fs := newService()

	resp, err := svc.Intake(context.Background(), validIntake(), "Admin")
	if err != nil {
		t.Fatalf("Intake returned error: %v", err)
	}

	if resp.Status != applicant.StatusApplied {
		t.Errorf("status = %q, want %q", resp.Status, applicant.StatusApplied)
	}
	if resp.StatusLabel != "New" {
		t.Errorf("status label = %q, want New", resp.StatusLabel)
	}
	if resp.Version != 1 {
		t.Errorf("version = %d, want 1", resp.Version)
	}
	if !strings.HasPrefix(resp.ResumeURL.String(), "https://files.test/") {
		t.Errorf("resume URL = %q", resp.ResumeURL)
	}

	if len(repo.applicants) != 1 {
		t.Fatalf("stored applicants = %d, want 1", len(repo.applicants))
	}
	if len(fs.files) != 1 {
		t.Errorf("stored files = %d, want 1", len(fs.files))
	}
	if len(logRepo.entries) != 0 {
		t.Errorf("separate log writes = %d, want 0", len(logRepo.entries))
	}
	if len(repo.log) != 1 || !strings.Contains(repo.log[0], "Applied for Recruiter position by Admin") {
		t.Errorf("log = %v", repo.log)
	}
}

func TestIntakeValidation(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*applicant.IntakeRequest)
		code   errx.Code
	}{
		{"bad email", func(r *applicant.IntakeRequest) { r.Email = "not-an-email" }, applicant.CodeInvalidEmail},
		{"bad phone", func(r *applicant.IntakeRequest) { r.Phone = "12-34" }, applicant.CodeInvalidPhone},
		{"bad birth date", func(r *applicant.IntakeRequest) { r.BirthDate = "20-03-1995" }, applicant.CodeInvalidBirthDate},
		{"bad education date", func(r *applicant.IntakeRequest) { r.EducationFrom = "June 2011" }, applicant.CodeInvalidRequest},
		{"missing resume", func(r *applicant.IntakeRequest) { r.ResumeData = nil }, applicant.CodeMissingResume},
		{"missing name", func(r *applicant.IntakeRequest) { r.FirstName = "" }, applicant.CodeInvalidRequest},
	}

	for _, tc := range cases {
		req := validIntake()
		tc.mutate(&req)
		_, err := svc.Intake(ctx, req, "Admin")
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !errx.IsCode(err, tc.code) {
			t.Errorf("%s: got %v", tc.name, err)
		}
	}
}

func TestIntakeBlocksDuplicates(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	if _, err := svc.Intake(ctx, validIntake(), "Admin"); err != nil {
		t.Fatalf("first intake failed: %v", err)
	}

	// Same name, different contact details
	dup := validIntake()
	dup.Email = "other@example.com"
	dup.Phone = "09170000000"
	if _, err := svc.Intake(ctx, dup, "Admin"); !errx.IsCode(err, applicant.CodeDuplicateApplicant) {
		t.Errorf("same name: got %v", err)
	}

	// Same email only
	dup = validIntake()
	dup.FirstName = "Ana"
	dup.LastName = "Reyes"
	dup.Phone = "09170000000"
	if _, err := svc.Intake(ctx, dup, "Admin"); !errx.IsCode(err, applicant.CodeDuplicateApplicant) {
		t.Errorf("same email: got %v", err)
	}

	// Same phone only
	dup = validIntake()
	dup.FirstName = "Ana"
	dup.LastName = "Reyes"
	dup.Email = "ana.reyes@example.com"
	if _, err := svc.Intake(ctx, dup, "Admin"); !errx.IsCode(err, applicant.CodeDuplicateApplicant) {
		t.Errorf("same phone: got %v", err)
	}
}

func TestIntakeCleansUpFileOnCreateFailure(t *testing.T) {
	svc, repo, _, fs := newService()
	repo.failCreate = true

	if _, err := svc.Intake(context.Background(), validIntake(), "Admin"); err == nil {
		t.Fatal("expected error")
	}

	if len(fs.files) != 0 {
		t.Errorf("uploaded file not cleaned up, files = %d", len(fs.files))
	}
	if len(repo.log) != 0 {
		t.Errorf("log written despite failed create, log = %v", repo.log)
	}
}

// ============================================================================
// Listing
// ============================================================================

func TestListApplicants(t *testing.T) {
	svc, repo, _, _ := newService()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	statuses := []applicant.Status{applicant.StatusApplied, applicant.StatusHired, applicant.StatusApplied}
	for i, status := range statuses {
		id := kernel.NewApplicantID(fmt.Sprintf("applicant-%d", i))
		repo.applicants[id] = &applicant.Applicant{
			ID:        id,
			FirstName: kernel.FirstName(fmt.Sprintf("Person%d", i)),
			LastName:  kernel.LastName(fmt.Sprintf("Nr%d", i)),
			Status:    status,
			Version:   1,
			AppliedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}

	// Empty filter returns everyone, newest application first
	page, err := svc.ListApplicants(ctx, applicant.ListFilter{})
	if err != nil {
		t.Fatalf("ListApplicants returned error: %v", err)
	}
	if len(page.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(page.Items))
	}
	for i := 1; i < len(page.Items); i++ {
		if page.Items[i].AppliedAt.After(page.Items[i-1].AppliedAt) {
			t.Errorf("items not newest first at index %d", i)
		}
	}

	filtered, err := svc.ListApplicants(ctx, applicant.ListFilter{
		Statuses: []applicant.Status{applicant.StatusHired},
	})
	if err != nil {
		t.Fatalf("ListApplicants returned error: %v", err)
	}
	if len(filtered.Items) != 1 || filtered.Items[0].Status != applicant.StatusHired {
		t.Errorf("filtered items = %+v", filtered.Items)
	}
}

func TestGetActionFeed(t *testing.T) {
	svc, _, logRepo, _ := newService()

	for i := 0; i < 3; i++ {
		logRepo.entries = append(logRepo.entries, actionlog.Entry{
			ID:          kernel.NewActionLogID(fmt.Sprintf("entry-%d", i)),
			ApplicantID: kernel.NewApplicantID("applicant-1"),
			Action:      fmt.Sprintf("Action %d", i),
			PerformedBy: "Admin",
			PerformedAt: time.Now(),
		})
	}

	feed, err := svc.GetActionFeed(context.Background(), kernel.PaginationOptions{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("GetActionFeed returned error: %v", err)
	}
	if len(feed.Items) != 3 {
		t.Errorf("feed items = %d, want 3", len(feed.Items))
	}
}

// ============================================================================
// Status updates
// ============================================================================

func seedApplicant(t *testing.T, svc *ApplicantService) kernel.ApplicantID {
	t.Helper()
	resp, err := svc.Intake(context.Background(), validIntake(), "Admin")
	if err != nil {
		t.Fatalf("seeding applicant failed: %v", err)
	}
	return resp.ID
}

func TestUpdateStatusFollowsPipeline(t *testing.T) {
	svc, repo, _, _ := newService()
	id := seedApplicant(t, svc)
	ctx := context.Background()

	resp, err := svc.UpdateStatus(ctx, id, applicant.UpdateStatusRequest{Status: "Pending Interview", Version: 1}, "Admin")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if resp.Status != applicant.StatusPendingInterview {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Version != 2 {
		t.Errorf("version = %d, want 2", resp.Version)
	}

	// Intake wrote the first log line, the status change the second
	if len(repo.log) != 2 || !strings.Contains(repo.log[1], "Pending Interview") {
		t.Errorf("log = %v", repo.log)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	svc, _, _, _ := newService()
	id := seedApplicant(t, svc)

	_, err := svc.UpdateStatus(context.Background(), id, applicant.UpdateStatusRequest{Status: "Hired", Version: 1}, "Admin")
	if !errx.IsCode(err, applicant.CodeInvalidStatusTransition) {
		t.Errorf("got %v", err)
	}
}

func TestUpdateStatusAcceptsLegacyAliases(t *testing.T) {
	svc, _, _, _ := newService()
	id := seedApplicant(t, svc)

	resp, err := svc.UpdateStatus(context.Background(), id, applicant.UpdateStatusRequest{Status: "Interviewed", Version: 1}, "Admin")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if resp.Status != applicant.StatusPendingInterview {
		t.Errorf("status = %q, want %q", resp.Status, applicant.StatusPendingInterview)
	}
}

func TestUpdateStatusVersionConflict(t *testing.T) {
	svc, _, _, _ := newService()
	id := seedApplicant(t, svc)

	_, err := svc.UpdateStatus(context.Background(), id, applicant.UpdateStatusRequest{Status: "Pending Interview", Version: 7}, "Admin")
	if !errx.IsCode(err, applicant.CodeVersionConflict) {
		t.Errorf("got %v", err)
	}
}

func TestTerminalStatusClearsInterviews(t *testing.T) {
	svc, repo, _, _ := newService()
	id := seedApplicant(t, svc)
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, id, applicant.UpdateStatusRequest{Status: "Pending Interview", Version: 1}, "Admin"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	repo.interviews[id] = 1

	if _, err := svc.UpdateStatus(ctx, id, applicant.UpdateStatusRequest{Status: "Rejected", Version: 2}, "Admin"); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if _, ok := repo.interviews[id]; ok {
		t.Error("interviews should be removed on terminal status")
	}
}

// ============================================================================
// Onboarding
// ============================================================================

func TestListOnboarding(t *testing.T) {
	svc, _, _, _ := newService()
	ctx := context.Background()

	ids := make([]kernel.ApplicantID, 0, 3)
	for i := 0; i < 3; i++ {
		req := validIntake()
		req.FirstName = kernel.FirstName(fmt.Sprintf("Person%d", i))
		req.LastName = kernel.LastName(fmt.Sprintf("Nr%d", i))
		req.Email = kernel.Email(fmt.Sprintf("person%d@example.com", i))
		req.Phone = kernel.Phone(fmt.Sprintf("0917000000%d", i))
		resp, err := svc.Intake(ctx, req, "Admin")
		if err != nil {
			t.Fatalf("intake %d failed: %v", i, err)
		}
		ids = append(ids, resp.ID)
	}

	// One pending interview, one offer sent, one untouched
	if _, err := svc.UpdateStatus(ctx, ids[0], applicant.UpdateStatusRequest{Status: "Pending Interview", Version: 1}, "Admin"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateStatus(ctx, ids[1], applicant.UpdateStatusRequest{Status: "Offer Sent", Version: 1}, "Admin"); err != nil {
		t.Fatal(err)
	}

	onboarding, err := svc.ListOnboarding(ctx)
	if err != nil {
		t.Fatalf("ListOnboarding returned error: %v", err)
	}
	if len(onboarding) != 2 {
		t.Fatalf("onboarding count = %d, want 2", len(onboarding))
	}
}

func TestHire(t *testing.T) {
	svc, _, _, _ := newService()
	id := seedApplicant(t, svc)
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, id, applicant.UpdateStatusRequest{Status: "Offer Sent", Version: 1}, "Admin"); err != nil {
		t.Fatal(err)
	}

	resp, err := svc.Hire(ctx, id, 2, "Admin")
	if err != nil {
		t.Fatalf("Hire returned error: %v", err)
	}
	if resp.Status != applicant.StatusHired {
		t.Errorf("status = %q", resp.Status)
	}
}
