package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

type stubAppRepo struct {
	apps   map[string]*domain.Application
	nextID int
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.ApplicantID == app.ApplicantID {
			return nil, domain.ErrAlreadyApplied
		}
	}
	r.nextID++
	clone := *app
	clone.ID = "app_" + strconv.Itoa(r.nextID)
	r.apps[clone.ID] = &clone
	return &clone, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	if a, ok := r.apps[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) FindByJobAndApplicant(_ context.Context, jobID, applicantID string) (*domain.Application, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) ListByApplicant(_ context.Context, applicantID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.ApplicantID == applicantID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppRepo) ListByJob(_ context.Context, jobID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	a.Status = status
	clone := *a
	return &clone, nil
}

type stubJobRepo struct {
	jobs map[string]*domain.Job
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	clone := *job
	r.jobs[clone.ID] = &clone
	return &clone, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		clone := *j
		return &clone, nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context, _ ports.ListJobsFilter) ([]*domain.Job, error) {
	return nil, nil
}

type stubCompanyRepo struct {
	companies map[string]*domain.Company
}

func (r *stubCompanyRepo) Create(_ context.Context, c *domain.Company) (*domain.Company, error) {
	clone := *c
	r.companies[clone.ID] = &clone
	return &clone, nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id string) (*domain.Company, error) {
	if c, ok := r.companies[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (r *stubCompanyRepo) FindByName(_ context.Context, name string) (*domain.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (r *stubCompanyRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Company, error) {
	var out []*domain.Company
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, c *domain.Company) (*domain.Company, error) {
	clone := *c
	r.companies[clone.ID] = &clone
	return &clone, nil
}

type stubGuard struct {
	recent map[string]bool
	marked []string
}

func newStubGuard() *stubGuard {
	return &stubGuard{recent: make(map[string]bool)}
}

func (g *stubGuard) IsRecent(_ context.Context, jobID, applicantID string) (bool, error) {
	return g.recent[jobID+":"+applicantID], nil
}

func (g *stubGuard) Mark(_ context.Context, jobID, applicantID string) error {
	g.marked = append(g.marked, jobID+":"+applicantID)
	return nil
}

type stubNotifier struct {
	sent []ports.StatusNotification
}

func (n *stubNotifier) Enqueue(msg ports.StatusNotification) {
	n.sent = append(n.sent, msg)
}

func newApplicationFixture() (*ApplicationService, *stubAppRepo, *stubGuard, *stubNotifier, *stubUserRepo) {
	apps := newStubAppRepo()
	jobs := &stubJobRepo{jobs: map[string]*domain.Job{
		"job_1": {ID: "job_1", Title: "Backend Engineer", CompanyID: "comp_1", CreatedBy: "recruiter_1"},
	}}
	companies := &stubCompanyRepo{companies: map[string]*domain.Company{
		"comp_1": {ID: "comp_1", Name: "Acme", OwnerID: "recruiter_1"},
	}}
	users := newStubUserRepo()
	users.users["s@x.com"] = &domain.User{ID: "student_1", Email: "s@x.com", Role: domain.RoleStudent}
	guard := newStubGuard()
	notifier := &stubNotifier{}
	svc := NewApplicationService(apps, jobs, users, companies, guard, notifier, zerolog.Nop())
	return svc, apps, guard, notifier, users
}

func TestApplicationService_Apply_Success(t *testing.T) {
	svc, apps, guard, _, _ := newApplicationFixture()

	app, err := svc.Apply(context.Background(), "job_1", "student_1")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("expected pending status, got %s", app.Status)
	}
	if len(apps.apps) != 1 {
		t.Fatalf("expected one stored application, got %d", len(apps.apps))
	}
	if len(guard.marked) != 1 || guard.marked[0] != "job_1:student_1" {
		t.Fatalf("guard not marked: %v", guard.marked)
	}
}

func TestApplicationService_Apply_DuplicateViaGuard(t *testing.T) {
	svc, apps, guard, _, _ := newApplicationFixture()
	guard.recent["job_1:student_1"] = true

	if _, err := svc.Apply(context.Background(), "job_1", "student_1"); err != domain.ErrAlreadyApplied {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if len(apps.apps) != 0 {
		t.Fatalf("no application should be stored on guard hit")
	}
}

func TestApplicationService_Apply_DuplicateViaStore(t *testing.T) {
	svc, _, _, _, _ := newApplicationFixture()

	if _, err := svc.Apply(context.Background(), "job_1", "student_1"); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if _, err := svc.Apply(context.Background(), "job_1", "student_1"); err != domain.ErrAlreadyApplied {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationService_Apply_JobNotFound(t *testing.T) {
	svc, _, _, _, _ := newApplicationFixture()

	if _, err := svc.Apply(context.Background(), "job_missing", "student_1"); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationService_UpdateStatus_NotifiesApplicant(t *testing.T) {
	svc, _, _, notifier, _ := newApplicationFixture()

	app, err := svc.Apply(context.Background(), "job_1", "student_1")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		ApplicationID: app.ID,
		RecruiterID:   "recruiter_1",
		Status:        domain.ApplicationAccepted,
	})
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != domain.ApplicationAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.Email != "s@x.com" || n.JobTitle != "Backend Engineer" || n.CompanyName != "Acme" {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if n.Status != domain.ApplicationAccepted {
		t.Fatalf("unexpected notification status: %s", n.Status)
	}
}

func TestApplicationService_UpdateStatus_ForbiddenForOtherRecruiter(t *testing.T) {
	svc, _, _, notifier, _ := newApplicationFixture()

	app, _ := svc.Apply(context.Background(), "job_1", "student_1")

	_, err := svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		ApplicationID: app.ID,
		RecruiterID:   "recruiter_2",
		Status:        domain.ApplicationRejected,
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("no notification expected on forbidden update")
	}
}

func TestApplicationService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _, _ := newApplicationFixture()

	_, err := svc.UpdateStatus(context.Background(), ports.UpdateStatusInput{
		ApplicationID: "app_1",
		RecruiterID:   "recruiter_1",
		Status:        "archived",
	})
	if err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplicationService_ListApplicants_OwnerOnly(t *testing.T) {
	svc, _, _, _, _ := newApplicationFixture()

	if _, err := svc.Apply(context.Background(), "job_1", "student_1"); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	views, err := svc.ListApplicants(context.Background(), "job_1", "recruiter_1")
	if err != nil {
		t.Fatalf("list applicants failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one applicant, got %d", len(views))
	}
	if views[0].Applicant == nil || views[0].Applicant.Email != "s@x.com" {
		t.Fatalf("unexpected applicant: %+v", views[0].Applicant)
	}
	if views[0].Applicant.PasswordHash != "" {
		t.Fatalf("applicant view must be sanitized")
	}

	if _, err := svc.ListApplicants(context.Background(), "job_1", "recruiter_2"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}
