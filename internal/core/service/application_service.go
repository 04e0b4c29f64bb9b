package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// ApplyGuard abstracts the fast duplicate-application check (Redis). The
// unique index on the applications collection remains the authority; the
// guard only short-circuits obvious repeats without a Mongo round trip.
type ApplyGuard interface {
	IsRecent(ctx context.Context, jobID, applicantID string) (bool, error)
	Mark(ctx context.Context, jobID, applicantID string) error
}

// StatusNotifier enqueues a notification for asynchronous delivery.
type StatusNotifier interface {
	Enqueue(n ports.StatusNotification)
}

// ApplicationService implements application submission and review.
type ApplicationService struct {
	apps      ports.ApplicationRepository
	jobs      ports.JobRepository
	users     ports.UserRepository
	companies ports.CompanyRepository
	guard     ApplyGuard
	notifier  StatusNotifier
	logger    zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	users ports.UserRepository,
	companies ports.CompanyRepository,
	guard ApplyGuard,
	notifier StatusNotifier,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		apps:      apps,
		jobs:      jobs,
		users:     users,
		companies: companies,
		guard:     guard,
		notifier:  notifier,
		logger:    logger,
	}
}

// Apply submits an application. Duplicates are rejected twice over: the
// Redis guard catches rapid resubmissions, the repository check (backed by
// a unique index) is authoritative.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	recent, err := s.guard.IsRecent(ctx, jobID, applicantID)
	if err != nil {
		s.logger.Warn().Err(err).Str("job_id", jobID).Msg("apply guard check failed, falling through to store")
	} else if recent {
		return nil, domain.ErrAlreadyApplied
	}

	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}

	if existing, err := s.apps.FindByJobAndApplicant(ctx, jobID, applicantID); err == nil && existing != nil {
		return nil, domain.ErrAlreadyApplied
	}

	now := time.Now().UTC()
	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      domain.ApplicationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	if markErr := s.guard.Mark(ctx, jobID, applicantID); markErr != nil {
		s.logger.Warn().Err(markErr).Str("job_id", jobID).Msg("failed to set apply guard key")
	}

	s.logger.Info().Str("application_id", created.ID).Str("job_id", jobID).Str("applicant_id", applicantID).Msg("application submitted")
	return created, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID string) ([]ports.ApplicationView, error) {
	apps, err := s.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ApplicationView, 0, len(apps))
	for _, app := range apps {
		view := ports.ApplicationView{Application: app}
		if job, err := s.jobs.FindByID(ctx, app.JobID); err == nil {
			view.Job = job
			if company, err := s.companies.FindByID(ctx, job.CompanyID); err == nil {
				view.Company = company
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ListApplicants returns the applications for a job together with their
// sanitized applicant accounts. Only the recruiter who posted the job may
// list its applicants.
func (s *ApplicationService) ListApplicants(ctx context.Context, jobID, recruiterID string) ([]ports.ApplicantView, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CreatedBy != recruiterID {
		return nil, domain.ErrForbidden
	}

	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ApplicantView, 0, len(apps))
	for _, app := range apps {
		view := ports.ApplicantView{Application: app}
		if applicant, err := s.users.FindByID(ctx, app.ApplicantID); err == nil {
			view.Applicant = applicant.Sanitized()
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateStatus records the review decision and enqueues an email to the
// applicant. The notification is fire-and-forget: delivery failures never
// fail the request.
func (s *ApplicationService) UpdateStatus(ctx context.Context, in ports.UpdateStatusInput) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.apps.FindByID(ctx, in.ApplicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if job.CreatedBy != in.RecruiterID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.apps.UpdateStatus(ctx, in.ApplicationID, in.Status)
	if err != nil {
		return nil, err
	}

	notification := ports.StatusNotification{
		JobTitle: job.Title,
		Status:   in.Status,
	}
	if applicant, err := s.users.FindByID(ctx, app.ApplicantID); err == nil {
		notification.Email = applicant.Email
	}
	if company, err := s.companies.FindByID(ctx, job.CompanyID); err == nil {
		notification.CompanyName = company.Name
	}
	if notification.Email != "" {
		s.notifier.Enqueue(notification)
	}

	s.logger.Info().
		Str("application_id", in.ApplicationID).
		Str("status", string(in.Status)).
		Msg("application status updated")

	return updated, nil
}
