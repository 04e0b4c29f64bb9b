package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// JobService implements job posting and search.
type JobService struct {
	jobs      ports.JobRepository
	companies ports.CompanyRepository
	logger    zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, companies ports.CompanyRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, companies: companies, logger: logger}
}

// Post creates a job posting. The target company must exist and belong to
// the posting recruiter.
func (s *JobService) Post(ctx context.Context, in ports.PostJobInput) (*domain.Job, error) {
	company, err := s.companies.FindByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerID != in.CreatedBy {
		return nil, domain.ErrForbidden
	}

	job := &domain.Job{
		Title:           in.Title,
		Description:     in.Description,
		Requirements:    in.Requirements,
		Salary:          in.Salary,
		ExperienceLevel: in.ExperienceLevel,
		Location:        in.Location,
		JobType:         in.JobType,
		Positions:       in.Positions,
		CompanyID:       in.CompanyID,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		s.logger.Error().Err(err).Str("company_id", in.CompanyID).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("company_id", in.CompanyID).Msg("job posted")
	return created, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) Search(ctx context.Context, keyword string) ([]*domain.Job, error) {
	return s.jobs.List(ctx, ports.ListJobsFilter{Keyword: keyword})
}

func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Job, error) {
	return s.jobs.List(ctx, ports.ListJobsFilter{CreatedBy: recruiterID})
}
