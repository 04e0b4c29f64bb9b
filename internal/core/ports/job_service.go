package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// PostJobInput carries all data needed to create a job posting.
type PostJobInput struct {
	Title           string
	Description     string
	Requirements    []string
	Salary          int64
	ExperienceLevel int
	Location        string
	JobType         string
	Positions       int
	CompanyID       string
	CreatedBy       string
}

// JobService defines use-case operations for job postings.
type JobService interface {
	Post(ctx context.Context, in PostJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	// Search lists all jobs matching the optional keyword.
	Search(ctx context.Context, keyword string) ([]*domain.Job, error)
	// ListByRecruiter lists the postings created by the given recruiter.
	ListByRecruiter(ctx context.Context, recruiterID string) ([]*domain.Job, error)
}
