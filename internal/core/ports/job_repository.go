package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// ListJobsFilter carries query parameters for listing jobs.
type ListJobsFilter struct {
	Keyword   string // optional: case-insensitive match on title or description
	CreatedBy string // optional: scope to a recruiter's own postings
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, error)
}
