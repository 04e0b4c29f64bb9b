package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
}
