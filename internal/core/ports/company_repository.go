package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByName(ctx context.Context, name string) (*domain.Company, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
}
