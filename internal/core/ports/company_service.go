package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// RegisterCompanyInput carries the fields accepted when a recruiter
// registers a company.
type RegisterCompanyInput struct {
	Name    string
	OwnerID string
}

// UpdateCompanyInput carries the mutable company fields. Only the owning
// recruiter may update; empty strings leave the stored value unchanged.
type UpdateCompanyInput struct {
	CompanyID   string
	OwnerID     string
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
}

// CompanyService defines use-case operations for companies.
type CompanyService interface {
	Register(ctx context.Context, in RegisterCompanyInput) (*domain.Company, error)
	Get(ctx context.Context, id string) (*domain.Company, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Company, error)
	Update(ctx context.Context, in UpdateCompanyInput) (*domain.Company, error)
}
