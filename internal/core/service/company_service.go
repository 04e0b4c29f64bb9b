package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// CompanyService implements recruiter-owned company management.
type CompanyService struct {
	repo   ports.CompanyRepository
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

func (s *CompanyService) Register(ctx context.Context, in ports.RegisterCompanyInput) (*domain.Company, error) {
	if existing, err := s.repo.FindByName(ctx, in.Name); err == nil && existing != nil {
		return nil, domain.ErrCompanyExists
	}

	now := time.Now().UTC()
	company := &domain.Company{
		Name:      in.Name,
		OwnerID:   in.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("company_id", created.ID).Str("owner_id", in.OwnerID).Msg("company registered")
	return created, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*domain.Company, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CompanyService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Company, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// Update applies the mutable fields. Only the owning recruiter may update.
func (s *CompanyService) Update(ctx context.Context, in ports.UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.repo.FindByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerID != in.OwnerID {
		return nil, domain.ErrForbidden
	}

	if in.Name != "" {
		company.Name = in.Name
	}
	if in.Description != "" {
		company.Description = in.Description
	}
	if in.Website != "" {
		company.Website = in.Website
	}
	if in.Location != "" {
		company.Location = in.Location
	}
	if in.LogoURL != "" {
		company.LogoURL = in.LogoURL
	}
	company.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, company)
}
