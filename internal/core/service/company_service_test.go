package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

func TestCompanyService_Register_DuplicateName(t *testing.T) {
	repo := &stubCompanyRepo{companies: map[string]*domain.Company{
		"comp_1": {ID: "comp_1", Name: "Acme", OwnerID: "recruiter_1"},
	}}
	svc := NewCompanyService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterCompanyInput{
		Name:    "Acme",
		OwnerID: "recruiter_2",
	})
	if err != domain.ErrCompanyExists {
		t.Fatalf("expected ErrCompanyExists, got %v", err)
	}
}

func TestCompanyService_Update_OwnerOnly(t *testing.T) {
	repo := &stubCompanyRepo{companies: map[string]*domain.Company{
		"comp_1": {ID: "comp_1", Name: "Acme", OwnerID: "recruiter_1"},
	}}
	svc := NewCompanyService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), ports.UpdateCompanyInput{
		CompanyID:   "comp_1",
		OwnerID:     "recruiter_1",
		Description: "Logistics platform",
		Location:    "Austin",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "Logistics platform" || updated.Location != "Austin" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.Name != "Acme" {
		t.Fatalf("unset fields must remain unchanged, got %q", updated.Name)
	}

	if _, err := svc.Update(context.Background(), ports.UpdateCompanyInput{
		CompanyID: "comp_1",
		OwnerID:   "recruiter_2",
		Name:      "Hijacked",
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestJobService_Post_OwnerChecks(t *testing.T) {
	companies := &stubCompanyRepo{companies: map[string]*domain.Company{
		"comp_1": {ID: "comp_1", Name: "Acme", OwnerID: "recruiter_1"},
	}}
	jobs := &stubJobRepo{jobs: make(map[string]*domain.Job)}
	svc := NewJobService(jobs, companies, zerolog.Nop())

	input := ports.PostJobInput{
		Title:     "Backend Engineer",
		CompanyID: "comp_1",
		CreatedBy: "recruiter_1",
	}
	job, err := svc.Post(context.Background(), input)
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if job.Title != "Backend Engineer" || job.CreatedBy != "recruiter_1" {
		t.Fatalf("unexpected job: %+v", job)
	}

	input.CreatedBy = "recruiter_2"
	if _, err := svc.Post(context.Background(), input); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	input.CompanyID = "comp_missing"
	if _, err := svc.Post(context.Background(), input); err != domain.ErrCompanyNotFound {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}
