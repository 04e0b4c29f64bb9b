package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// ApplicationView pairs an application with the job it targets, for the
// student's "my applications" listing.
type ApplicationView struct {
	Application *domain.Application
	Job         *domain.Job
	Company     *domain.Company
}

// ApplicantView pairs an application with the sanitized applicant account,
// for the recruiter's applicant listing.
type ApplicantView struct {
	Application *domain.Application
	Applicant   *domain.User
}

// UpdateStatusInput carries a recruiter's review decision.
type UpdateStatusInput struct {
	ApplicationID string
	RecruiterID   string
	Status        domain.ApplicationStatus
}

// ApplicationService defines use-case operations for job applications.
type ApplicationService interface {
	// Apply submits an application for jobID by applicantID. At most one
	// application may exist per (job, applicant) pair.
	Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]ApplicationView, error)
	ListApplicants(ctx context.Context, jobID, recruiterID string) ([]ApplicantView, error)
	// UpdateStatus records the review decision and notifies the applicant
	// by email asynchronously.
	UpdateStatus(ctx context.Context, in UpdateStatusInput) (*domain.Application, error)
}
