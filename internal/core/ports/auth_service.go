package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
	AvatarURL   string
}

// UpdateProfileInput carries the mutable profile fields. Empty strings mean
// "leave unchanged"; Skills replaces the stored list when non-nil.
type UpdateProfileInput struct {
	UserID             string
	FullName           string
	Email              string
	PhoneNumber        string
	Bio                string
	Skills             []string
	ResumeURL          string
	ResumeOriginalName string
}

// AuthService implements registration, login and profile maintenance.
//
// Login enforces the full credential contract: the user must exist, the
// claimed role must equal the stored role, and the password must match the
// stored hash. Only then is a session token minted.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password, role string) (string, *domain.User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error)
}
