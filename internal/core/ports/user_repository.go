package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// UserRepository defines persistence operations for the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile persists name, phone and profile fields only. Email,
	// role and password hash are never touched by this call.
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)
}
