package ports

import (
	"context"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

// StatusNotification is the payload handed to the notification pipeline when
// a recruiter updates an application's status.
type StatusNotification struct {
	Email       string
	JobTitle    string
	CompanyName string
	Status      domain.ApplicationStatus
}

// NotificationService delivers a single status notification. Implementations
// must be safe for concurrent use by dispatcher workers.
type NotificationService interface {
	Send(ctx context.Context, n StatusNotification) error
}
