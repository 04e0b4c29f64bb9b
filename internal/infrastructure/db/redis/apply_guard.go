package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = time.Hour

// ApplyGuard provides a fast duplicate-application check backed by Redis.
// Key format: apply:<job_id>:<applicant_id>. The unique index on the
// applications collection remains the authority; the guard only spares the
// database a round trip on rapid resubmissions.
type ApplyGuard struct {
	client *redis.Client
}

// NewApplyGuard creates an ApplyGuard wrapping the given Redis client.
func NewApplyGuard(client *redis.Client) *ApplyGuard {
	return &ApplyGuard{client: client}
}

// IsRecent reports whether this applicant already applied to the job within
// the guard window.
func (g *ApplyGuard) IsRecent(ctx context.Context, jobID, applicantID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(jobID, applicantID)).Result()
	if err != nil {
		return false, fmt.Errorf("apply guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records a submitted application (expires after guardTTL).
func (g *ApplyGuard) Mark(ctx context.Context, jobID, applicantID string) error {
	return g.client.Set(ctx, g.key(jobID, applicantID), "1", guardTTL).Err()
}

func (g *ApplyGuard) key(jobID, applicantID string) string {
	return fmt.Sprintf("apply:%s:%s", jobID, applicantID)
}
