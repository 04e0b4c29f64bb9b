package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestGuard(t *testing.T) (*ApplyGuard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewApplyGuard(client), mr
}

func TestApplyGuard_MarkThenIsRecent(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	recent, err := guard.IsRecent(ctx, "job_1", "student_1")
	if err != nil {
		t.Fatalf("IsRecent failed: %v", err)
	}
	if recent {
		t.Fatalf("fresh pair should not be recent")
	}

	if err := guard.Mark(ctx, "job_1", "student_1"); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	recent, err = guard.IsRecent(ctx, "job_1", "student_1")
	if err != nil {
		t.Fatalf("IsRecent failed: %v", err)
	}
	if !recent {
		t.Fatalf("marked pair should be recent")
	}
}

func TestApplyGuard_KeysAreScopedPerPair(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	if err := guard.Mark(ctx, "job_1", "student_1"); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	for _, pair := range [][2]string{
		{"job_1", "student_2"},
		{"job_2", "student_1"},
	} {
		recent, err := guard.IsRecent(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("IsRecent(%s, %s) failed: %v", pair[0], pair[1], err)
		}
		if recent {
			t.Fatalf("pair (%s, %s) must not share the guard key", pair[0], pair[1])
		}
	}
}

func TestApplyGuard_EntryExpires(t *testing.T) {
	guard, mr := newTestGuard(t)
	ctx := context.Background()

	if err := guard.Mark(ctx, "job_1", "student_1"); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}

	mr.FastForward(guardTTL)

	recent, err := guard.IsRecent(ctx, "job_1", "student_1")
	if err != nil {
		t.Fatalf("IsRecent failed: %v", err)
	}
	if recent {
		t.Fatalf("guard entry should expire after the TTL")
	}
}
