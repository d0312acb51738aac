package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, maxAttempts, 15*time.Minute), mr
}

func TestLoginLimiter_LocksAfterMaxAttempts(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		locked, err := limiter.Locked(ctx, "alice")
		if err != nil {
			t.Fatalf("Locked: %v", err)
		}
		if locked {
			t.Fatalf("locked after %d failures", i)
		}
		if err := limiter.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	locked, err := limiter.Locked(ctx, "alice")
	if err != nil || !locked {
		t.Fatalf("Locked = (%v, %v), want locked", locked, err)
	}
	if locked, _ := limiter.Locked(ctx, "bob"); locked {
		t.Fatalf("other logins must not be locked")
	}
}

func TestLoginLimiter_WindowStartsAtFirstFailure(t *testing.T) {
	limiter, mr := newTestLimiter(t, 2)
	ctx := context.Background()
	key := loginFailuresPrefix + "alice"

	if err := limiter.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if ttl := mr.TTL(key); ttl != 15*time.Minute {
		t.Fatalf("ttl = %s, want 15m", ttl)
	}

	mr.FastForward(10 * time.Minute)
	if err := limiter.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if ttl := mr.TTL(key); ttl != 5*time.Minute {
		t.Fatalf("ttl after second failure = %s, want 5m", ttl)
	}
	if locked, _ := limiter.Locked(ctx, "alice"); !locked {
		t.Fatalf("expected lock")
	}

	mr.FastForward(5 * time.Minute)
	if locked, err := limiter.Locked(ctx, "alice"); err != nil || locked {
		t.Fatalf("Locked after window = (%v, %v)", locked, err)
	}
}

func TestLoginLimiter_Reset(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1)
	ctx := context.Background()

	if err := limiter.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}
	if err := limiter.Reset(ctx, "alice"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if mr.Exists(loginFailuresPrefix + "alice") {
		t.Fatalf("counter still present after reset")
	}
	if locked, _ := limiter.Locked(ctx, "alice"); locked {
		t.Fatalf("locked after reset")
	}
}

func TestLoginLimiter_Disabled(t *testing.T) {
	limiter, _ := newTestLimiter(t, 0)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := limiter.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}
	if locked, _ := limiter.Locked(ctx, "alice"); locked {
		t.Fatalf("a non-positive limit must never lock")
	}
}

func TestLoginLimiter_RedisDown(t *testing.T) {
	limiter, mr := newTestLimiter(t, 3)
	mr.Close()

	if _, err := limiter.Locked(context.Background(), "alice"); err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
	if err := limiter.RecordFailure(context.Background(), "alice"); err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
}
