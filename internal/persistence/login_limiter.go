package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginFailuresPrefix = "login_failures:"

// LoginLimiter counts failed logins per login name in Redis. The counter
// expires after the lockout window, measured from the first failure.
type LoginLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter builds a limiter. A non-positive maxAttempts disables locking.
func NewLoginLimiter(client redis.Cmdable, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Locked reports whether login has reached the failure limit.
func (l *LoginLimiter) Locked(ctx context.Context, login string) (bool, error) {
	if l.maxAttempts <= 0 {
		return false, nil
	}
	count, err := l.client.Get(ctx, loginFailuresPrefix+login).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= l.maxAttempts, nil
}

// RecordFailure increments the failure counter for login. The window starts
// with the first failure; later failures do not extend it.
func (l *LoginLimiter) RecordFailure(ctx context.Context, login string) error {
	key := loginFailuresPrefix + login
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.client.Expire(ctx, key, l.window).Err()
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, login string) error {
	return l.client.Del(ctx, loginFailuresPrefix+login).Err()
}
