// Package counter provides the shared counter store backing rate limiting,
// usage metering and the one-shot API-key reveal stash.
package counter

import (
	"context"
	"errors"
	"time"
)

// Key formats shared by the access middleware, the metering hook and the
// billing reconciler.
const (
	RateLimitKeyFmt = "ratelimit:%s:%d"
	UsageKeyFmt     = "usage:%s:%d"
	RevealKeyFmt    = "api_key_reveal:%s"
)

// ErrNil marks a missing key, mirroring redis.Nil.
var ErrNil = errors.New("counter: nil")

// Store is the minimal counter surface the platform depends on.
type Store interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
