package ratelimit

import (
	"context"
	"time"
)

// Limits caps requests per sliding window. Zero disables a window.
type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	// Allow records one request for key and reports whether it fits every
	// enabled window.
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	GetRemaining(ctx context.Context, key string, window time.Duration, limit int) (int64, error)
	Reset(ctx context.Context, key string) error
}
