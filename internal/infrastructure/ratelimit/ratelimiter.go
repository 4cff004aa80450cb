package ratelimit

import (
	"context"
	"time"
)

// Limit is a request budget over a sliding window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Result reports the outcome of a single Allow call.
type Result struct {
	Allowed   bool
	Remaining int
	RetryAt   time.Time
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit Limit) (Result, error)
	Reset(ctx context.Context, key string) error
}
