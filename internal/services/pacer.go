package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter blocks until the next request may be sent.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewPacer allows requests per interval, blocking the caller between them.
// The initial burst is drained so the very first request also waits.
func NewPacer(requests int, interval time.Duration) *rate.Limiter {
	if requests <= 0 {
		requests = 1
	}
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, requests)
	}

	limiter := rate.NewLimiter(rate.Every(interval/time.Duration(requests)), requests)
	limiter.AllowN(time.Now(), requests)
	return limiter
}
