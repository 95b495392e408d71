package research

import (
	"context"
	"fmt"
	"seoaudit/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Limiter provides cooperative rate limiting against a vendor that reports its
// budget in response headers.
//
// # Rate limiting overview
//
// The limiter tracks the last known vendor rate-limit status (last) and the
// number of requests currently in flight (inFlight). Before a request, Reserve
// "reserves" a slot from the current budget. The effective remaining budget is
// computed as:
//
//	remaining := last.Remaining
//	if now > last.ResetAt { remaining = last.Limit }
//
// A request may start if remaining - inFlight > 0. This allows concurrent
// requests as long as they do not exceed the Remaining budget. When there is no
// budget left, Reserve waits until either:
//   - the ResetAt time is reached (budget replenishes to Limit), or
//   - another in-flight request finishes and signals finished.
//
// After a request completes, Release is called with the status parsed from the
// response. It decrements inFlight, wakes one waiter (non-blocking) and merges
// the status: a new ResetAt is always adopted, otherwise Remaining is only
// replaced when it decreases.
//
// Bootstrap behavior: before any response has been seen, the limiter assumes
// Limit=1, Remaining=1 and a far-future ResetAt. Exactly one request goes
// through to learn the real budget.
type Limiter struct {
	// mu protects inFlight and last.
	mu       sync.Mutex
	inFlight int
	last     *RateLimitStatus
	// finished is an unbuffered wake-up channel for goroutines waiting in Reserve.
	finished chan struct{}
}

// NewLimiter returns a Limiter in its bootstrap state.
func NewLimiter() *Limiter {
	return &Limiter{finished: make(chan struct{})}
}

// Reserve reserves one unit from the budget or blocks until one becomes
// available. It fails when ctx is done while waiting.
func (l *Limiter) Reserve(ctx context.Context) error {
	for {
		l.mu.Lock()

		if l.last == nil {
			l.last = &RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := l.last.Remaining
		if time.Now().UTC().After(l.last.ResetAt) {
			remaining = l.last.Limit
		}

		if remaining-l.inFlight > 0 {
			l.inFlight++
			l.mu.Unlock()

			return nil
		}

		resetAt := l.last.ResetAt
		logger.Debug(ctx, "waiting for vendor rate limit slot",
			zap.Int("remaining", remaining),
			zap.Int("limit", l.last.Limit),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", l.inFlight))
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-l.finished:
			continue
		case <-time.After(time.Until(resetAt)):
			continue
		}
	}
}

// Release returns a reserved slot. status is the rate-limit window reported by
// the response; a zero ResetAt leaves the known window unchanged.
func (l *Limiter) Release(ctx context.Context, status RateLimitStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inFlight > 0 {
		l.inFlight--
	}

	select {
	case l.finished <- struct{}{}:
	default:
	}

	if status.ResetAt.IsZero() {
		return
	}

	if l.last == nil || !l.last.ResetAt.Equal(status.ResetAt) || status.Remaining < l.last.Remaining {
		l.last = &status
		logger.Debug(ctx, "received vendor rate limit status",
			zap.Int("limit", status.Limit),
			zap.Int("remaining", status.Remaining),
			zap.Time("resetAt", status.ResetAt),
			zap.Int("inFlight", l.inFlight))
	}
}

// Status returns the last known rate-limit window.
func (l *Limiter) Status() RateLimitStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.last == nil {
		return RateLimitStatus{}
	}

	return *l.last
}
