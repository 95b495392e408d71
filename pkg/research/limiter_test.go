package research_test

import (
	"context"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/research"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestLimiter_BootstrapAllowsSingleProbe(t *testing.T) {
	l := research.NewLimiter()
	require.NoError(t, l.Reserve(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.Error(t, l.Reserve(ctx), "second request must wait for the probe")
}

func TestLimiter_BlocksSecondUntilFirstFinishes(t *testing.T) {
	l := research.NewLimiter()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	require.NoError(t, l.Reserve(ctx))

	reserved := make(chan struct{})
	go func() {
		if l.Reserve(ctx) == nil {
			close(reserved)
		}
	}()

	select {
	case <-reserved:
		t.Fatal("second reservation succeeded before first finished")
	case <-time.After(100 * time.Millisecond):
	}

	l.Release(ctx, research.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)})

	select {
	case <-reserved:
	case <-time.After(2 * time.Second):
		t.Fatal("second reservation did not succeed after first finished")
	}
}

func TestLimiter_AllowsUpToRemainingConcurrent(t *testing.T) {
	l := research.NewLimiter()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// prime with a budget of two
	require.NoError(t, l.Reserve(ctx))
	l.Release(ctx, research.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)})

	require.NoError(t, l.Reserve(ctx))
	require.NoError(t, l.Reserve(ctx))

	reserved := make(chan struct{})
	go func() {
		if l.Reserve(ctx) == nil {
			close(reserved)
		}
	}()

	select {
	case <-reserved:
		t.Fatal("third reservation succeeded with a budget of two")
	case <-time.After(150 * time.Millisecond):
	}

	l.Release(ctx, research.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)})

	select {
	case <-reserved:
	case <-time.After(2 * time.Second):
		t.Fatal("third reservation did not succeed after a release")
	}
}

func TestLimiter_WaitsForReset(t *testing.T) {
	l := research.NewLimiter()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resetDelay := 300 * time.Millisecond
	require.NoError(t, l.Reserve(ctx))
	l.Release(ctx, research.RateLimitStatus{Limit: 5, Remaining: 0, ResetAt: time.Now().Add(resetDelay)})

	start := time.Now()
	require.NoError(t, l.Reserve(ctx))
	require.GreaterOrEqual(t, time.Since(start), resetDelay-50*time.Millisecond)
}

func TestLimiter_ReleaseMergesConservatively(t *testing.T) {
	l := research.NewLimiter()
	ctx := context.Background()
	resetAt := time.Now().Add(time.Minute)

	l.Release(ctx, research.RateLimitStatus{Limit: 10, Remaining: 5, ResetAt: resetAt})
	l.Release(ctx, research.RateLimitStatus{Limit: 10, Remaining: 7, ResetAt: resetAt})
	require.Equal(t, 5, l.Status().Remaining)

	l.Release(ctx, research.RateLimitStatus{Limit: 10, Remaining: 3, ResetAt: resetAt})
	require.Equal(t, 3, l.Status().Remaining)

	next := resetAt.Add(time.Minute)
	l.Release(ctx, research.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: next})
	require.Equal(t, 9, l.Status().Remaining)

	l.Release(ctx, research.RateLimitStatus{})
	require.True(t, l.Status().ResetAt.Equal(next))
}
