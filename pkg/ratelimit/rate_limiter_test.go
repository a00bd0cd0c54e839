package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"superviseme/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketLimiter_AllowsUpToLimit(t *testing.T) {
	// Arrange
	limiter := ratelimit.NewTokenBucketLimiter(3, time.Hour)
	ctx := context.Background()

	// Act + Assert
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i)
	}

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestTokenBucketLimiter_KeysAreIndependent(t *testing.T) {
	limiter := ratelimit.NewTokenBucketLimiter(1, time.Hour)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, allowed)

	// The first key is exhausted; a second key has its own bucket
	allowed, err = limiter.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestTokenBucketLimiter_Refills(t *testing.T) {
	limiter := ratelimit.NewTokenBucketLimiter(1, 20*time.Millisecond)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, _ = limiter.Allow(ctx, "1.2.3.4")
	require.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, err = limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestTokenBucketLimiter_Reset(t *testing.T) {
	limiter := ratelimit.NewTokenBucketLimiter(1, time.Hour)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)

	require.NoError(t, limiter.Reset(ctx, "1.2.3.4"))

	allowed, err := limiter.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, allowed)
}
