package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	t.Parallel()

	attempts := 0
	result, err := RetryWithResult(context.Background(), fastRetryConfig(), func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, attempts)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	t.Parallel()

	attempts := 0
	wantErr := errors.New("persistent")
	err := Retry(context.Background(), fastRetryConfig(), func() error {
		attempts++
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, attempts)
}

func TestRetryHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := fastRetryConfig()
	cfg.InitialDelay = time.Second

	err := Retry(ctx, cfg, func() error {
		return errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
