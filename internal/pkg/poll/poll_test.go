package poll_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/internal/pkg/poll"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntil(t *testing.T) {
	opts := poll.Options{Interval: 5 * time.Millisecond, Timeout: time.Second}

	t.Run("stops when done", func(t *testing.T) {
		var calls atomic.Int32

		got, err := poll.Until(t.Context(), opts, func(context.Context) (int32, bool, error) {
			n := calls.Add(1)
			return n, n == 3, nil
		})

		require.NoError(t, err)
		assert.Equal(t, int32(3), got)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("first check runs immediately", func(t *testing.T) {
		start := time.Now()

		_, err := poll.Until(t.Context(), poll.Options{Interval: time.Hour, Timeout: time.Hour},
			func(context.Context) (string, bool, error) { return "ok", true, nil })

		require.NoError(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("deadline returns last result", func(t *testing.T) {
		got, err := poll.Until(t.Context(), poll.Options{Interval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond},
			func(context.Context) (string, bool, error) { return "PENDING", false, nil })

		require.ErrorIs(t, err, poll.ErrDeadlineExceeded)
		assert.Equal(t, "PENDING", got)
	})

	t.Run("caller cancellation wins over deadline", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		var calls atomic.Int32

		_, err := poll.Until(ctx, opts, func(context.Context) (int, bool, error) {
			if calls.Add(1) == 2 {
				cancel()
			}
			return 0, false, nil
		})

		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, poll.ErrDeadlineExceeded)
	})

	t.Run("check error stops polling", func(t *testing.T) {
		boom := errors.New("status endpoint returned 500")
		var calls atomic.Int32

		_, err := poll.Until(t.Context(), opts, func(context.Context) (int, bool, error) {
			calls.Add(1)
			return 0, false, boom
		})

		require.ErrorIs(t, err, boom)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := poll.Until(t.Context(), poll.Options{}, func(context.Context) (int, bool, error) {
			return 0, true, nil
		})

		require.Error(t, err)
	})
}
