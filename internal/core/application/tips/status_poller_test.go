package tips_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/internal/core/application/tips"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence answers PENDING until the n-th call and then final.
func sequence(n int32, final ports.TipStatusView, calls *atomic.Int32) tips.StatusSource {
	return tips.StatusSourceFunc(func(_ context.Context, tipID kernel.UUID) (ports.TipStatusView, error) {
		if calls.Add(1) < n {
			return ports.TipStatusView{TipID: tipID.String(), Status: "PENDING"}, nil
		}
		return final, nil
	})
}

func newPoller(source tips.StatusSource, timeout time.Duration) tips.StatusPoller {
	return tips.NewStatusPoller(source, 5*time.Millisecond, timeout, slog.New(slog.DiscardHandler))
}

func TestStatusPoller_Wait(t *testing.T) {
	tipID := kernel.NewUUID()

	t.Run("completed", func(t *testing.T) {
		var calls atomic.Int32
		final := ports.TipStatusView{TipID: tipID.String(), Status: "COMPLETED"}

		view, err := newPoller(sequence(3, final, &calls), time.Second).Wait(t.Context(), tipID)

		require.NoError(t, err)
		assert.Equal(t, final, view)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("failed carries the payer hint", func(t *testing.T) {
		var calls atomic.Int32
		final := ports.TipStatusView{
			TipID: tipID.String(), Status: "FAILED",
			FailedReason: "Wrong M-Pesa PIN entered", ActionRequired: "Retry and enter the correct M-Pesa PIN",
			CanRetry: true,
		}

		view, err := newPoller(sequence(2, final, &calls), time.Second).Wait(t.Context(), tipID)

		var failure *errs.PaymentFailedError
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, "Wrong M-Pesa PIN entered", failure.Reason)
		assert.True(t, failure.CanRetry)
		assert.Equal(t, "FAILED", view.Status)
	})

	t.Run("cancelled on the phone", func(t *testing.T) {
		var calls atomic.Int32
		final := ports.TipStatusView{TipID: tipID.String(), Status: "CANCELLED", CanRetry: true}

		_, err := newPoller(sequence(1, final, &calls), time.Second).Wait(t.Context(), tipID)

		require.ErrorIs(t, err, errs.ErrPaymentFailed)
	})

	t.Run("deadline becomes a retryable failure", func(t *testing.T) {
		var calls atomic.Int32

		view, err := newPoller(sequence(1_000_000, ports.TipStatusView{}, &calls), 30*time.Millisecond).
			Wait(t.Context(), tipID)

		var failure *errs.PaymentFailedError
		require.ErrorAs(t, err, &failure)
		assert.True(t, failure.CanRetry)
		assert.Equal(t, "FAILED", view.Status)
		assert.Equal(t, tipID.String(), view.TipID)
		assert.NotEmpty(t, view.ActionRequired)
	})

	t.Run("closing the dialog cancels polling", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		var calls atomic.Int32
		source := tips.StatusSourceFunc(func(context.Context, kernel.UUID) (ports.TipStatusView, error) {
			if calls.Add(1) == 2 {
				cancel()
			}
			return ports.TipStatusView{Status: "PENDING"}, nil
		})

		_, err := newPoller(source, time.Second).Wait(ctx, tipID)

		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, errs.ErrPaymentFailed)
	})

	t.Run("source error stops polling", func(t *testing.T) {
		boom := errors.New("tip not found")
		source := tips.StatusSourceFunc(func(context.Context, kernel.UUID) (ports.TipStatusView, error) {
			return ports.TipStatusView{}, boom
		})

		_, err := newPoller(source, time.Second).Wait(t.Context(), tipID)

		require.ErrorIs(t, err, boom)
	})
}
