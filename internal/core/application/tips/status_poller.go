// Package tips waits for tip payments to settle on behalf of a client that
// started an M-Pesa prompt.
package tips

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/poll"
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 120 * time.Second
)

// StatusSource reads the current status of a tip. The GET status endpoint
// client and the query handler both satisfy it.
type StatusSource interface {
	TipStatus(ctx context.Context, tipID kernel.UUID) (ports.TipStatusView, error)
}

// StatusSourceFunc adapts a function to StatusSource.
type StatusSourceFunc func(ctx context.Context, tipID kernel.UUID) (ports.TipStatusView, error)

func (f StatusSourceFunc) TipStatus(ctx context.Context, tipID kernel.UUID) (ports.TipStatusView, error) {
	return f(ctx, tipID)
}

// StatusPoller polls a tip until it leaves PENDING. A tip still pending at
// the deadline is reported as a retryable failure; the server-side expiry job
// settles the stored row independently.
type StatusPoller struct {
	source StatusSource
	opts   poll.Options
	logger *slog.Logger
}

func NewStatusPoller(source StatusSource, interval, timeout time.Duration, logger *slog.Logger) StatusPoller {
	return StatusPoller{
		source: source,
		opts:   poll.Options{Interval: interval, Timeout: timeout},
		logger: logger.With("component", "tip_poller"),
	}
}

// Wait returns the final view. A FAILED or CANCELLED tip, and a timeout, also
// return an *errs.PaymentFailedError describing what the payer should do.
// Cancelling ctx stops polling and returns ctx.Err().
func (p StatusPoller) Wait(ctx context.Context, tipID kernel.UUID) (ports.TipStatusView, error) {
	view, err := poll.Until(ctx, p.opts, func(ctx context.Context) (ports.TipStatusView, bool, error) {
		v, err := p.source.TipStatus(ctx, tipID)
		if err != nil {
			return v, false, err
		}
		p.logger.DebugContext(ctx, "Polled tip status", "tip_id", tipID.String(), "status", v.Status)
		return v, v.Status != payment.TipPending.String(), nil
	})

	switch {
	case errors.Is(err, poll.ErrDeadlineExceeded):
		p.logger.InfoContext(ctx, "Tip not confirmed before deadline", "tip_id", tipID.String())
		_, failure := payment.Outcome(payment.ResultExpiredLocally)
		return ports.TipStatusView{
			TipID:          tipID.String(),
			Status:         payment.TipFailed.String(),
			FailedReason:   failure.Reason,
			ActionRequired: failure.ActionRequired,
			CanRetry:       failure.CanRetry,
		}, failure
	case err != nil:
		return view, err
	case view.Status == payment.TipCompleted.String():
		return view, nil
	default:
		return view, errs.NewPaymentFailedError(view.FailedReason, view.ActionRequired, view.CanRetry)
	}
}
