// Package poll runs a check on a fixed interval until it reports completion,
// the deadline passes or the caller cancels.
package poll

import (
	"context"
	"errors"
	"time"
)

// ErrDeadlineExceeded is returned when the check did not complete within
// Options.Timeout. Caller cancellation returns ctx.Err() instead.
var ErrDeadlineExceeded = errors.New("poll: deadline exceeded")

// Options configures Until. Both values must be positive.
type Options struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Check is one polling attempt. Returning done=true or an error stops polling.
type Check[T any] func(ctx context.Context) (result T, done bool, err error)

// Until calls check immediately and then once per interval. It returns the
// last result seen together with ErrDeadlineExceeded or the context error when
// polling stops without completion.
func Until[T any](ctx context.Context, opts Options, check Check[T]) (T, error) {
	var last T
	if opts.Interval <= 0 || opts.Timeout <= 0 {
		return last, errors.New("poll: interval and timeout must be positive")
	}

	deadlineCtx, cancel := context.WithTimeoutCause(ctx, opts.Timeout, ErrDeadlineExceeded)
	defer cancel()

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		result, done, err := check(deadlineCtx)
		if err != nil && deadlineCtx.Err() == nil {
			return result, err
		}
		if err == nil {
			last = result
			if done {
				return result, nil
			}
		}

		select {
		case <-deadlineCtx.Done():
			return last, stopReason(ctx, deadlineCtx)
		case <-ticker.C:
		}
	}
}

func stopReason(parent, deadlineCtx context.Context) error {
	if err := parent.Err(); err != nil {
		return err
	}
	return context.Cause(deadlineCtx)
}
