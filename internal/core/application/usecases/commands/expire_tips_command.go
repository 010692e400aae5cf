package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrExpireTipsCommandIsNotConstructed = errors.New(
	"ExpireTipsCommand must be created via NewExpireTipsCommand constructor",
)

// DefaultExpiryBatch bounds how many tips one run expires.
const DefaultExpiryBatch = 100

// ExpireTipsCommand fails tips that stayed PENDING longer than timeout.
type ExpireTipsCommand struct { //nolint:recvcheck //using for validation
	timeout time.Duration
	batch   int

	guard guard.ConstructorGuard
}

func NewExpireTipsCommand(timeout time.Duration, batch int) (ExpireTipsCommand, error) {
	var timeoutErr, batchErr error
	if timeout <= 0 {
		timeoutErr = errs.NewValueIsOutOfRangeError("timeout", timeout, "1ns", "unbounded")
	}
	if batch < 1 {
		batchErr = errs.NewValueIsOutOfRangeError("batch", batch, 1, "unbounded")
	}
	if err := errors.Join(timeoutErr, batchErr); err != nil {
		return ExpireTipsCommand{}, err
	}

	return ExpireTipsCommand{
		timeout: timeout,
		batch:   batch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ExpireTipsCommand) Validate() error {
	return c.guard.Validate(ErrExpireTipsCommandIsNotConstructed)
}

func (c ExpireTipsCommand) Timeout() time.Duration { return c.timeout }
func (c ExpireTipsCommand) Batch() int             { return c.batch }
