package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReviewPaymentCommandIsNotConstructed = errors.New(
	"ReviewPaymentCommand must be created via NewReviewPaymentCommand constructor",
)

// ReviewPaymentCommand is an admin's approve or reject decision on a
// submitted payment. A rejection must say why.
//
// Example:
//
//	cmd, err := NewReviewPaymentCommand(orderID, adminID, payment.Reject, "receipt not found")
type ReviewPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	adminID  kernel.UUID
	decision payment.Decision
	reason   string

	guard guard.ConstructorGuard
}

func NewReviewPaymentCommand(
	orderID, adminID kernel.UUID,
	decision payment.Decision,
	reason string,
) (ReviewPaymentCommand, error) {
	cmd := ReviewPaymentCommand{
		orderID:  orderID,
		adminID:  adminID,
		decision: decision,
		reason:   strings.TrimSpace(reason),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("adminId", adminID),
		decision.Validate(),
		cmd.validateReason(),
	); err != nil {
		return ReviewPaymentCommand{}, err
	}

	return cmd, nil
}

func (c ReviewPaymentCommand) Validate() error {
	return c.guard.Validate(ErrReviewPaymentCommandIsNotConstructed)
}

func (c ReviewPaymentCommand) OrderID() kernel.UUID       { return c.orderID }
func (c ReviewPaymentCommand) AdminID() kernel.UUID       { return c.adminID }
func (c ReviewPaymentCommand) Decision() payment.Decision { return c.decision }
func (c ReviewPaymentCommand) Reason() string             { return c.reason }

func (c ReviewPaymentCommand) validateReason() error {
	if c.decision == payment.Reject && c.reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	return nil
}
