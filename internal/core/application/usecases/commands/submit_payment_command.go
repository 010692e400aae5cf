package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitPaymentCommandIsNotConstructed = errors.New(
	"SubmitPaymentCommand must be created via NewSubmitPaymentCommand constructor",
)

// SubmitPaymentCommand records the buyer's payment reference, typically an
// M-Pesa receipt number, for admin review.
type SubmitPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	buyerID   kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

func NewSubmitPaymentCommand(orderID, buyerID kernel.UUID, reference string) (SubmitPaymentCommand, error) {
	cmd := SubmitPaymentCommand{guard: guard.NewConstructorGuard()}

	reference = strings.TrimSpace(reference)
	var referenceErr error
	if reference == "" {
		referenceErr = errs.NewValueIsRequiredError("paymentReference")
	}

	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("buyerId", buyerID),
		referenceErr,
	); err != nil {
		return SubmitPaymentCommand{}, err
	}

	cmd.orderID = orderID
	cmd.buyerID = buyerID
	cmd.reference = reference
	return cmd, nil
}

func (c SubmitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentCommandIsNotConstructed)
}

func (c SubmitPaymentCommand) OrderID() kernel.UUID { return c.orderID }
func (c SubmitPaymentCommand) BuyerID() kernel.UUID { return c.buyerID }
func (c SubmitPaymentCommand) Reference() string    { return c.reference }
