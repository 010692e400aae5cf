package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand is an admin confirming a PENDING order. BEFORE_DELIVERY
// orders are normally confirmed by payment approval instead.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	adminID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(orderID, adminID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("adminId", adminID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID: orderID,
		adminID: adminID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c ConfirmOrderCommand) AdminID() kernel.UUID { return c.adminID }
