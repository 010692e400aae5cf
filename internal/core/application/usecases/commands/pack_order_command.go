package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrPackOrderCommandIsNotConstructed = errors.New(
	"PackOrderCommand must be created via NewPackOrderCommand constructor",
)

// PackOrderCommand is a seller reporting the order ready for pickup.
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPackOrderCommand(orderID, sellerID kernel.UUID) (PackOrderCommand, error) {
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("sellerId", sellerID),
	); err != nil {
		return PackOrderCommand{}, err
	}

	return PackOrderCommand{
		orderID:  orderID,
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

func (c PackOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c PackOrderCommand) SellerID() kernel.UUID { return c.sellerID }
