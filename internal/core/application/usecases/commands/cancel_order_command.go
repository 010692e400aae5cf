package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a PENDING or CONFIRMED order on behalf of its
// buyer or an admin.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    kernel.Role

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID, actorID kernel.UUID, role kernel.Role) (CancelOrderCommand, error) {
	var roleErr error
	if role != kernel.RoleBuyer && role != kernel.RoleAdmin {
		roleErr = errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot cancel orders", role))
	}

	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("actorId", actorID),
		roleErr,
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CancelOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c CancelOrderCommand) Role() kernel.Role    { return c.role }
