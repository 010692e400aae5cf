package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDeliveryAgentCommandIsNotConstructed = errors.New(
	"AssignDeliveryAgentCommand must be created via NewAssignDeliveryAgentCommand constructor",
)

// AssignDeliveryAgentCommand is an admin handing an order's delivery to an
// agent before pickup.
type AssignDeliveryAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignDeliveryAgentCommand(orderID, agentID kernel.UUID) (AssignDeliveryAgentCommand, error) {
	if err := errors.Join(
		requireID("orderId", orderID),
		requireID("agentId", agentID),
	); err != nil {
		return AssignDeliveryAgentCommand{}, err
	}

	return AssignDeliveryAgentCommand{
		orderID: orderID,
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignDeliveryAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryAgentCommandIsNotConstructed)
}

func (c AssignDeliveryAgentCommand) OrderID() kernel.UUID { return c.orderID }
func (c AssignDeliveryAgentCommand) AgentID() kernel.UUID { return c.agentID }
