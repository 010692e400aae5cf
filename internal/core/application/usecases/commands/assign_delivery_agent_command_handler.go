package commands

import (
	"context"
	"time"
)

type AssignDeliveryAgentCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

func NewAssignDeliveryAgentCommandHandler(uowFactory FulfillmentUoWFactory) AssignDeliveryAgentCommandHandler {
	return AssignDeliveryAgentCommandHandler{uowFactory: uowFactory}
}

// Handle sets or replaces the agent of a delivery that has not been picked up.
func (h *AssignDeliveryAgentCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = d.AssignAgent(cmd.AgentID(), time.Now()); err != nil {
		return err
	}
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
