package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
)

// RecordDeliveryEventCommandHandler advances the delivery and, where the two
// lifecycles meet, the order:
//
//	PICKED_UP         delivery PICKED_UP, order DISPATCHED
//	IN_TRANSIT        delivery IN_TRANSIT
//	OUT_FOR_DELIVERY  both OUT_FOR_DELIVERY
//	DELIVERED         both DELIVERED
//	FAILED            delivery FAILED, order unchanged
type RecordDeliveryEventCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

func NewRecordDeliveryEventCommandHandler(uowFactory FulfillmentUoWFactory) RecordDeliveryEventCommandHandler {
	return RecordDeliveryEventCommandHandler{uowFactory: uowFactory}
}

func (h *RecordDeliveryEventCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryEventCommand) error {
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

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	d, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	orderChanged, err := applyDeliveryEvent(cmd, o, d, time.Now())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}
	if orderChanged {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func applyDeliveryEvent(cmd RecordDeliveryEventCommand, o *order.Order, d *delivery.Delivery, now time.Time) (bool, error) {
	agent := cmd.AgentID()

	switch cmd.Event() {
	case EventPickedUp:
		if err := d.PickUp(agent, now); err != nil {
			return false, err
		}
		return true, o.Dispatch(now)
	case EventInTransit:
		return false, d.StartTransit(agent, now)
	case EventOutForDelivery:
		if err := d.MarkOutForDelivery(agent, now); err != nil {
			return false, err
		}
		return true, o.MarkOutForDelivery(now)
	case EventDelivered:
		if err := d.MarkDelivered(agent, now); err != nil {
			return false, err
		}
		return true, o.MarkDelivered(now)
	default:
		return false, d.Fail(agent, cmd.Reason(), now)
	}
}
