package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
)

// ConfirmOrderCommandHandler confirms the order and opens its delivery in the
// same transaction. The order refuses to confirm while a BEFORE_DELIVERY
// payment is not approved.
type ConfirmOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory FulfillmentUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory}
}

func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	now := time.Now()
	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Confirm(now); err != nil {
		return err
	}
	d, err := delivery.NewDelivery(o.ID(), o.DeliveryFee(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
