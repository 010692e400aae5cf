package commands

import (
	"context"
	"time"

	"marketplace/internal/pkg/errs"
)

// SubmitPaymentCommandHandler moves the order's payment from UNPAID to
// SUBMITTED. Only the buyer who placed the order may submit; anyone else is
// told the order does not exist.
type SubmitPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSubmitPaymentCommandHandler(uowFactory OrderUoWFactory) SubmitPaymentCommandHandler {
	return SubmitPaymentCommandHandler{uowFactory: uowFactory}
}

func (h *SubmitPaymentCommandHandler) Handle(ctx context.Context, cmd SubmitPaymentCommand) error {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.BuyerID().IsEqual(cmd.BuyerID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if err = o.SubmitPayment(cmd.Reference(), time.Now()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
