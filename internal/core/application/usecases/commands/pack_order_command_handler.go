package commands

import (
	"context"
	"time"

	"marketplace/internal/pkg/errs"
)

// PackOrderCommandHandler moves a CONFIRMED order to PACKED. The seller must
// own at least one line of the order. Packing is order-level: the first owning
// seller to pack moves the whole order, and later sellers get an invalid
// transition.
type PackOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPackOrderCommandHandler(uowFactory OrderUoWFactory) PackOrderCommandHandler {
	return PackOrderCommandHandler{uowFactory: uowFactory}
}

func (h *PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) error {
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
	if !o.HasSeller(cmd.SellerID()) {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if err = o.Pack(time.Now()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
