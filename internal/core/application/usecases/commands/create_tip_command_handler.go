package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
)

type CreateTipCommandHandler struct {
	uowFactory TipUoWFactory
}

func NewCreateTipCommandHandler(uowFactory TipUoWFactory) CreateTipCommandHandler {
	return CreateTipCommandHandler{uowFactory: uowFactory}
}

// Handle stores a PENDING tip and returns its id for status polling.
func (h *CreateTipCommandHandler) Handle(ctx context.Context, cmd CreateTipCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	tip, err := payment.NewTip(cmd.CheckoutRequestID(), cmd.PostSlug(), cmd.Phone(), cmd.Amount(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TipRepository().Add(ctx, tip); err != nil {
		return kernel.UUID{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return tip.ID(), nil
}
