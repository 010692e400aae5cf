package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ApplyPaymentResultCommandHandler settles a PENDING tip from the gateway
// callback. Gateways redeliver callbacks, so a tip that is already terminal
// is left untouched and the call succeeds.
type ApplyPaymentResultCommandHandler struct {
	uowFactory TipUoWFactory
	cache      ports.TipStatusCache
	metrics    ports.CheckoutMetrics
	logger     *slog.Logger
}

func NewApplyPaymentResultCommandHandler(
	uowFactory TipUoWFactory,
	cache ports.TipStatusCache,
	metrics ports.CheckoutMetrics,
	logger *slog.Logger,
) ApplyPaymentResultCommandHandler {
	return ApplyPaymentResultCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		metrics:    metrics,
		logger:     logger.With("component", "payment_result"),
	}
}

func (h *ApplyPaymentResultCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentResultCommand) error {
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

	tipRepo := uow.TipRepository()
	tip, err := tipRepo.GetByCheckoutRequestID(ctx, cmd.CheckoutRequestID())
	if err != nil {
		return err
	}

	err = tip.ApplyResult(cmd.ResultCode(), cmd.ResultDesc(), time.Now())
	if err == nil {
		err = tipRepo.Update(ctx, tip)
	}
	if errors.Is(err, errs.ErrInvalidTransition) {
		h.logger.InfoContext(ctx, "Ignoring replayed payment callback",
			"checkout_request_id", cmd.CheckoutRequestID(), "result_code", cmd.ResultCode())
		return nil
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	settled(ctx, h.cache, h.metrics, h.logger, tip)
	return nil
}

// settled publishes a freshly terminal tip to metrics and the status cache.
// Cache failures only cost a database read on the next poll.
func settled(ctx context.Context, cache ports.TipStatusCache, metrics ports.CheckoutMetrics, logger *slog.Logger, tip *payment.Tip) {
	metrics.ObserveTipResult(tip.Status().String())
	if err := cache.Set(ctx, ports.NewTipStatusView(tip)); err != nil {
		logger.WarnContext(ctx, "Failed to cache tip status", "tip_id", tip.ID().String(), "error", err)
	}
}
