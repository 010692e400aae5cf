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

// ExpireTipsCommandHandler fails stale PENDING tips in one transaction. A tip
// the webhook settles between the read and the write is skipped.
type ExpireTipsCommandHandler struct {
	uowFactory TipUoWFactory
	cache      ports.TipStatusCache
	metrics    ports.CheckoutMetrics
	logger     *slog.Logger
}

func NewExpireTipsCommandHandler(
	uowFactory TipUoWFactory,
	cache ports.TipStatusCache,
	metrics ports.CheckoutMetrics,
	logger *slog.Logger,
) ExpireTipsCommandHandler {
	return ExpireTipsCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		metrics:    metrics,
		logger:     logger.With("component", "tip_expiry"),
	}
}

// Handle returns how many tips were expired.
func (h *ExpireTipsCommandHandler) Handle(ctx context.Context, cmd ExpireTipsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	tipRepo := uow.TipRepository()
	stale, err := tipRepo.ListPendingCreatedBefore(ctx, now.Add(-cmd.Timeout()), cmd.Batch())
	if err != nil {
		return 0, err
	}

	expired := make([]*payment.Tip, 0, len(stale))
	for _, tip := range stale {
		if !tip.IsExpired(cmd.Timeout(), now) {
			continue
		}
		if err = tip.Expire(now); err != nil {
			return 0, err
		}
		err = tipRepo.Update(ctx, tip)
		if errors.Is(err, errs.ErrInvalidTransition) {
			continue
		}
		if err != nil {
			return 0, err
		}
		expired = append(expired, tip)
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, tip := range expired {
		settled(ctx, h.cache, h.metrics, h.logger, tip)
	}
	if len(expired) > 0 {
		h.logger.InfoContext(ctx, "Expired pending tips", "count", len(expired))
	}
	return len(expired), nil
}
