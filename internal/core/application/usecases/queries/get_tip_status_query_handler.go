package queries

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// GetTipStatusQueryHandler answers from the cache when the tip already reached
// a terminal status and from the database otherwise. Cache failures only
// cost a database read.
type GetTipStatusQueryHandler struct {
	tips   ports.TipRepository
	cache  ports.TipStatusCache
	logger *slog.Logger
}

func NewGetTipStatusQueryHandler(
	tips ports.TipRepository,
	cache ports.TipStatusCache,
	logger *slog.Logger,
) GetTipStatusQueryHandler {
	return GetTipStatusQueryHandler{
		tips:   tips,
		cache:  cache,
		logger: logger.With("component", "tip_status"),
	}
}

func (h GetTipStatusQueryHandler) Handle(ctx context.Context, query GetTipStatusQuery) (ports.TipStatusView, error) {
	if err := query.Validate(); err != nil {
		return ports.TipStatusView{}, err
	}

	view, ok, err := h.cache.Get(ctx, query.TipID())
	if err != nil {
		h.logger.WarnContext(ctx, "Tip status cache read failed", "tip_id", query.TipID().String(), "error", err)
	}
	if ok {
		return view, nil
	}

	tip, err := h.tips.Get(ctx, query.TipID())
	if err != nil {
		return ports.TipStatusView{}, err
	}

	view = ports.NewTipStatusView(tip)
	if tip.Status().IsTerminal() {
		if err = h.cache.Set(ctx, view); err != nil {
			h.logger.WarnContext(ctx, "Tip status cache write failed", "tip_id", view.TipID, "error", err)
		}
	}
	return view, nil
}
