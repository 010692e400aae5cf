package queries

import (
	"context"

	"marketplace/internal/core/application/pricing"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/ports"
)

// GetDeliveryOptionsQueryHandler evaluates delivery for a cart. It reads the
// catalog outside of any transaction and never writes.
type GetDeliveryOptionsQueryHandler struct {
	catalog  ports.CatalogRepository
	settings ports.SettingsRepository
	quoter   pricing.Quoter
	metrics  ports.CheckoutMetrics
}

func NewGetDeliveryOptionsQueryHandler(
	catalog ports.CatalogRepository,
	settings ports.SettingsRepository,
	quoter pricing.Quoter,
	metrics ports.CheckoutMetrics,
) GetDeliveryOptionsQueryHandler {
	return GetDeliveryOptionsQueryHandler{
		catalog:  catalog,
		settings: settings,
		quoter:   quoter,
		metrics:  metrics,
	}
}

func (h GetDeliveryOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryOptionsQuery,
) (checkout.Summary, error) {
	if err := query.Validate(); err != nil {
		return checkout.Summary{}, err
	}

	quote, err := h.quoter.Quote(ctx, h.catalog, h.settings, query.County(), query.Items())
	if err != nil {
		return checkout.Summary{}, err
	}

	h.metrics.ObserveCheckout(quote.Summary.CanProceedWithOrder)
	return quote.Summary, nil
}
