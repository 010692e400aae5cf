package queries

import (
	"context"
	"time"

	"marketplace/internal/core/application/pricing"
	"marketplace/internal/core/ports"
)

// PreviewVoucherQueryHandler evaluates a voucher for display. Rule failures
// come back as *errs.VoucherInvalidError and are counted by reason.
type PreviewVoucherQueryHandler struct {
	catalog  ports.CatalogRepository
	settings ports.SettingsRepository
	vouchers ports.VoucherRepository
	quoter   pricing.Quoter
	metrics  ports.CheckoutMetrics
}

func NewPreviewVoucherQueryHandler(
	catalog ports.CatalogRepository,
	settings ports.SettingsRepository,
	vouchers ports.VoucherRepository,
	quoter pricing.Quoter,
	metrics ports.CheckoutMetrics,
) PreviewVoucherQueryHandler {
	return PreviewVoucherQueryHandler{
		catalog:  catalog,
		settings: settings,
		vouchers: vouchers,
		quoter:   quoter,
		metrics:  metrics,
	}
}

func (h PreviewVoucherQueryHandler) Handle(
	ctx context.Context,
	query PreviewVoucherQuery,
) (PreviewVoucherResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewVoucherResponse{}, err
	}

	quote, err := h.quoter.Quote(ctx, h.catalog, h.settings, query.County(), query.Items())
	if err != nil {
		return PreviewVoucherResponse{}, err
	}

	v, err := h.vouchers.GetByCode(ctx, query.Code())
	if err == nil {
		quote, err = quote.WithVoucher(v, query.Role(), time.Now())
	}
	if err != nil {
		h.metrics.ObserveVoucher(pricing.VoucherStagePreview, pricing.VoucherOutcome(err))
		return PreviewVoucherResponse{}, err
	}
	h.metrics.ObserveVoucher(pricing.VoucherStagePreview, pricing.VoucherOutcomeApplied)

	return PreviewVoucherResponse{
		Code:         quote.Discount.Code,
		DiscountType: quote.Discount.Type,
		Discount:     quote.DiscountAmount(),
		FreeShipping: quote.Discount.FreeShipping,
		Subtotal:     quote.Subtotal(),
		DeliveryFee:  quote.DeliveryFee(),
		Total:        quote.Total(),
	}, nil
}
