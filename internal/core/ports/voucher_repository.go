package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/voucher"
)

// VoucherRepository stores vouchers and their redemptions.
type VoucherRepository interface {
	Add(ctx context.Context, v *voucher.Voucher) error

	// GetByCode looks a voucher up by its case-insensitive code.
	GetByCode(ctx context.Context, code string) (*voucher.Voucher, error)

	// Redeem consumes one use with a single conditional increment. When the
	// voucher is inactive or already at max uses no row changes and the call
	// fails with errs.VoucherInvalidError (VOUCHER_EXHAUSTED). Concurrent
	// callers can never push used count past max uses.
	Redeem(ctx context.Context, voucherID kernel.UUID) error

	// AddRedemption appends the audit row linking a voucher to an order.
	AddRedemption(ctx context.Context, r voucher.Redemption) error

	// ListRedemptions returns the redemptions of a voucher, oldest first.
	ListRedemptions(ctx context.Context, voucherID kernel.UUID) ([]voucher.Redemption, error)
}
