package pricing

import (
	"errors"

	"marketplace/internal/pkg/errs"
)

// Voucher metric stages and outcomes.
const (
	VoucherStagePreview = "preview"
	VoucherStageRedeem  = "redeem"

	VoucherOutcomeApplied = "applied"
	VoucherOutcomeError   = "error"
)

// VoucherOutcome is the metric label for a voucher error: its reason when it
// is a voucher rule failure, otherwise "error".
func VoucherOutcome(err error) string {
	var invalid *errs.VoucherInvalidError
	if errors.As(err, &invalid) {
		return string(invalid.Reason)
	}
	return VoucherOutcomeError
}
