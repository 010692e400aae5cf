package voucher

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// Redemption is the append-only record written when an order consumes a voucher use.
type Redemption struct {
	id         kernel.UUID
	voucherID  kernel.UUID
	orderID    kernel.UUID
	amount     kernel.Money
	redeemedAt time.Time
}

func NewRedemption(discount Discount, orderID kernel.UUID, at time.Time) Redemption {
	return Redemption{
		id:         kernel.NewUUID(),
		voucherID:  discount.VoucherID,
		orderID:    orderID,
		amount:     discount.Amount,
		redeemedAt: at.UTC(),
	}
}

// RestoreRedemption rebuilds a stored redemption.
func RestoreRedemption(id, voucherID, orderID kernel.UUID, amount kernel.Money, at time.Time) Redemption {
	return Redemption{
		id:         id,
		voucherID:  voucherID,
		orderID:    orderID,
		amount:     amount,
		redeemedAt: at.UTC(),
	}
}

func (r Redemption) ID() kernel.UUID        { return r.id }
func (r Redemption) VoucherID() kernel.UUID { return r.voucherID }
func (r Redemption) OrderID() kernel.UUID   { return r.orderID }
func (r Redemption) Amount() kernel.Money   { return r.amount }
func (r Redemption) RedeemedAt() time.Time  { return r.redeemedAt }
