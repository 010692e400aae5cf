package checkout

import (
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryOption is the delivery verdict for one seller group.
//
// Exactly one of three shapes occurs:
//   - platform delivery: RequiresPlatformDelivery, !CanDeliver, platform fee
//   - undeliverable: !CanDeliver, !RequiresPlatformDelivery, zero fee, no payment options
//   - seller delivery: CanDeliver with a fee from the seller's fee rules
type DeliveryOption struct {
	SellerID                 kernel.UUID
	SellerName               string
	ProductIDs               []kernel.UUID
	Subtotal                 kernel.Money
	CanDeliver               bool
	RequiresPlatformDelivery bool
	DeliveryFee              kernel.Money
	FreeDeliveryEligible     bool
	PaymentOptions           []kernel.PaymentType
	Message                  string
}

// IsUndeliverable reports a group that neither the seller nor the platform can ship.
func (o DeliveryOption) IsUndeliverable() bool {
	return !o.CanDeliver && !o.RequiresPlatformDelivery
}

func (o DeliveryOption) Offers(paymentType kernel.PaymentType) bool {
	for _, p := range o.PaymentOptions {
		if p == paymentType {
			return true
		}
	}
	return false
}
