package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
)

// DefaultPlatformDeliveryFee is used when no platform fee is configured.
var DefaultPlatformDeliveryFee = kernel.Shillings(200)

// DeliveryResolver classifies one seller group against the buyer's location.
//
// Business rules, evaluated in order:
//  1. Seller does not deliver: platform delivery at platformFee, pay upfront only
//  2. Neither province nor county covered: undeliverable, no fee, no payment options
//  3. Otherwise: seller delivers; fee from FeeCalculator, AFTER_DELIVERY added
//     when the seller offers it
//
// Resolve is pure and safe to call from concurrent requests.
type DeliveryResolver struct {
	fees FeeCalculator
}

func NewDeliveryResolver(fees FeeCalculator) DeliveryResolver {
	return DeliveryResolver{fees: fees}
}

func (r DeliveryResolver) Resolve(
	location kernel.Location,
	group cart.SellerGroup,
	platformFee kernel.Money,
) checkout.DeliveryOption {
	s := group.Seller()
	settings := s.Delivery()

	option := checkout.DeliveryOption{
		SellerID:   s.ID(),
		SellerName: s.Name(),
		ProductIDs: group.ProductIDs(),
		Subtotal:   group.Subtotal(),
	}

	if !settings.OffersDelivery() {
		option.RequiresPlatformDelivery = true
		option.DeliveryFee = platformFee
		option.PaymentOptions = []kernel.PaymentType{kernel.PayBeforeDelivery}
		option.Message = fmt.Sprintf("%s uses platform delivery service", s.Name())
		return option
	}

	if !settings.Covers(location) {
		option.PaymentOptions = []kernel.PaymentType{}
		option.Message = fmt.Sprintf("%s doesn't deliver to %s", s.Name(), location.County())
		return option
	}

	fee := r.fees.Calculate(settings, group.Subtotal())

	option.CanDeliver = true
	option.DeliveryFee = fee.Amount
	option.FreeDeliveryEligible = fee.FreeDeliveryEligible
	option.Message = fee.Message
	option.PaymentOptions = []kernel.PaymentType{kernel.PayBeforeDelivery}
	if settings.OffersPayAfterDelivery() {
		option.PaymentOptions = append(option.PaymentOptions, kernel.PayAfterDelivery)
	}
	return option
}
