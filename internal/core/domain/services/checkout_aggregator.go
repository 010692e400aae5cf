package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
)

// CheckoutAggregator reduces per-seller delivery options into one Summary.
// Platform-delivered groups never block the order.
type CheckoutAggregator struct{}

func NewCheckoutAggregator() CheckoutAggregator {
	return CheckoutAggregator{}
}

func (CheckoutAggregator) Aggregate(location kernel.Location, options []checkout.DeliveryOption) checkout.Summary {
	summary := checkout.Summary{
		Location: location,
		Options:  append([]checkout.DeliveryOption(nil), options...),
	}

	platform := 0
	for _, o := range options {
		summary.Subtotal = summary.Subtotal.Add(o.Subtotal)
		summary.TotalDeliveryFee = summary.TotalDeliveryFee.Add(o.DeliveryFee)
		if o.IsUndeliverable() {
			summary.UndeliverableItems = append(summary.UndeliverableItems, o)
		}
		if o.RequiresPlatformDelivery {
			platform++
		}
		if o.Offers(kernel.PayAfterDelivery) {
			summary.HasPayAfterDeliveryOptions = true
		}
	}
	summary.CanProceedWithOrder = len(summary.UndeliverableItems) == 0

	switch {
	case !summary.CanProceedWithOrder:
		summary.Message = fmt.Sprintf("%d of %d sellers cannot deliver to %s; remove their items to continue",
			len(summary.UndeliverableItems), len(options), location.County())
	case platform > 0:
		summary.Message = fmt.Sprintf("All items can be delivered to %s, %d via platform delivery",
			location.County(), platform)
	default:
		summary.Message = fmt.Sprintf("All items can be delivered to %s", location.County())
	}
	return summary
}
