package checkout

import (
	"marketplace/internal/core/domain/model/kernel"
)

// Summary is the checkout-level feasibility report over every seller group.
type Summary struct {
	Location                   kernel.Location
	Options                    []DeliveryOption
	Subtotal                   kernel.Money
	CanProceedWithOrder        bool
	TotalDeliveryFee           kernel.Money
	UndeliverableItems         []DeliveryOption
	HasPayAfterDeliveryOptions bool
	Message                    string
}

// WithFreeShipping returns a copy whose delivery fees are all zero. It is
// applied when a FREE_SHIPPING voucher is accepted.
func (s Summary) WithFreeShipping() Summary {
	out := s
	out.Options = make([]DeliveryOption, len(s.Options))
	for i, o := range s.Options {
		o.DeliveryFee = kernel.Money{}
		out.Options[i] = o
	}
	out.TotalDeliveryFee = kernel.Money{}
	return out
}

// PaymentTypeAllowed reports whether every seller group accepts paymentType.
// Platform-delivered groups accept BEFORE_DELIVERY only.
func (s Summary) PaymentTypeAllowed(paymentType kernel.PaymentType) bool {
	for _, o := range s.Options {
		if !o.Offers(paymentType) {
			return false
		}
	}
	return len(s.Options) > 0
}
