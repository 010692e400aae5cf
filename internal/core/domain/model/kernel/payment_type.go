package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentType is the payment timing a buyer picks for an order: pay upfront or
// pay the seller on receipt.
type PaymentType int

const (
	PaymentTypeUnknown PaymentType = iota
	PayBeforeDelivery
	PayAfterDelivery
)

var paymentTypeNames = map[PaymentType]string{
	PayBeforeDelivery: "BEFORE_DELIVERY",
	PayAfterDelivery:  "AFTER_DELIVERY",
}

// ParsePaymentType maps "BEFORE_DELIVERY" / "AFTER_DELIVERY" to a PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	for t, name := range paymentTypeNames {
		if name == s {
			return t, nil
		}
	}
	return PaymentTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentType", fmt.Errorf("%q is not a valid payment type", s))
}

func (t PaymentType) Validate() error {
	if _, ok := paymentTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentType", fmt.Errorf("%d is not a valid payment type", t))
	}
	return nil
}

func (t PaymentType) String() string {
	if name, ok := paymentTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t PaymentType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
