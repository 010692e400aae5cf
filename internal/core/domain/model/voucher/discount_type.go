package voucher

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// DiscountType selects how a voucher value is priced.
type DiscountType int

const (
	DiscountTypeUnknown DiscountType = iota
	// Percentage takes value percent of the subtotal, capped by the max discount.
	Percentage
	// FixedAmount takes value shillings off, never more than the subtotal.
	FixedAmount
	// FreeShipping zeroes every delivery fee of the checkout.
	FreeShipping
)

var discountTypeNames = map[DiscountType]string{
	Percentage:   "PERCENTAGE",
	FixedAmount:  "FIXED_AMOUNT",
	FreeShipping: "FREE_SHIPPING",
}

func ParseDiscountType(s string) (DiscountType, error) {
	for t, name := range discountTypeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return DiscountTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"discountType", fmt.Errorf("%q is not a valid discount type", s))
}

func (t DiscountType) Validate() error {
	if _, ok := discountTypeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("discountType", fmt.Errorf("%d is not a valid discount type", t))
	}
	return nil
}

func (t DiscountType) String() string {
	if name, ok := discountTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

func (t DiscountType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
