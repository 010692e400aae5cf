package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus tracks the buyer's payment independently of fulfillment.
//
//	UNPAID ──> SUBMITTED ──┬──> APPROVED
//	                       └──> REJECTED
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentUnpaid
	PaymentSubmitted
	PaymentApproved
	PaymentRejected
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentUnpaid:    "UNPAID",
	PaymentSubmitted: "SUBMITTED",
	PaymentApproved:  "APPROVED",
	PaymentRejected:  "REJECTED",
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, name := range paymentStatusNames {
		if name == s {
			return st, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s PaymentStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Submit moves UNPAID to SUBMITTED.
func (s PaymentStatus) Submit() (PaymentStatus, error) {
	if s != PaymentUnpaid {
		return PaymentUnknown, errs.NewInvalidTransitionError("payment", s, PaymentSubmitted)
	}
	return PaymentSubmitted, nil
}

// Approve moves SUBMITTED to APPROVED.
func (s PaymentStatus) Approve() (PaymentStatus, error) {
	if s != PaymentSubmitted {
		return PaymentUnknown, errs.NewInvalidTransitionError("payment", s, PaymentApproved)
	}
	return PaymentApproved, nil
}

// Reject moves SUBMITTED to REJECTED.
func (s PaymentStatus) Reject() (PaymentStatus, error) {
	if s != PaymentSubmitted {
		return PaymentUnknown, errs.NewInvalidTransitionError("payment", s, PaymentRejected)
	}
	return PaymentRejected, nil
}
