package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var ErrApplyPaymentResultCommandIsNotConstructed = errors.New(
	"ApplyPaymentResultCommand must be created via NewApplyPaymentResultCommand constructor",
)

// ApplyPaymentResultCommand is the gateway callback for one STK push.
type ApplyPaymentResultCommand struct { //nolint:recvcheck //using for validation
	checkoutRequestID string
	resultCode        int
	resultDesc        string

	guard guard.ConstructorGuard
}

func NewApplyPaymentResultCommand(checkoutRequestID string, resultCode int, resultDesc string) (ApplyPaymentResultCommand, error) {
	checkoutRequestID = strings.TrimSpace(checkoutRequestID)
	if err := required("checkoutRequestId", checkoutRequestID); err != nil {
		return ApplyPaymentResultCommand{}, err
	}

	return ApplyPaymentResultCommand{
		checkoutRequestID: checkoutRequestID,
		resultCode:        resultCode,
		resultDesc:        strings.TrimSpace(resultDesc),
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyPaymentResultCommand) Validate() error {
	return c.guard.Validate(ErrApplyPaymentResultCommandIsNotConstructed)
}

func (c ApplyPaymentResultCommand) CheckoutRequestID() string { return c.checkoutRequestID }
func (c ApplyPaymentResultCommand) ResultCode() int           { return c.resultCode }
func (c ApplyPaymentResultCommand) ResultDesc() string        { return c.resultDesc }
