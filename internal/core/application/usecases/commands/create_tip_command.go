package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateTipCommandIsNotConstructed = errors.New(
	"CreateTipCommand must be created via NewCreateTipCommand constructor",
)

// CreateTipCommand records a tip for which the gateway has just sent an STK
// push. checkoutRequestID is the gateway's id for that push and later keys
// the callback. Phone format and minimum amount are checked by payment.NewTip.
type CreateTipCommand struct { //nolint:recvcheck //using for validation
	checkoutRequestID string
	postSlug          string
	phone             string
	amount            kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateTipCommand(checkoutRequestID, postSlug, phone string, amount kernel.Money) (CreateTipCommand, error) {
	cmd := CreateTipCommand{
		checkoutRequestID: strings.TrimSpace(checkoutRequestID),
		postSlug:          strings.TrimSpace(postSlug),
		phone:             strings.TrimSpace(phone),
		amount:            amount,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("checkoutRequestId", cmd.checkoutRequestID),
		required("postSlug", cmd.postSlug),
		required("phone", cmd.phone),
	); err != nil {
		return CreateTipCommand{}, err
	}

	return cmd, nil
}

func (c CreateTipCommand) Validate() error {
	return c.guard.Validate(ErrCreateTipCommandIsNotConstructed)
}

func (c CreateTipCommand) CheckoutRequestID() string { return c.checkoutRequestID }
func (c CreateTipCommand) PostSlug() string          { return c.postSlug }
func (c CreateTipCommand) Phone() string             { return c.phone }
func (c CreateTipCommand) Amount() kernel.Money      { return c.amount }

func required(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
