package errs

import (
	"errors"
	"fmt"
)

var (
	ErrProductUnavailable = errors.New("product is unavailable")
	ErrInvalidLocation    = errors.New("location is invalid")
	ErrVoucherInvalid     = errors.New("voucher is invalid")
	ErrInvalidTransition  = errors.New("transition is invalid")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrCheckoutBlocked    = errors.New("checkout is blocked")
)

// ProductUnavailableError is returned when a cart references a product that does
// not exist or has been deactivated.
type ProductUnavailableError struct {
	ProductID string
	Cause     error
}

func NewProductUnavailableError(productID string) *ProductUnavailableError {
	return &ProductUnavailableError{ProductID: productID}
}

func NewProductUnavailableErrorWithCause(productID string, cause error) *ProductUnavailableError {
	return &ProductUnavailableError{
		ProductID: productID,
		Cause:     cause,
	}
}

func (e *ProductUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrProductUnavailable, e.ProductID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrProductUnavailable, e.ProductID)
}

func (e *ProductUnavailableError) Unwrap() error {
	return ErrProductUnavailable
}

// InvalidLocationError is returned when a county is not in the canonical table.
type InvalidLocationError struct {
	County string
}

func NewInvalidLocationError(county string) *InvalidLocationError {
	return &InvalidLocationError{County: county}
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("%s: %q is not a known county", ErrInvalidLocation, sanitize(e.County))
}

func (e *InvalidLocationError) Unwrap() error {
	return ErrInvalidLocation
}

// VoucherReason is the specific rule a voucher failed.
type VoucherReason string

const (
	VoucherNotFound                VoucherReason = "VOUCHER_NOT_FOUND"
	VoucherNotYetActive            VoucherReason = "VOUCHER_NOT_YET_ACTIVE"
	VoucherExpired                 VoucherReason = "VOUCHER_EXPIRED"
	VoucherExhausted               VoucherReason = "VOUCHER_EXHAUSTED"
	VoucherNotApplicableToRole     VoucherReason = "VOUCHER_NOT_APPLICABLE_TO_ROLE"
	VoucherNotApplicableToProducts VoucherReason = "VOUCHER_NOT_APPLICABLE_TO_PRODUCTS"
	VoucherMinimumNotMet           VoucherReason = "VOUCHER_MINIMUM_NOT_MET"
)

// VoucherInvalidError carries the failed rule so callers can tell the buyer what to fix.
type VoucherInvalidError struct {
	Code   string
	Reason VoucherReason
	Detail string
}

func NewVoucherInvalidError(code string, reason VoucherReason) *VoucherInvalidError {
	return &VoucherInvalidError{
		Code:   code,
		Reason: reason,
	}
}

func NewVoucherInvalidErrorWithDetail(code string, reason VoucherReason, detail string) *VoucherInvalidError {
	return &VoucherInvalidError{
		Code:   code,
		Reason: reason,
		Detail: detail,
	}
}

func (e *VoucherInvalidError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (reason: %s, %s)", ErrVoucherInvalid, sanitize(e.Code), e.Reason, e.Detail)
	}
	return fmt.Sprintf("%s: %s (reason: %s)", ErrVoucherInvalid, sanitize(e.Code), e.Reason)
}

func (e *VoucherInvalidError) Unwrap() error {
	return ErrVoucherInvalid
}

// InvalidTransitionError is returned by the order, payment and delivery state
// machines when a transition is not allowed from the current state.
type InvalidTransitionError struct {
	Subject string
	From    string
	To      string
}

func NewInvalidTransitionError(subject string, from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{
		Subject: subject,
		From:    from.String(),
		To:      to.String(),
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s from %s to %s", ErrInvalidTransition, e.Subject, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PaymentFailedError describes a failed gateway payment in buyer-facing terms.
type PaymentFailedError struct {
	Reason         string
	ActionRequired string
	CanRetry       bool
}

func NewPaymentFailedError(reason, actionRequired string, canRetry bool) *PaymentFailedError {
	return &PaymentFailedError{
		Reason:         reason,
		ActionRequired: actionRequired,
		CanRetry:       canRetry,
	}
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPaymentFailed, e.Reason)
}

func (e *PaymentFailedError) Unwrap() error {
	return ErrPaymentFailed
}

// CheckoutBlockedError is returned when an order is placed for a cart that
// cannot proceed, e.g. a seller group nobody can deliver.
type CheckoutBlockedError struct {
	Message   string
	SellerIDs []string
}

func NewCheckoutBlockedError(message string, sellerIDs ...string) *CheckoutBlockedError {
	return &CheckoutBlockedError{
		Message:   message,
		SellerIDs: sellerIDs,
	}
}

func (e *CheckoutBlockedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCheckoutBlocked, sanitize(e.Message))
}

func (e *CheckoutBlockedError) Unwrap() error {
	return ErrCheckoutBlocked
}
