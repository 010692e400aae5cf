package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a placed checkout. It owns two independent
// state variables, fulfillment Status and PaymentStatus, and the money totals
// fixed at placement.
//
// Order follows these invariants:
//   - total = subtotal - discount + deliveryFee
//   - discount never exceeds subtotal
//   - a BEFORE_DELIVERY order is confirmed only after its payment is APPROVED
//   - payment can not move once the order is CANCELLED or REJECTED
//
// version is the optimistic concurrency token; repositories compare it on
// every update and bump it on success.
type Order struct {
	id               kernel.UUID
	buyerID          kernel.UUID
	lines            []Line
	location         kernel.Location
	subtotal         kernel.Money
	discount         kernel.Money
	deliveryFee      kernel.Money
	voucherCode      string
	status           Status
	paymentStatus    PaymentStatus
	paymentType      kernel.PaymentType
	paymentReference string
	version          int64
	createdAt        time.Time
	updatedAt        time.Time
	guard            guard.ConstructorGuard
}

// NewOrder places an order in PENDING / UNPAID.
//
// Parameters:
//   - lines: priced product snapshots, at least one
//   - deliveryFee: checkout-wide fee after any FREE_SHIPPING override
//   - discount: voucher discount, zero without voucher
//   - voucherCode: empty without voucher
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, lines, location,
//	    kernel.Shillings(200), kernel.Money{}, "", kernel.PayBeforeDelivery, time.Now())
func NewOrder(
	id, buyerID kernel.UUID,
	lines []Line,
	location kernel.Location,
	deliveryFee, discount kernel.Money,
	voucherCode string,
	paymentType kernel.PaymentType,
	now time.Time,
) (*Order, error) {
	o := &Order{
		lines:         append([]Line(nil), lines...),
		deliveryFee:   deliveryFee,
		discount:      discount,
		voucherCode:   strings.ToUpper(strings.TrimSpace(voucherCode)),
		status:        Pending,
		paymentStatus: PaymentUnpaid,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setLocation(location),
		o.setPaymentType(paymentType),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}
	if o.discount.GreaterThan(o.subtotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%s exceeds subtotal %s", o.discount, o.subtotal))
	}

	return o, nil
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	ID               kernel.UUID
	BuyerID          kernel.UUID
	Lines            []Line
	Location         kernel.Location
	DeliveryFee      kernel.Money
	Discount         kernel.Money
	VoucherCode      string
	Status           Status
	PaymentStatus    PaymentStatus
	PaymentType      kernel.PaymentType
	PaymentReference string
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreOrder rebuilds an order loaded from storage. States are validated but
// no transition rules are applied.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o, err := NewOrder(p.ID, p.BuyerID, p.Lines, p.Location, p.DeliveryFee, p.Discount,
		p.VoucherCode, p.PaymentType, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(p.Status.Validate(), p.PaymentStatus.Validate()); err != nil {
		return nil, err
	}

	o.status = p.Status
	o.paymentStatus = p.PaymentStatus
	o.paymentReference = p.PaymentReference
	o.version = p.Version
	o.updatedAt = p.UpdatedAt.UTC()
	return o, nil
}

// Validate ensures the Order went through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) BuyerID() kernel.UUID            { return o.buyerID }
func (o *Order) Location() kernel.Location       { return o.location }
func (o *Order) Subtotal() kernel.Money          { return o.subtotal }
func (o *Order) Discount() kernel.Money          { return o.discount }
func (o *Order) DeliveryFee() kernel.Money       { return o.deliveryFee }
func (o *Order) VoucherCode() string             { return o.voucherCode }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) PaymentStatus() PaymentStatus    { return o.paymentStatus }
func (o *Order) PaymentType() kernel.PaymentType { return o.paymentType }
func (o *Order) PaymentReference() string        { return o.paymentReference }
func (o *Order) Version() int64                  { return o.version }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }

// SyncVersion records the version storage assigned on the last successful write.
func (o *Order) SyncVersion(version int64) {
	o.version = version
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Total is always derived: subtotal - discount + deliveryFee.
func (o *Order) Total() kernel.Money {
	return o.subtotal.Sub(o.discount).Add(o.deliveryFee)
}

// HasSeller reports whether any line belongs to sellerID.
func (o *Order) HasSeller(sellerID kernel.UUID) bool {
	for _, l := range o.lines {
		if l.sellerID.IsEqual(sellerID) {
			return true
		}
	}
	return false
}

// SubmitPayment records the buyer's payment reference (e.g. an M-Pesa receipt).
func (o *Order) SubmitPayment(reference string, now time.Time) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	if err := o.ensurePaymentOpen(PaymentSubmitted); err != nil {
		return err
	}

	next, err := o.paymentStatus.Submit()
	if err != nil {
		return err
	}
	o.paymentStatus = next
	o.paymentReference = reference
	o.touch(now)
	return nil
}

// ApprovePayment marks a submitted payment APPROVED.
func (o *Order) ApprovePayment(now time.Time) error {
	if err := o.ensurePaymentOpen(PaymentApproved); err != nil {
		return err
	}

	next, err := o.paymentStatus.Approve()
	if err != nil {
		return err
	}
	o.paymentStatus = next
	o.touch(now)
	return nil
}

// RejectPayment marks a submitted payment REJECTED.
func (o *Order) RejectPayment(now time.Time) error {
	if err := o.ensurePaymentOpen(PaymentRejected); err != nil {
		return err
	}

	next, err := o.paymentStatus.Reject()
	if err != nil {
		return err
	}
	o.paymentStatus = next
	o.touch(now)
	return nil
}

// Confirm moves PENDING to CONFIRMED. A BEFORE_DELIVERY order needs an approved
// payment first.
func (o *Order) Confirm(now time.Time) error {
	if o.paymentType == kernel.PayBeforeDelivery && o.paymentStatus != PaymentApproved {
		return errs.NewInvalidTransitionError("order awaiting payment approval", o.status, Confirmed)
	}
	return o.apply(Status.Confirm, now)
}

func (o *Order) Pack(now time.Time) error {
	return o.apply(Status.Pack, now)
}

func (o *Order) Dispatch(now time.Time) error {
	return o.apply(Status.Dispatch, now)
}

func (o *Order) MarkOutForDelivery(now time.Time) error {
	return o.apply(Status.OutForDelivery, now)
}

func (o *Order) MarkDelivered(now time.Time) error {
	return o.apply(Status.Deliver, now)
}

func (o *Order) Cancel(now time.Time) error {
	return o.apply(Status.Cancel, now)
}

func (o *Order) Reject(now time.Time) error {
	return o.apply(Status.Reject, now)
}

func (o *Order) apply(transition func(Status) (Status, error), now time.Time) error {
	next, err := transition(o.status)
	if err != nil {
		return err
	}
	o.status = next
	o.touch(now)
	return nil
}

func (o *Order) ensurePaymentOpen(target PaymentStatus) error {
	if o.status == Cancelled || o.status == Rejected {
		return errs.NewInvalidTransitionError("payment of "+o.status.String()+" order", o.paymentStatus, target)
	}
	return nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now.UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}
	o.buyerID = id
	return nil
}

func (o *Order) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setPaymentType(paymentType kernel.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	o.paymentType = paymentType
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	var subtotal kernel.Money
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}
	o.subtotal = subtotal
	return nil
}
