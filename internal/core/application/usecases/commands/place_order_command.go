package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand turns a buyer's cart into a PENDING order.
//
// Example:
//
//	item, _ := cart.NewItem(productID, 2)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), buyerID, "Nairobi",
//	    []cart.Item{item}, kernel.PayBeforeDelivery, "SAVE20")
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	buyerID     kernel.UUID
	county      string
	items       []cart.Item
	paymentType kernel.PaymentType
	voucherCode string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates identifiers, county, items and payment type.
// voucherCode may be empty.
func NewPlaceOrderCommand(
	orderID, buyerID kernel.UUID,
	county string,
	items []cart.Item,
	paymentType kernel.PaymentType,
	voucherCode string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		voucherCode: voucher.NormalizeCode(voucherCode),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setCounty(county),
		cmd.setItems(items),
		cmd.setPaymentType(paymentType),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID            { return c.orderID }
func (c PlaceOrderCommand) BuyerID() kernel.UUID            { return c.buyerID }
func (c PlaceOrderCommand) County() string                  { return c.county }
func (c PlaceOrderCommand) PaymentType() kernel.PaymentType { return c.paymentType }
func (c PlaceOrderCommand) VoucherCode() string             { return c.voucherCode }
func (c PlaceOrderCommand) HasVoucher() bool                { return c.voucherCode != "" }
func (c PlaceOrderCommand) Items() []cart.Item              { return append([]cart.Item(nil), c.items...) }

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := requireID("orderId", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := requireID("buyerId", id); err != nil {
		return err
	}
	c.buyerID = id
	return nil
}

func (c *PlaceOrderCommand) setCounty(county string) error {
	county = strings.TrimSpace(county)
	if county == "" {
		return errs.NewValueIsRequiredError("deliveryLocation.county")
	}
	c.county = county
	return nil
}

func (c *PlaceOrderCommand) setItems(items []cart.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]cart.Item(nil), items...)
	return nil
}

func (c *PlaceOrderCommand) setPaymentType(paymentType kernel.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	c.paymentType = paymentType
	return nil
}
