package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Line is a product snapshot taken when the order is placed. Later catalog price
// changes do not affect it.
type Line struct {
	productID kernel.UUID
	sellerID  kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money
}

func NewLine(productID, sellerID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := sellerID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredErrorWithCause("sellerId", err)
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return Line{
		productID: productID,
		sellerID:  sellerID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (l Line) ProductID() kernel.UUID  { return l.productID }
func (l Line) SellerID() kernel.UUID   { return l.sellerID }
func (l Line) Name() string            { return l.name }
func (l Line) Quantity() int           { return l.quantity }
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l Line) Total() kernel.Money     { return l.unitPrice.Times(l.quantity) }
