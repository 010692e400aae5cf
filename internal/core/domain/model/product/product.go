// Package product models the catalog items a checkout can reference.
package product

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is read-only to the checkout core. Type is a free-form category such as
// "electronics" that vouchers may restrict on.
type Product struct {
	id          kernel.UUID
	sellerID    kernel.UUID
	name        string
	price       kernel.Money
	productType string
	active      bool
	guard       guard.ConstructorGuard
}

func NewProduct(
	id, sellerID kernel.UUID,
	name string,
	price kernel.Money,
	productType string,
	active bool,
) (*Product, error) {
	p := &Product{
		name:        strings.TrimSpace(name),
		price:       price,
		productType: strings.ToLower(strings.TrimSpace(productType)),
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSellerID(sellerID),
		p.validateType(),
	); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID       { return p.id }
func (p *Product) SellerID() kernel.UUID { return p.sellerID }
func (p *Product) Name() string          { return p.name }
func (p *Product) Price() kernel.Money   { return p.price }
func (p *Product) Type() string          { return p.productType }
func (p *Product) IsActive() bool        { return p.active }

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerID", err)
	}
	p.sellerID = id
	return nil
}

func (p *Product) validateType() error {
	if p.productType == "" {
		return errs.NewValueIsRequiredError("product type")
	}
	return nil
}
