// Package pricing prices a cart against the catalog: seller grouping, delivery
// options per seller, the checkout summary and an optional voucher discount.
package pricing

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// Quote is a priced cart. It is a value: WithVoucher returns a new Quote.
type Quote struct {
	Location kernel.Location
	Groups   []cart.SellerGroup
	Summary  checkout.Summary
	Discount *voucher.Discount
}

func (q Quote) Subtotal() kernel.Money {
	return cart.Subtotal(q.Groups)
}

func (q Quote) DeliveryFee() kernel.Money {
	return q.Summary.TotalDeliveryFee
}

func (q Quote) DiscountAmount() kernel.Money {
	if q.Discount == nil {
		return kernel.Money{}
	}
	return q.Discount.Amount
}

// Total is subtotal - discount + delivery fee.
func (q Quote) Total() kernel.Money {
	return q.Subtotal().Sub(q.DiscountAmount()).Add(q.DeliveryFee())
}

// WithVoucher evaluates v against the quote. A FREE_SHIPPING voucher zeroes
// every delivery fee in the summary.
func (q Quote) WithVoucher(v *voucher.Voucher, role kernel.Role, now time.Time) (Quote, error) {
	if v == nil {
		return q, errs.NewValueIsRequiredError("voucher")
	}

	discount, err := v.Evaluate(voucher.ApplicationContext{
		Role:         role,
		ProductTypes: cart.ProductTypes(q.Groups),
		Subtotal:     q.Subtotal(),
	}, now)
	if err != nil {
		return q, err
	}

	out := q
	out.Discount = &discount
	if discount.FreeShipping {
		out.Summary = q.Summary.WithFreeShipping()
	}
	return out, nil
}

// Quoter loads what a cart references and runs the checkout pipeline over it.
type Quoter struct {
	checkout    services.Checkout
	fallbackFee kernel.Money
}

func NewQuoter(checkout services.Checkout, fallbackPlatformFee kernel.Money) Quoter {
	return Quoter{
		checkout:    checkout,
		fallbackFee: fallbackPlatformFee,
	}
}

// NewDefaultQuoter wires the domain services with the stock fees.
func NewDefaultQuoter() Quoter {
	return NewQuoter(
		services.NewCheckout(
			services.NewDeliveryResolver(services.NewFeeCalculator(services.DefaultSellerDeliveryFee)),
			services.NewCheckoutAggregator(),
		),
		services.DefaultPlatformDeliveryFee,
	)
}

// Quote resolves county, groups items by seller and evaluates delivery for
// every group. Catalog reads happen through the given repositories so the
// caller decides whether they run inside a transaction.
func (q Quoter) Quote(
	ctx context.Context,
	catalog ports.CatalogRepository,
	settings ports.SettingsRepository,
	county string,
	items []cart.Item,
) (Quote, error) {
	if strings.TrimSpace(county) == "" {
		return Quote{}, errs.NewValueIsRequiredError("deliveryLocation.county")
	}
	if len(items) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	location, err := kernel.ResolveLocation(county)
	if err != nil {
		return Quote{}, err
	}

	products, err := catalog.GetProducts(ctx, productIDs(items))
	if err != nil {
		return Quote{}, err
	}

	sellerIDs := make([]kernel.UUID, 0, len(products))
	seen := make(map[kernel.UUID]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.SellerID()]; ok {
			continue
		}
		seen[p.SellerID()] = struct{}{}
		sellerIDs = append(sellerIDs, p.SellerID())
	}
	sellers, err := catalog.GetSellers(ctx, sellerIDs)
	if err != nil {
		return Quote{}, err
	}

	groups, err := cart.GroupBySeller(items, products, sellers)
	if err != nil {
		return Quote{}, err
	}

	platformFee, err := q.platformFee(ctx, settings)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		Location: location,
		Groups:   groups,
		Summary:  q.checkout.Evaluate(location, groups, platformFee),
	}, nil
}

func (q Quoter) platformFee(ctx context.Context, settings ports.SettingsRepository) (kernel.Money, error) {
	fee, err := settings.PlatformDeliveryFee(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return q.fallbackFee, nil
	}
	return fee, err
}

func productIDs(items []cart.Item) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(items))
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID()]; ok {
			continue
		}
		seen[it.ProductID()] = struct{}{}
		ids = append(ids, it.ProductID())
	}
	return ids
}
