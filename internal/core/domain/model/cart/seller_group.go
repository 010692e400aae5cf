package cart

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"
)

// Line is a priced cart line.
type Line struct {
	product  *product.Product
	quantity int
	total    kernel.Money
}

func (l Line) Product() *product.Product { return l.product }
func (l Line) Quantity() int             { return l.quantity }
func (l Line) Total() kernel.Money       { return l.total }

// SellerGroup is the subset of a cart belonging to one seller. Groups are
// produced by GroupBySeller and never mutated afterwards.
type SellerGroup struct {
	seller   *seller.Seller
	lines    []Line
	subtotal kernel.Money
}

func (g SellerGroup) Seller() *seller.Seller {
	return g.seller
}

// Lines returns a copy of the group's lines in cart order.
func (g SellerGroup) Lines() []Line {
	return append([]Line(nil), g.lines...)
}

func (g SellerGroup) Subtotal() kernel.Money {
	return g.subtotal
}

// ProductIDs lists product ids in cart order, duplicates included.
func (g SellerGroup) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(g.lines))
	for _, l := range g.lines {
		ids = append(ids, l.product.ID())
	}
	return ids
}

// with returns a new group extended by line; the receiver is left untouched.
func (g SellerGroup) with(line Line) SellerGroup {
	lines := make([]Line, len(g.lines), len(g.lines)+1)
	copy(lines, g.lines)
	return SellerGroup{
		seller:   g.seller,
		lines:    append(lines, line),
		subtotal: g.subtotal.Add(line.total),
	}
}

// GroupBySeller folds cart items into per-seller groups ordered by the first
// appearance of each seller. Products and sellers are looked up in the given
// maps; a missing or inactive product, or one whose seller is unknown, yields
// errs.ProductUnavailableError.
func GroupBySeller(
	items []Item,
	products map[kernel.UUID]*product.Product,
	sellers map[kernel.UUID]*seller.Seller,
) ([]SellerGroup, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	groups := make([]SellerGroup, 0)
	index := make(map[kernel.UUID]int)

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}

		p, ok := products[item.ProductID()]
		if !ok || !p.IsActive() {
			return nil, errs.NewProductUnavailableError(item.ProductID().String())
		}
		s, ok := sellers[p.SellerID()]
		if !ok {
			return nil, errs.NewProductUnavailableErrorWithCause(
				item.ProductID().String(), errs.NewObjectNotFoundError("sellerId", p.SellerID()))
		}

		line := Line{
			product:  p,
			quantity: item.Quantity(),
			total:    p.Price().Times(item.Quantity()),
		}

		i, seen := index[s.ID()]
		if !seen {
			index[s.ID()] = len(groups)
			groups = append(groups, SellerGroup{seller: s}.with(line))
			continue
		}
		groups[i] = groups[i].with(line)
	}

	return groups, nil
}

// Subtotal sums group subtotals.
func Subtotal(groups []SellerGroup) kernel.Money {
	var total kernel.Money
	for _, g := range groups {
		total = total.Add(g.subtotal)
	}
	return total
}

// ProductTypes returns the distinct product types across groups in first-seen order.
func ProductTypes(groups []SellerGroup) []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, g := range groups {
		for _, l := range g.lines {
			t := l.product.Type()
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			types = append(types, t)
		}
	}
	return types
}
