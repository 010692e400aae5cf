package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/pkg/guard"
)

var ErrGetDeliveryOptionsQueryIsNotConstructed = errors.New(
	"GetDeliveryOptionsQuery must be created via NewGetDeliveryOptionsQuery constructor",
)

// GetDeliveryOptionsQuery asks what delivering a cart to a county would look
// like: one option per seller, the total fee and whether the order can proceed.
//
// Example:
//
//	item, _ := cart.NewItem(productID, 2)
//	query, err := NewGetDeliveryOptionsQuery("Nairobi", []cart.Item{item})
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, query)
type GetDeliveryOptionsQuery struct {
	county string
	items  []cart.Item

	guard guard.ConstructorGuard
}

func NewGetDeliveryOptionsQuery(county string, items []cart.Item) (GetDeliveryOptionsQuery, error) {
	county, items, err := requireCart(county, items)
	if err != nil {
		return GetDeliveryOptionsQuery{}, err
	}
	return GetDeliveryOptionsQuery{
		county: county,
		items:  items,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOptionsQueryIsNotConstructed)
}

func (q GetDeliveryOptionsQuery) County() string     { return q.county }
func (q GetDeliveryOptionsQuery) Items() []cart.Item { return append([]cart.Item(nil), q.items...) }
