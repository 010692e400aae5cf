package queries

import (
	"strings"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/pkg/errs"
)

func requireCart(county string, items []cart.Item) (string, []cart.Item, error) {
	county = strings.TrimSpace(county)
	if county == "" {
		return "", nil, errs.NewValueIsRequiredError("deliveryLocation.county")
	}
	if len(items) == 0 {
		return "", nil, errs.NewValueIsRequiredError("items")
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return "", nil, err
		}
	}
	return county, append([]cart.Item(nil), items...), nil
}
