package services

import (
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
)

// Checkout runs the resolver over every group and aggregates the result.
type Checkout struct {
	resolver   DeliveryResolver
	aggregator CheckoutAggregator
}

func NewCheckout(resolver DeliveryResolver, aggregator CheckoutAggregator) Checkout {
	return Checkout{resolver: resolver, aggregator: aggregator}
}

func (c Checkout) Evaluate(location kernel.Location, groups []cart.SellerGroup, platformFee kernel.Money) checkout.Summary {
	options := make([]checkout.DeliveryOption, 0, len(groups))
	for _, g := range groups {
		options = append(options, c.resolver.Resolve(location, g, platformFee))
	}
	return c.aggregator.Aggregate(location, options)
}
