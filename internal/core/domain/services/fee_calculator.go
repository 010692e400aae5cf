package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
)

// DefaultSellerDeliveryFee applies when a delivering seller has no flat fee set.
var DefaultSellerDeliveryFee = kernel.Shillings(100)

const (
	msgFreeDelivery     = "Free delivery available"
	msgStandardDelivery = "Standard delivery fee applies"
)

// Fee is the delivery charge for one seller group.
type Fee struct {
	Amount               kernel.Money
	FreeDeliveryEligible bool
	Message              string
}

// FeeCalculator prices delivery for a seller group that the seller itself ships.
//
// Business rules:
//   - Free delivery offered and subtotal >= threshold: fee 0, eligible
//   - Free delivery offered but below threshold: flat fee, message names the shortfall
//   - Otherwise: flat fee
//
// The flat fee is the seller's deliveryFeePerKm taken once per order; distance
// never enters the calculation.
type FeeCalculator struct {
	defaultFee kernel.Money
}

func NewFeeCalculator(defaultFee kernel.Money) FeeCalculator {
	return FeeCalculator{defaultFee: defaultFee}
}

func (c FeeCalculator) Calculate(settings seller.DeliverySettings, subtotal kernel.Money) Fee {
	flat := c.flatFee(settings)

	if !settings.OffersFreeDelivery() {
		return Fee{Amount: flat, Message: msgStandardDelivery}
	}

	threshold := settings.MinOrderForFreeDelivery()
	if subtotal.GreaterThanOrEqual(threshold) {
		return Fee{FreeDeliveryEligible: true, Message: msgFreeDelivery}
	}

	return Fee{
		Amount:  flat,
		Message: fmt.Sprintf("Add %s more for free delivery", threshold.Sub(subtotal)),
	}
}

func (c FeeCalculator) flatFee(settings seller.DeliverySettings) kernel.Money {
	if fee, ok := settings.DeliveryFee(); ok {
		return fee
	}
	return c.defaultFee
}
