package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order state guarded by the version it was loaded with.
	// A concurrent change yields errs.VersionIsInvalidError; on success the
	// stored version is incremented.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// DeliveryRepository defines the persistence contract for deliveries. Each
// order has at most one delivery.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update has the same optimistic version semantics as OrderRepository.Update.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID returns errs.ObjectNotFoundError when the order has no
	// delivery yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
