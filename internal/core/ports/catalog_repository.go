// Package ports defines the contracts between the checkout core and its
// infrastructure: repositories, the unit of work, event publishing, caching
// and metrics.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/seller"
)

// CatalogRepository gives read access to products and sellers. The checkout
// core never writes the catalog outside of seeding and tests.
type CatalogRepository interface {
	// AddSeller persists a seller with its delivery settings.
	AddSeller(ctx context.Context, s *seller.Seller) error

	// AddProduct persists a product. The seller must exist.
	AddProduct(ctx context.Context, p *product.Product) error

	// GetProducts returns the products found for ids keyed by id. Unknown ids
	// are simply absent from the map.
	GetProducts(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)

	// GetSellers returns the sellers found for ids keyed by id.
	GetSellers(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*seller.Seller, error)
}

// SettingsRepository reads platform-wide settings.
type SettingsRepository interface {
	// PlatformDeliveryFee returns the configured platform delivery fee or
	// errs.ObjectNotFoundError when no value is stored.
	PlatformDeliveryFee(ctx context.Context) (kernel.Money, error)

	// SetPlatformDeliveryFee stores the platform delivery fee.
	SetPlatformDeliveryFee(ctx context.Context, fee kernel.Money) error
}
