// Package catalogrepo persists sellers, their delivery settings, products and
// platform settings.
package catalogrepo

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/seller"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SellerDTO stores a seller with its delivery coverage flattened into columns.
// Provinces and counties are postgres text[] columns.
type SellerDTO struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                    string           `gorm:"type:varchar(255);not null"`
	OffersDelivery          bool             `gorm:"not null;default:false"`
	OffersPayAfterDelivery  bool             `gorm:"not null;default:false"`
	OffersFreeDelivery      bool             `gorm:"not null;default:false"`
	Provinces               pq.StringArray   `gorm:"type:text[]"`
	Counties                pq.StringArray   `gorm:"type:text[]"`
	MinOrderForFreeDelivery decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryFeePerKm        *decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (SellerDTO) TableName() string {
	return "sellers"
}

// ProductDTO stores a sellable product.
type ProductDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type     string          `gorm:"type:varchar(64);not null"`
	Active   bool            `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// PlatformSettingDTO is a key/value row of platform configuration.
type PlatformSettingDTO struct {
	Key   string          `gorm:"type:varchar(64);primaryKey"`
	Value decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (PlatformSettingDTO) TableName() string {
	return "platform_settings"
}

func sellerFromDomain(s *seller.Seller) SellerDTO {
	settings := s.Delivery()

	provinces := make(pq.StringArray, 0, len(settings.Provinces()))
	for _, p := range settings.Provinces() {
		provinces = append(provinces, p.String())
	}

	var perKm *decimal.Decimal
	if fee, ok := settings.DeliveryFee(); ok {
		d := fee.Decimal()
		perKm = &d
	}

	return SellerDTO{
		ID:                      s.ID().Bytes(),
		Name:                    s.Name(),
		OffersDelivery:          settings.OffersDelivery(),
		OffersPayAfterDelivery:  settings.OffersPayAfterDelivery(),
		OffersFreeDelivery:      settings.OffersFreeDelivery(),
		Provinces:               provinces,
		Counties:                pq.StringArray(settings.Counties()),
		MinOrderForFreeDelivery: settings.MinOrderForFreeDelivery().Decimal(),
		DeliveryFeePerKm:        perKm,
	}
}

func sellerToDomain(dto SellerDTO) (*seller.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	minOrder, err := kernel.NewMoney(dto.MinOrderForFreeDelivery)
	if err != nil {
		return nil, err
	}

	var perKm *kernel.Money
	if dto.DeliveryFeePerKm != nil {
		fee, feeErr := kernel.NewMoney(*dto.DeliveryFeePerKm)
		if feeErr != nil {
			return nil, feeErr
		}
		perKm = &fee
	}

	settings, err := seller.NewDeliverySettings(seller.DeliverySettingsParams{
		OffersDelivery:          dto.OffersDelivery,
		OffersPayAfterDelivery:  dto.OffersPayAfterDelivery,
		OffersFreeDelivery:      dto.OffersFreeDelivery,
		Provinces:               dto.Provinces,
		Counties:                dto.Counties,
		MinOrderForFreeDelivery: minOrder,
		DeliveryFeePerKm:        perKm,
	})
	if err != nil {
		return nil, err
	}

	return seller.NewSeller(id, dto.Name, settings)
}

func productFromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID().Bytes(),
		SellerID: p.SellerID().Bytes(),
		Name:     p.Name(),
		Price:    p.Price().Decimal(),
		Type:     p.Type(),
		Active:   p.IsActive(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	sellerID, sellerErr := kernel.UUIDFromBytes(dto.SellerID[:])
	price, priceErr := kernel.NewMoney(dto.Price)
	if err := errors.Join(idErr, sellerErr, priceErr); err != nil {
		return nil, err
	}

	return product.NewProduct(id, sellerID, dto.Name, price, dto.Type, dto.Active)
}

func toRawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
