package catalogrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlatformDeliveryFeeKey is the platform_settings key of the platform delivery fee.
const PlatformDeliveryFeeKey = "platform_delivery_fee"

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddSeller saves a new seller.
func (r *GormCatalogRepository) AddSeller(ctx context.Context, s *seller.Seller) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := sellerFromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddProduct saves a new product.
func (r *GormCatalogRepository) AddProduct(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetProducts loads the products with the given ids in one query.
func (r *GormCatalogRepository) GetProducts(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*product.Product, error) {
	products := make(map[kernel.UUID]*product.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", toRawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := productToDomain(dto)
		if err != nil {
			return nil, err
		}
		products[p.ID()] = p
	}
	return products, nil
}

// GetSellers loads the sellers with the given ids in one query.
func (r *GormCatalogRepository) GetSellers(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*seller.Seller, error) {
	sellers := make(map[kernel.UUID]*seller.Seller, len(ids))
	if len(ids) == 0 {
		return sellers, nil
	}

	var dtos []SellerDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", toRawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		s, err := sellerToDomain(dto)
		if err != nil {
			return nil, err
		}
		sellers[s.ID()] = s
	}
	return sellers, nil
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// PlatformDeliveryFee reads the stored platform delivery fee.
func (r *GormSettingsRepository) PlatformDeliveryFee(ctx context.Context) (kernel.Money, error) {
	var dto PlatformSettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", PlatformDeliveryFeeKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Money{}, errs.NewObjectNotFoundError("platformSetting", PlatformDeliveryFeeKey)
		}
		return kernel.Money{}, err
	}

	return kernel.NewMoney(dto.Value)
}

// SetPlatformDeliveryFee upserts the platform delivery fee.
func (r *GormSettingsRepository) SetPlatformDeliveryFee(ctx context.Context, fee kernel.Money) error {
	dto := PlatformSettingDTO{Key: PlatformDeliveryFeeKey, Value: fee.Decimal()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&dto).Error
}
