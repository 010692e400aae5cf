package voucherrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoucherRepository implements ports.VoucherRepository using GORM.
type GormVoucherRepository struct {
	db *gorm.DB
}

func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

func (r *GormVoucherRepository) Add(ctx context.Context, v *voucher.Voucher) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByCode matches the normalized code. A missing voucher is reported as
// VOUCHER_NOT_FOUND rather than a generic not found error.
func (r *GormVoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	normalized := voucher.NormalizeCode(code)
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("voucherCode")
	}

	var dto VoucherDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewVoucherInvalidError(normalized, errs.VoucherNotFound)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Redeem consumes one use. The predicate and the increment run as a single
// statement, so racing transactions serialize on the row lock and the losers
// see zero affected rows once max uses is reached.
func (r *GormVoucherRepository) Redeem(ctx context.Context, voucherID kernel.UUID) error {
	if err := voucherID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&VoucherDTO{}).
		Where("id = ? AND is_active AND used_count < max_uses", voucherID.Bytes()).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto VoucherDTO
		if err := r.db.WithContext(ctx).Select("code", "is_active").First(&dto, "id = ?", voucherID.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewVoucherInvalidError(voucherID.String(), errs.VoucherNotFound)
			}
			return err
		}
		if !dto.IsActive {
			return errs.NewVoucherInvalidError(dto.Code, errs.VoucherNotFound)
		}
		return errs.NewVoucherInvalidError(dto.Code, errs.VoucherExhausted)
	}

	return nil
}

func (r *GormVoucherRepository) AddRedemption(ctx context.Context, redemption voucher.Redemption) error {
	dto := redemptionFromDomain(redemption)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormVoucherRepository) ListRedemptions(ctx context.Context, voucherID kernel.UUID) ([]voucher.Redemption, error) {
	var dtos []RedemptionDTO
	if err := r.db.WithContext(ctx).
		Where("voucher_id = ?", voucherID.Bytes()).
		Order("redeemed_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	redemptions := make([]voucher.Redemption, 0, len(dtos))
	for _, dto := range dtos {
		r, err := redemptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		redemptions = append(redemptions, r)
	}
	return redemptions, nil
}
