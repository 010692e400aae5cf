// Package voucherrepo persists vouchers and their redemptions. Usage counting
// is done in SQL so concurrent redemptions can not overshoot max uses.
package voucherrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/voucher"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type VoucherDTO struct {
	ID                     uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Code                   string           `gorm:"type:varchar(64);not null;uniqueIndex"`
	DiscountType           string           `gorm:"type:varchar(32);not null"`
	Value                  decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	MinOrderAmount         decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	MaxDiscountAmount      *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ValidFrom              time.Time        `gorm:"not null"`
	ValidUntil             time.Time        `gorm:"not null"`
	MaxUses                int              `gorm:"not null"`
	UsedCount              int              `gorm:"not null;default:0;check:used_count >= 0"`
	ApplicableRoles        pq.StringArray   `gorm:"type:text[]"`
	ApplicableProductTypes pq.StringArray   `gorm:"type:text[]"`
	IsActive               bool             `gorm:"not null;default:true"`
}

func (VoucherDTO) TableName() string {
	return "vouchers"
}

type RedemptionDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VoucherID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RedeemedAt time.Time       `gorm:"not null"`
}

func (RedemptionDTO) TableName() string {
	return "voucher_redemptions"
}

func fromDomain(v *voucher.Voucher) VoucherDTO {
	roles := make(pq.StringArray, 0, len(v.ApplicableRoles()))
	for _, r := range v.ApplicableRoles() {
		roles = append(roles, r.String())
	}

	var maxDiscount *decimal.Decimal
	if m := v.MaxDiscountAmount(); m != nil {
		d := m.Decimal()
		maxDiscount = &d
	}

	return VoucherDTO{
		ID:                     v.ID().Bytes(),
		Code:                   v.Code(),
		DiscountType:           v.DiscountType().String(),
		Value:                  v.Value(),
		MinOrderAmount:         v.MinOrderAmount().Decimal(),
		MaxDiscountAmount:      maxDiscount,
		ValidFrom:              v.ValidFrom(),
		ValidUntil:             v.ValidUntil(),
		MaxUses:                v.MaxUses(),
		UsedCount:              v.UsedCount(),
		ApplicableRoles:        roles,
		ApplicableProductTypes: pq.StringArray(v.ApplicableProductTypes()),
		IsActive:               v.IsActive(),
	}
}

func toDomain(dto VoucherDTO) (*voucher.Voucher, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	discountType, typeErr := voucher.ParseDiscountType(dto.DiscountType)
	minOrder, minErr := kernel.NewMoney(dto.MinOrderAmount)
	if err := errors.Join(idErr, typeErr, minErr); err != nil {
		return nil, err
	}

	var maxDiscount *kernel.Money
	if dto.MaxDiscountAmount != nil {
		m, err := kernel.NewMoney(*dto.MaxDiscountAmount)
		if err != nil {
			return nil, err
		}
		maxDiscount = &m
	}

	roles := make([]kernel.Role, 0, len(dto.ApplicableRoles))
	for _, raw := range dto.ApplicableRoles {
		role, err := kernel.ParseRole(raw)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return voucher.NewVoucher(voucher.Params{
		ID:                     id,
		Code:                   dto.Code,
		DiscountType:           discountType,
		Value:                  dto.Value,
		MinOrderAmount:         minOrder,
		MaxDiscountAmount:      maxDiscount,
		ValidFrom:              dto.ValidFrom,
		ValidUntil:             dto.ValidUntil,
		MaxUses:                dto.MaxUses,
		UsedCount:              dto.UsedCount,
		ApplicableRoles:        roles,
		ApplicableProductTypes: dto.ApplicableProductTypes,
		Active:                 dto.IsActive,
	})
}

func redemptionFromDomain(r voucher.Redemption) RedemptionDTO {
	return RedemptionDTO{
		ID:         r.ID().Bytes(),
		VoucherID:  r.VoucherID().Bytes(),
		OrderID:    r.OrderID().Bytes(),
		Amount:     r.Amount().Decimal(),
		RedeemedAt: r.RedeemedAt(),
	}
}

func redemptionToDomain(dto RedemptionDTO) (voucher.Redemption, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	voucherID, voucherErr := kernel.UUIDFromBytes(dto.VoucherID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	amount, amountErr := kernel.NewMoney(dto.Amount)
	if err := errors.Join(idErr, voucherErr, orderErr, amountErr); err != nil {
		return voucher.Redemption{}, err
	}
	return voucher.RestoreRedemption(id, voucherID, orderID, amount, dto.RedeemedAt), nil
}
