// Package deliveryrepo persists deliveries.
package deliveryrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Status        string          `gorm:"type:varchar(32);not null"`
	Fee           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TrackingID    string          `gorm:"type:varchar(16);not null;uniqueIndex"`
	AgentID       *uuid.UUID      `gorm:"type:uuid;index"`
	PickedUpAt    *time.Time
	DispatchedAt  *time.Time
	DeliveredAt   *time.Time
	FailureReason string    `gorm:"type:text"`
	Version       int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var agentID *uuid.UUID
	if id := d.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return DeliveryDTO{
		ID:            d.ID().Bytes(),
		OrderID:       d.OrderID().Bytes(),
		Status:        d.Status().String(),
		Fee:           d.Fee().Decimal(),
		TrackingID:    d.TrackingID(),
		AgentID:       agentID,
		PickedUpAt:    d.PickedUpAt(),
		DispatchedAt:  d.DispatchedAt(),
		DeliveredAt:   d.DeliveredAt(),
		FailureReason: d.FailureReason(),
		Version:       d.Version(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	fee, feeErr := kernel.NewMoney(dto.Fee)
	status, statusErr := delivery.ParseStatus(dto.Status)
	if err := errors.Join(idErr, orderErr, feeErr, statusErr); err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, err := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if err != nil {
			return nil, err
		}
		agentID = &aID
	}

	return delivery.RestoreDelivery(delivery.RestoreParams{
		ID:            id,
		OrderID:       orderID,
		Status:        status,
		Fee:           fee,
		TrackingID:    dto.TrackingID,
		AgentID:       agentID,
		PickedUpAt:    dto.PickedUpAt,
		DispatchedAt:  dto.DispatchedAt,
		DeliveredAt:   dto.DeliveredAt,
		FailureReason: dto.FailureReason,
		Version:       dto.Version,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}
