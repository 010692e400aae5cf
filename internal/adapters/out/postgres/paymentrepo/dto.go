// Package paymentrepo persists payment approvals and gateway tip payments.
package paymentrepo

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApprovalDTO is one row of the append-only payment review audit.
type ApprovalDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null"`
	Decision  string    `gorm:"type:varchar(16);not null"`
	Reason    string    `gorm:"type:text"`
	DecidedAt time.Time `gorm:"not null"`
}

func (ApprovalDTO) TableName() string {
	return "payment_approvals"
}

// TipDTO is a gateway tip transaction.
type TipDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CheckoutRequestID string          `gorm:"type:varchar(128);not null;uniqueIndex"`
	PostSlug          string          `gorm:"type:varchar(255);not null"`
	Phone             string          `gorm:"type:varchar(16);not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status            string          `gorm:"type:varchar(16);not null;index"`
	ResultCode        *int
	FailedReason      string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (TipDTO) TableName() string {
	return "tip_payments"
}

func approvalFromDomain(a payment.Approval) ApprovalDTO {
	return ApprovalDTO{
		ID:        a.ID().Bytes(),
		OrderID:   a.OrderID().Bytes(),
		AdminID:   a.AdminID().Bytes(),
		Decision:  string(a.Decision()),
		Reason:    a.Reason(),
		DecidedAt: a.DecidedAt(),
	}
}

func approvalToDomain(dto ApprovalDTO) (payment.Approval, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	adminID, adminErr := kernel.UUIDFromBytes(dto.AdminID[:])
	decision := payment.Decision(dto.Decision)
	if err := errors.Join(idErr, orderErr, adminErr, decision.Validate()); err != nil {
		return payment.Approval{}, err
	}
	return payment.RestoreApproval(id, orderID, adminID, decision, dto.Reason, dto.DecidedAt), nil
}

func tipFromDomain(t *payment.Tip) TipDTO {
	return TipDTO{
		ID:                t.ID().Bytes(),
		CheckoutRequestID: t.CheckoutRequestID(),
		PostSlug:          t.PostSlug(),
		Phone:             t.Phone(),
		Amount:            t.Amount().Decimal(),
		Status:            t.Status().String(),
		ResultCode:        t.ResultCode(),
		FailedReason:      t.FailedReason(),
		CreatedAt:         t.CreatedAt(),
		UpdatedAt:         t.UpdatedAt(),
	}
}

func tipToDomain(dto TipDTO) (*payment.Tip, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	amount, amountErr := kernel.NewMoney(dto.Amount)
	status, statusErr := payment.ParseTipStatus(dto.Status)
	if err := errors.Join(idErr, amountErr, statusErr); err != nil {
		return nil, err
	}

	return payment.RestoreTip(payment.RestoreTipParams{
		ID:                id,
		CheckoutRequestID: dto.CheckoutRequestID,
		PostSlug:          dto.PostSlug,
		Phone:             dto.Phone,
		Amount:            amount,
		Status:            status,
		ResultCode:        dto.ResultCode,
		FailedReason:      dto.FailedReason,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	})
}
