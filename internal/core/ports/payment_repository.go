package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
)

// PaymentApprovalRepository is the append-only audit of admin payment reviews.
type PaymentApprovalRepository interface {
	Add(ctx context.Context, a payment.Approval) error
	ListByOrderID(ctx context.Context, orderID kernel.UUID) ([]payment.Approval, error)
}

// TipRepository persists gateway tip payments.
type TipRepository interface {
	Add(ctx context.Context, t *payment.Tip) error
	Get(ctx context.Context, id kernel.UUID) (*payment.Tip, error)
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*payment.Tip, error)

	// Update stores a terminal outcome only while the stored row is still
	// PENDING. When another writer got there first it returns
	// errs.InvalidTransitionError and nothing is written.
	Update(ctx context.Context, t *payment.Tip) error

	// ListPendingCreatedBefore returns up to limit PENDING tips created before
	// the cutoff, oldest first.
	ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*payment.Tip, error)
}
