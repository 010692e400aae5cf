package paymentrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApprovalRepository implements ports.PaymentApprovalRepository.
type GormApprovalRepository struct {
	db *gorm.DB
}

func NewGormApprovalRepository(db *gorm.DB) *GormApprovalRepository {
	return &GormApprovalRepository{db: db}
}

func (r *GormApprovalRepository) Add(ctx context.Context, a payment.Approval) error {
	dto := approvalFromDomain(a)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrderID returns the reviews of an order, oldest first.
func (r *GormApprovalRepository) ListByOrderID(ctx context.Context, orderID kernel.UUID) ([]payment.Approval, error) {
	var dtos []ApprovalDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("decided_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	approvals := make([]payment.Approval, 0, len(dtos))
	for _, dto := range dtos {
		a, err := approvalToDomain(dto)
		if err != nil {
			return nil, err
		}
		approvals = append(approvals, a)
	}
	return approvals, nil
}

// GormTipRepository implements ports.TipRepository.
type GormTipRepository struct {
	db *gorm.DB
}

func NewGormTipRepository(db *gorm.DB) *GormTipRepository {
	return &GormTipRepository{db: db}
}

func (r *GormTipRepository) Add(ctx context.Context, t *payment.Tip) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := tipFromDomain(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTipRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Tip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "tip", id.String(), "id = ?", id.Bytes())
}

func (r *GormTipRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*payment.Tip, error) {
	if checkoutRequestID == "" {
		return nil, errs.NewValueIsRequiredError("checkoutRequestId")
	}
	return r.first(ctx, "tip", checkoutRequestID, "checkout_request_id = ?", checkoutRequestID)
}

// Update moves a PENDING row to the tip's new status. The status predicate
// makes gateway callback replays and the expiry job mutually exclusive.
func (r *GormTipRepository) Update(ctx context.Context, t *payment.Tip) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := tipFromDomain(t)
	result := r.db.WithContext(ctx).Model(&TipDTO{}).
		Where("id = ? AND status = ?", dto.ID, payment.TipPending.String()).
		Updates(map[string]any{
			"status":        dto.Status,
			"result_code":   dto.ResultCode,
			"failed_reason": dto.FailedReason,
			"updated_at":    dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		stored, err := r.Get(ctx, t.ID())
		if err != nil {
			return err
		}
		return errs.NewInvalidTransitionError("tip", stored.Status(), t.Status())
	}
	return nil
}

func (r *GormTipRepository) ListPendingCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*payment.Tip, error) {
	var dtos []TipDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", payment.TipPending.String(), cutoff).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	tips := make([]*payment.Tip, 0, len(dtos))
	for _, dto := range dtos {
		t, err := tipToDomain(dto)
		if err != nil {
			return nil, err
		}
		tips = append(tips, t)
	}
	return tips, nil
}

func (r *GormTipRepository) first(ctx context.Context, param, id string, query string, args ...any) (*payment.Tip, error) {
	var dto TipDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}
	return tipToDomain(dto)
}
