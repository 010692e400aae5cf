package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
)

// TipStatusView is the buyer-facing status of a tip payment.
type TipStatusView struct {
	TipID          string `json:"tipId"`
	Status         string `json:"status"`
	FailedReason   string `json:"failedReason,omitempty"`
	ActionRequired string `json:"actionRequired,omitempty"`
	CanRetry       bool   `json:"canRetry"`
}

// TipStatusCache keeps terminal tip statuses close to the polling clients.
// Only terminal statuses are cached because they never change again.
type TipStatusCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, tipID kernel.UUID) (view TipStatusView, ok bool, err error)
	Set(ctx context.Context, view TipStatusView) error
}

// NewTipStatusView renders t for polling clients.
func NewTipStatusView(t *payment.Tip) TipStatusView {
	view := TipStatusView{
		TipID:  t.ID().String(),
		Status: t.Status().String(),
	}
	if failure := t.Failure(); failure != nil {
		view.FailedReason = failure.Reason
		view.ActionRequired = failure.ActionRequired
		view.CanRetry = failure.CanRetry
	}
	return view
}
