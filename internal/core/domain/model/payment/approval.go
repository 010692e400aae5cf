package payment

import (
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Decision is an admin's verdict on a submitted order payment.
type Decision string

const (
	Approve Decision = "APPROVE"
	Reject  Decision = "REJECT"
)

func (d Decision) Validate() error {
	if d != Approve && d != Reject {
		return errs.NewValueIsInvalidErrorWithCause("decision", fmt.Errorf("%q is not a valid decision", string(d)))
	}
	return nil
}

// Approval is the append-only audit entry of one approve/reject action.
type Approval struct {
	id        kernel.UUID
	orderID   kernel.UUID
	adminID   kernel.UUID
	decision  Decision
	reason    string
	decidedAt time.Time
}

func NewApproval(orderID, adminID kernel.UUID, decision Decision, reason string, now time.Time) (Approval, error) {
	if err := orderID.Validate(); err != nil {
		return Approval{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := adminID.Validate(); err != nil {
		return Approval{}, errs.NewValueIsRequiredErrorWithCause("adminId", err)
	}
	if err := decision.Validate(); err != nil {
		return Approval{}, err
	}
	reason = strings.TrimSpace(reason)
	if decision == Reject && reason == "" {
		return Approval{}, errs.NewValueIsRequiredError("rejection reason")
	}

	return Approval{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		adminID:   adminID,
		decision:  decision,
		reason:    reason,
		decidedAt: now.UTC(),
	}, nil
}

// RestoreApproval rebuilds a stored audit entry.
func RestoreApproval(id, orderID, adminID kernel.UUID, decision Decision, reason string, at time.Time) Approval {
	return Approval{id: id, orderID: orderID, adminID: adminID, decision: decision, reason: reason, decidedAt: at.UTC()}
}

func (a Approval) ID() kernel.UUID      { return a.id }
func (a Approval) OrderID() kernel.UUID { return a.orderID }
func (a Approval) AdminID() kernel.UUID { return a.adminID }
func (a Approval) Decision() Decision   { return a.decision }
func (a Approval) Reason() string       { return a.reason }
func (a Approval) DecidedAt() time.Time { return a.decidedAt }
