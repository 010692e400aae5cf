package delivery

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery follows one confirmed order from hand-over to the buyer's door.
// It is created exactly once, when the order becomes CONFIRMED.
type Delivery struct {
	id            kernel.UUID
	orderID       kernel.UUID
	status        Status
	fee           kernel.Money
	trackingID    string
	agentID       *kernel.UUID
	pickedUpAt    *time.Time
	dispatchedAt  *time.Time
	deliveredAt   *time.Time
	failureReason string
	version       int64
	createdAt     time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// NewDelivery creates an ASSIGNED delivery with a fresh tracking id.
func NewDelivery(orderID kernel.UUID, fee kernel.Money, now time.Time) (*Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	id := kernel.NewUUID()
	return &Delivery{
		id:         id,
		orderID:    orderID,
		status:     Assigned,
		fee:        fee,
		trackingID: NewTrackingID(id),
		createdAt:  now.UTC(),
		updatedAt:  now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewTrackingID derives "TRK-" plus the first eight hex digits of id, upper-cased.
func NewTrackingID(id kernel.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "TRK-" + strings.ToUpper(hex[:8])
}

// RestoreParams carries a persisted delivery back into the domain.
type RestoreParams struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Status        Status
	Fee           kernel.Money
	TrackingID    string
	AgentID       *kernel.UUID
	PickedUpAt    *time.Time
	DispatchedAt  *time.Time
	DeliveredAt   *time.Time
	FailureReason string
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func RestoreDelivery(p RestoreParams) (*Delivery, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.OrderID.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if p.TrackingID == "" {
		return nil, errs.NewValueIsRequiredError("trackingId")
	}

	return &Delivery{
		id:            p.ID,
		orderID:       p.OrderID,
		status:        p.Status,
		fee:           p.Fee,
		trackingID:    p.TrackingID,
		agentID:       p.AgentID,
		pickedUpAt:    p.PickedUpAt,
		dispatchedAt:  p.DispatchedAt,
		deliveredAt:   p.DeliveredAt,
		failureReason: p.FailureReason,
		version:       p.Version,
		createdAt:     p.CreatedAt.UTC(),
		updatedAt:     p.UpdatedAt.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID          { return d.id }
func (d *Delivery) OrderID() kernel.UUID     { return d.orderID }
func (d *Delivery) Status() Status           { return d.status }
func (d *Delivery) Fee() kernel.Money        { return d.fee }
func (d *Delivery) TrackingID() string       { return d.trackingID }
func (d *Delivery) AgentID() *kernel.UUID    { return d.agentID }
func (d *Delivery) PickedUpAt() *time.Time   { return d.pickedUpAt }
func (d *Delivery) DispatchedAt() *time.Time { return d.dispatchedAt }
func (d *Delivery) DeliveredAt() *time.Time  { return d.deliveredAt }
func (d *Delivery) FailureReason() string    { return d.failureReason }
func (d *Delivery) Version() int64           { return d.version }
func (d *Delivery) CreatedAt() time.Time     { return d.createdAt }
func (d *Delivery) UpdatedAt() time.Time     { return d.updatedAt }

// SyncVersion records the version storage assigned on the last successful write.
func (d *Delivery) SyncVersion(version int64) {
	d.version = version
}

// AssignAgent sets or replaces the agent before pickup.
func (d *Delivery) AssignAgent(agentID kernel.UUID, now time.Time) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	if d.status != Assigned {
		return errs.NewInvalidTransitionError("delivery agent assignment", d.status, Assigned)
	}
	d.agentID = &agentID
	d.touch(now)
	return nil
}

// PickUp records the hand-over from seller to agent. An unassigned delivery is
// claimed by agentID; an assigned one only accepts its own agent.
func (d *Delivery) PickUp(agentID kernel.UUID, now time.Time) error {
	if err := d.ensureAgent(agentID); err != nil {
		return err
	}
	if err := d.apply(PickedUp, now); err != nil {
		return err
	}
	d.agentID = &agentID
	at := now.UTC()
	d.pickedUpAt = &at
	return nil
}

func (d *Delivery) StartTransit(agentID kernel.UUID, now time.Time) error {
	if err := d.ensureAgent(agentID); err != nil {
		return err
	}
	if err := d.apply(InTransit, now); err != nil {
		return err
	}
	at := now.UTC()
	d.dispatchedAt = &at
	return nil
}

func (d *Delivery) MarkOutForDelivery(agentID kernel.UUID, now time.Time) error {
	if err := d.ensureAgent(agentID); err != nil {
		return err
	}
	return d.apply(OutForDelivery, now)
}

func (d *Delivery) MarkDelivered(agentID kernel.UUID, now time.Time) error {
	if err := d.ensureAgent(agentID); err != nil {
		return err
	}
	if err := d.apply(Delivered, now); err != nil {
		return err
	}
	at := now.UTC()
	d.deliveredAt = &at
	return nil
}

// Fail ends the delivery unsuccessfully; reason is shown to support staff.
func (d *Delivery) Fail(agentID kernel.UUID, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}
	if err := d.ensureAgent(agentID); err != nil {
		return err
	}
	if err := d.apply(Failed, now); err != nil {
		return err
	}
	d.failureReason = reason
	return nil
}

func (d *Delivery) apply(next Status, now time.Time) error {
	status, err := d.status.transition(next)
	if err != nil {
		return err
	}
	d.status = status
	d.touch(now)
	return nil
}

func (d *Delivery) ensureAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	if d.agentID != nil && !d.agentID.IsEqual(agentID) {
		return errs.NewValueIsInvalidErrorWithCause("agentId",
			errors.New("delivery is assigned to another agent"))
	}
	return nil
}

func (d *Delivery) touch(now time.Time) {
	d.updatedAt = now.UTC()
}
