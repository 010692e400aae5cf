package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the fulfillment state of an order.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PACKED ──> DISPATCHED ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │
//	   ├────────────┴──> CANCELLED
//	   └────────────┴──> REJECTED
//
// Transitions only move forward one step along the happy path. DELIVERED,
// CANCELLED and REJECTED are terminal.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Confirmed
	Packed
	Dispatched
	OutForDelivery
	Delivered
	Cancelled
	Rejected
)

var statusNames = map[Status]string{
	Pending:        "PENDING",
	Confirmed:      "CONFIRMED",
	Packed:         "PACKED",
	Dispatched:     "DISPATCHED",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
	Rejected:       "REJECTED",
}

// allowedTransitions lists, per status, the statuses it may move to.
var allowedTransitions = map[Status][]Status{
	Pending:        {Confirmed, Cancelled, Rejected},
	Confirmed:      {Packed, Cancelled, Rejected},
	Packed:         {Dispatched},
	Dispatched:     {OutForDelivery},
	OutForDelivery: {Delivered},
}

// ParseStatus maps a persisted or wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. from a corrupted row.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) Confirm() (Status, error)        { return s.transition(Confirmed) }
func (s Status) Pack() (Status, error)           { return s.transition(Packed) }
func (s Status) Dispatch() (Status, error)       { return s.transition(Dispatched) }
func (s Status) OutForDelivery() (Status, error) { return s.transition(OutForDelivery) }
func (s Status) Deliver() (Status, error)        { return s.transition(Delivered) }
func (s Status) Cancel() (Status, error)         { return s.transition(Cancelled) }
func (s Status) Reject() (Status, error)         { return s.transition(Rejected) }

func (s Status) transition(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s, next)
	}
	return next, nil
}
