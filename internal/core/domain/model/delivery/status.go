package delivery

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the courier-side lifecycle of a delivery.
//
//	ASSIGNED ──> PICKED_UP ──> IN_TRANSIT ──> OUT_FOR_DELIVERY ──┬──> DELIVERED
//	                                                            └──> FAILED
type Status int

const (
	Unknown Status = iota
	Assigned
	PickedUp
	InTransit
	OutForDelivery
	Delivered
	Failed
)

var statusNames = map[Status]string{
	Assigned:       "ASSIGNED",
	PickedUp:       "PICKED_UP",
	InTransit:      "IN_TRANSIT",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Failed:         "FAILED",
}

var allowedTransitions = map[Status][]Status{
	Assigned:       {PickedUp},
	PickedUp:       {InTransit},
	InTransit:      {OutForDelivery},
	OutForDelivery: {Delivered, Failed},
}

func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
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

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

func (s Status) transition(next Status) (Status, error) {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError("delivery", s, next)
}
