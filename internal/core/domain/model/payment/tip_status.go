package payment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// TipStatus is the gateway-driven status of a tip payment.
// Every status except PENDING is terminal.
type TipStatus int

const (
	TipUnknown TipStatus = iota
	TipPending
	TipCompleted
	TipFailed
	TipCancelled
)

var tipStatusNames = map[TipStatus]string{
	TipPending:   "PENDING",
	TipCompleted: "COMPLETED",
	TipFailed:    "FAILED",
	TipCancelled: "CANCELLED",
}

func ParseTipStatus(s string) (TipStatus, error) {
	for st, name := range tipStatusNames {
		if name == s {
			return st, nil
		}
	}
	return TipUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid tip status", s))
}

func (s TipStatus) Validate() error {
	if _, ok := tipStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid tip status", s))
	}
	return nil
}

func (s TipStatus) String() string {
	if name, ok := tipStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s TipStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s TipStatus) IsTerminal() bool {
	return s == TipCompleted || s == TipFailed || s == TipCancelled
}
