package kernel

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Role is the marketplace role of the acting user.
type Role string

const (
	RoleBuyer         Role = "buyer"
	RoleSeller        Role = "seller"
	RoleAdmin         Role = "admin"
	RoleDeliveryAgent Role = "delivery_agent"
)

// ParseRole accepts any letter case, e.g. "BUYER" or "Delivery_Agent".
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin, RoleDeliveryAgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
