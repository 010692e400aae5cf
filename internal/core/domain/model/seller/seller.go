package seller

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSellerIsNotConstructed = errors.New("Seller must be created via NewSeller constructor")

// Seller is a marketplace merchant together with its delivery settings.
// The checkout core only reads sellers.
type Seller struct {
	id       kernel.UUID
	name     string
	delivery DeliverySettings
	guard    guard.ConstructorGuard
}

func NewSeller(id kernel.UUID, name string, delivery DeliverySettings) (*Seller, error) {
	s := &Seller{
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
	); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Seller) Validate() error {
	if s == nil {
		return ErrSellerIsNotConstructed
	}
	return s.guard.Validate(ErrSellerIsNotConstructed)
}

func (s *Seller) ID() kernel.UUID {
	return s.id
}

func (s *Seller) Name() string {
	return s.name
}

// Role is always RoleSeller; it is exposed for symmetry with user records.
func (s *Seller) Role() kernel.Role {
	return kernel.RoleSeller
}

func (s *Seller) Delivery() DeliverySettings {
	return s.delivery
}

func (s *Seller) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Seller) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("seller name")
	}
	s.name = name
	return nil
}
