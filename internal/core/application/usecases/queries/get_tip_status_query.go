package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetTipStatusQueryIsNotConstructed = errors.New(
	"GetTipStatusQuery must be created via NewGetTipStatusQuery constructor",
)

// GetTipStatusQuery is what the payment dialog polls while a tip is pending.
type GetTipStatusQuery struct {
	tipID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTipStatusQuery(tipID kernel.UUID) (GetTipStatusQuery, error) {
	if err := requireUUID("tipId", tipID); err != nil {
		return GetTipStatusQuery{}, err
	}
	return GetTipStatusQuery{
		tipID: tipID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetTipStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetTipStatusQueryIsNotConstructed)
}

func (q GetTipStatusQuery) TipID() kernel.UUID { return q.tipID }
