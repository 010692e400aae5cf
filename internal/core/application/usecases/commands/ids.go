package commands

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

func requireID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
