package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := kernel.ParseRole(" Delivery_Agent ")
	require.NoError(t, err)
	assert.Equal(t, kernel.RoleDeliveryAgent, r)

	_, err = kernel.ParseRole("guest")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParsePaymentType(t *testing.T) {
	pt, err := kernel.ParsePaymentType("AFTER_DELIVERY")
	require.NoError(t, err)
	assert.Equal(t, kernel.PayAfterDelivery, pt)
	assert.Equal(t, "AFTER_DELIVERY", pt.String())

	_, err = kernel.ParsePaymentType("ON_CREDIT")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.Error(t, kernel.PaymentTypeUnknown.Validate())
	assert.Equal(t, "UNKNOWN", kernel.PaymentTypeUnknown.String())
}
