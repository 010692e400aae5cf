package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_HappyPath(t *testing.T) {
	steps := []func(order.Status) (order.Status, error){
		order.Status.Confirm,
		order.Status.Pack,
		order.Status.Dispatch,
		order.Status.OutForDelivery,
		order.Status.Deliver,
	}
	want := []order.Status{order.Confirmed, order.Packed, order.Dispatched, order.OutForDelivery, order.Delivered}

	s := order.Pending
	for i, step := range steps {
		next, err := step(s)
		require.NoError(t, err)
		assert.Equal(t, want[i], next)
		s = next
	}
	assert.True(t, s.IsTerminal())
}

func TestStatus_RejectsSkipsAndReversals(t *testing.T) {
	all := []order.Status{
		order.Pending, order.Confirmed, order.Packed, order.Dispatched,
		order.OutForDelivery, order.Delivered, order.Cancelled, order.Rejected,
	}
	legal := map[order.Status][]order.Status{
		order.Pending:        {order.Confirmed, order.Cancelled, order.Rejected},
		order.Confirmed:      {order.Packed, order.Cancelled, order.Rejected},
		order.Packed:         {order.Dispatched},
		order.Dispatched:     {order.OutForDelivery},
		order.OutForDelivery: {order.Delivered},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false
			for _, l := range legal[from] {
				if l == to {
					expected = true
				}
			}
			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_InvalidTransitionError(t *testing.T) {
	_, err := order.Pending.Pack()

	var target *errs.InvalidTransitionError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "PENDING", target.From)
	assert.Equal(t, "PACKED", target.To)

	_, err = order.Packed.Cancel()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("OUT_FOR_DELIVERY")
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, s)

	_, err = order.ParseStatus("LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, order.Unknown.Validate())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestPaymentStatus(t *testing.T) {
	s, err := order.PaymentUnpaid.Submit()
	require.NoError(t, err)
	assert.Equal(t, order.PaymentSubmitted, s)

	approved, err := s.Approve()
	require.NoError(t, err)
	assert.Equal(t, order.PaymentApproved, approved)

	rejected, err := s.Reject()
	require.NoError(t, err)
	assert.Equal(t, order.PaymentRejected, rejected)

	_, err = order.PaymentUnpaid.Approve()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	_, err = order.PaymentApproved.Reject()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	_, err = order.PaymentSubmitted.Submit()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	parsed, err := order.ParsePaymentStatus("SUBMITTED")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentSubmitted, parsed)
}
