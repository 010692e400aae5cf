package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"

	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, paymentType kernel.PaymentType, sellerID kernel.UUID) *order.Order {
	t.Helper()
	loc, err := kernel.ResolveLocation("Nairobi")
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), sellerID, "Kiondo basket", 2, kernel.Shillings(750))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{line}, loc,
		kernel.Shillings(200), kernel.Money{}, "", paymentType, time.Now())
	require.NoError(t, err)
	return o
}

// approvedOrder is a BEFORE_DELIVERY order whose payment was submitted and approved.
func approvedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t, kernel.PayBeforeDelivery, kernel.NewUUID())
	require.NoError(t, o.SubmitPayment("QK71ABC123", time.Now()))
	require.NoError(t, o.ApprovePayment(time.Now()))
	return o
}

func newDelivery(t *testing.T, orderID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(orderID, kernel.Shillings(200), time.Now())
	require.NoError(t, err)
	return d
}

func newTip(t *testing.T, createdAt time.Time) *payment.Tip {
	t.Helper()
	tip, err := payment.NewTip("ws_CO_"+kernel.NewUUID().String()[:8], "street-food-guide", "254712345678",
		kernel.Shillings(50), createdAt)
	require.NoError(t, err)
	return tip
}

// begunUoW expects Begin and allows the deferred Rollback.
func begunUoW(ctx context.Context) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()
	return uow
}
