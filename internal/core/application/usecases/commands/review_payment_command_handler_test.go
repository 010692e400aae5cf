package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	orders     *MockOrderRepository
	deliveries *MockDeliveryRepository
	approvals  *MockApprovalRepository
	uow        *MockUoW
	factory    *MockReviewUoWFactory
}

func newReviewMocks(t *testing.T) reviewMocks {
	t.Helper()
	m := reviewMocks{
		orders:     new(MockOrderRepository),
		deliveries: new(MockDeliveryRepository),
		approvals:  new(MockApprovalRepository),
		uow:        begunUoW(t.Context()),
		factory:    new(MockReviewUoWFactory),
	}
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	m.uow.On("DeliveryRepository").Return(m.deliveries).Maybe()
	m.uow.On("PaymentApprovalRepository").Return(m.approvals).Maybe()
	return m
}

func submittedOrder(t *testing.T, paymentType kernel.PaymentType) *order.Order {
	t.Helper()
	o := newOrder(t, paymentType, kernel.NewUUID())
	require.NoError(t, o.SubmitPayment("QK71ABC123", time.Now()))
	return o
}

func TestReviewPaymentCommandHandler_ApproveBeforeDelivery(t *testing.T) {
	ctx := t.Context()
	o := submittedOrder(t, kernel.PayBeforeDelivery)
	adminID := kernel.NewUUID()
	m := newReviewMocks(t)

	var opened *delivery.Delivery
	var audit payment.Approval
	mock.InOrder(
		m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.orders.On("Update", ctx, o).Return(nil).Once(),
		m.deliveries.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).
			Run(func(args mock.Arguments) { opened = args.Get(1).(*delivery.Delivery) }).
			Return(nil).Once(),
		m.approvals.On("Add", ctx, mock.AnythingOfType("payment.Approval")).
			Run(func(args mock.Arguments) { audit = args.Get(1).(payment.Approval) }).
			Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewReviewPaymentCommand(o.ID(), adminID, payment.Approve, "")
	require.NoError(t, err)
	h := commands.NewReviewPaymentCommandHandler(m.factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PaymentApproved, o.PaymentStatus())
	assert.Equal(t, order.Confirmed, o.Status())
	require.NotNil(t, opened)
	assert.Equal(t, o.ID(), opened.OrderID())
	assert.Equal(t, delivery.Assigned, opened.Status())
	assert.Equal(t, o.DeliveryFee(), opened.Fee())
	assert.Equal(t, payment.Approve, audit.Decision())
	assert.Equal(t, adminID, audit.AdminID())
	m.uow.AssertExpectations(t)
}

func TestReviewPaymentCommandHandler_ApproveAfterDeliveryKeepsStatus(t *testing.T) {
	ctx := t.Context()
	o := submittedOrder(t, kernel.PayAfterDelivery)
	m := newReviewMocks(t)
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.orders.On("Update", ctx, o).Return(nil).Once()
	m.approvals.On("Add", ctx, mock.Anything).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewReviewPaymentCommand(o.ID(), kernel.NewUUID(), payment.Approve, "")
	require.NoError(t, err)
	h := commands.NewReviewPaymentCommandHandler(m.factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PaymentApproved, o.PaymentStatus())
	assert.Equal(t, order.Pending, o.Status())
	m.deliveries.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestReviewPaymentCommandHandler_RejectBeforeDelivery(t *testing.T) {
	ctx := t.Context()
	o := submittedOrder(t, kernel.PayBeforeDelivery)
	m := newReviewMocks(t)
	var audit payment.Approval
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	m.orders.On("Update", ctx, o).Return(nil).Once()
	m.approvals.On("Add", ctx, mock.Anything).
		Run(func(args mock.Arguments) { audit = args.Get(1).(payment.Approval) }).
		Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewReviewPaymentCommand(o.ID(), kernel.NewUUID(), payment.Reject, "receipt not found")
	require.NoError(t, err)
	h := commands.NewReviewPaymentCommandHandler(m.factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PaymentRejected, o.PaymentStatus())
	assert.Equal(t, order.Rejected, o.Status())
	assert.Equal(t, "receipt not found", audit.Reason())
}

func TestReviewPaymentCommandHandler_UnsubmittedPayment(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, kernel.PayBeforeDelivery, kernel.NewUUID())
	m := newReviewMocks(t)
	m.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, err := commands.NewReviewPaymentCommand(o.ID(), kernel.NewUUID(), payment.Approve, "")
	require.NoError(t, err)
	h := commands.NewReviewPaymentCommandHandler(m.factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	m.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.approvals.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewReviewPaymentCommand(t *testing.T) {
	_, err := commands.NewReviewPaymentCommand(kernel.NewUUID(), kernel.NewUUID(), payment.Reject, "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewReviewPaymentCommand(kernel.NewUUID(), kernel.NewUUID(), payment.Decision("MAYBE"), "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.ReviewPaymentCommand{}.Validate(), commands.ErrReviewPaymentCommandIsNotConstructed)
}
