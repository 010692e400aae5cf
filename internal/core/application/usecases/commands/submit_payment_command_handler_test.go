package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, kernel.PayBeforeDelivery, kernel.NewUUID())
	cmd, err := commands.NewSubmitPaymentCommand(o.ID(), o.BuyerID(), " QK71ABC123 ")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := begunUoW(ctx)
	mock.InOrder(
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitPaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.PaymentSubmitted, o.PaymentStatus())
	assert.Equal(t, "QK71ABC123", o.PaymentReference())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitPaymentCommandHandler_Handle_OtherBuyer(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, kernel.PayBeforeDelivery, kernel.NewUUID())
	cmd, err := commands.NewSubmitPaymentCommand(o.ID(), kernel.NewUUID(), "QK71ABC123")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := begunUoW(ctx)
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubmitPaymentCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, kernel.PayBeforeDelivery, kernel.NewUUID())
	cmd, err := commands.NewSubmitPaymentCommand(o.ID(), o.BuyerID(), "QK71ABC123")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := begunUoW(ctx)
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	repo.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order")).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitPaymentCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitPaymentCommand(kernel.NewUUID(), kernel.NewUUID(), "QK71ABC123")
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitPaymentCommandHandler(factory)
	require.EqualError(t, h.Handle(ctx, cmd), "begin error")
}
