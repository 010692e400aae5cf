package http_test

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type deliveryOptionsMock struct{ mock.Mock }

func (m *deliveryOptionsMock) Handle(ctx context.Context, q queries.GetDeliveryOptionsQuery) (checkout.Summary, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(checkout.Summary), args.Error(1)
}

type previewVoucherMock struct{ mock.Mock }

func (m *previewVoucherMock) Handle(ctx context.Context, q queries.PreviewVoucherQuery) (queries.PreviewVoucherResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.PreviewVoucherResponse), args.Error(1)
}

type getOrderMock struct{ mock.Mock }

func (m *getOrderMock) Handle(ctx context.Context, q queries.GetOrderQuery) (queries.GetOrderResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetOrderResponse), args.Error(1)
}

type tipStatusMock struct{ mock.Mock }

func (m *tipStatusMock) Handle(ctx context.Context, q queries.GetTipStatusQuery) (ports.TipStatusView, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(ports.TipStatusView), args.Error(1)
}

type placeOrderMock struct{ mock.Mock }

func (m *placeOrderMock) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type submitPaymentMock struct{ mock.Mock }

func (m *submitPaymentMock) Handle(ctx context.Context, cmd commands.SubmitPaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type reviewPaymentMock struct{ mock.Mock }

func (m *reviewPaymentMock) Handle(ctx context.Context, cmd commands.ReviewPaymentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type confirmOrderMock struct{ mock.Mock }

func (m *confirmOrderMock) Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type packOrderMock struct{ mock.Mock }

func (m *packOrderMock) Handle(ctx context.Context, cmd commands.PackOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type cancelOrderMock struct{ mock.Mock }

func (m *cancelOrderMock) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type assignAgentMock struct{ mock.Mock }

func (m *assignAgentMock) Handle(ctx context.Context, cmd commands.AssignDeliveryAgentCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type deliveryEventMock struct{ mock.Mock }

func (m *deliveryEventMock) Handle(ctx context.Context, cmd commands.RecordDeliveryEventCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type createTipMock struct{ mock.Mock }

func (m *createTipMock) Handle(ctx context.Context, cmd commands.CreateTipCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type paymentResultMock struct{ mock.Mock }

func (m *paymentResultMock) Handle(ctx context.Context, cmd commands.ApplyPaymentResultCommand) error {
	return m.Called(ctx, cmd).Error(0)
}
