package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) AddSeller(ctx context.Context, s *seller.Seller) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockCatalogRepository) AddProduct(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockCatalogRepository) GetProducts(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*product.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetSellers(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]*seller.Seller, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*seller.Seller), args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) PlatformDeliveryFee(ctx context.Context) (kernel.Money, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockSettingsRepository) SetPlatformDeliveryFee(ctx context.Context, fee kernel.Money) error {
	return m.Called(ctx, fee).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockVoucherRepository struct{ mock.Mock }

func (m *MockVoucherRepository) Add(ctx context.Context, v *voucher.Voucher) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVoucherRepository) GetByCode(ctx context.Context, code string) (*voucher.Voucher, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voucher.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) Redeem(ctx context.Context, voucherID kernel.UUID) error {
	return m.Called(ctx, voucherID).Error(0)
}

func (m *MockVoucherRepository) AddRedemption(ctx context.Context, r voucher.Redemption) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockVoucherRepository) ListRedemptions(ctx context.Context, voucherID kernel.UUID) ([]voucher.Redemption, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]voucher.Redemption), args.Error(1)
}

type MockApprovalRepository struct{ mock.Mock }

func (m *MockApprovalRepository) Add(ctx context.Context, a payment.Approval) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApprovalRepository) ListByOrderID(ctx context.Context, orderID kernel.UUID) ([]payment.Approval, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Approval), args.Error(1)
}

type MockTipRepository struct{ mock.Mock }

func (m *MockTipRepository) Add(ctx context.Context, t *payment.Tip) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTipRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Tip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Tip), args.Error(1)
}

func (m *MockTipRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*payment.Tip, error) {
	args := m.Called(ctx, checkoutRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Tip), args.Error(1)
}

func (m *MockTipRepository) Update(ctx context.Context, t *payment.Tip) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTipRepository) ListPendingCreatedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*payment.Tip, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Tip), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work; tests only set expectations
// for the repositories a handler is supposed to reach.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	return m.Called().Get(0).(ports.SettingsRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) VoucherRepository() ports.VoucherRepository {
	return m.Called().Get(0).(ports.VoucherRepository)
}

func (m *MockUoW) PaymentApprovalRepository() ports.PaymentApprovalRepository {
	return m.Called().Get(0).(ports.PaymentApprovalRepository)
}

func (m *MockUoW) TipRepository() ports.TipRepository {
	return m.Called().Get(0).(ports.TipRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return m.Called().Get(0).(commands.FulfillmentUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}

type MockTipUoWFactory struct{ mock.Mock }

func (m *MockTipUoWFactory) Create() commands.TipUoW {
	return m.Called().Get(0).(commands.TipUoW)
}

type MockCheckoutMetrics struct{ mock.Mock }

func (m *MockCheckoutMetrics) ObserveCheckout(canProceed bool) { m.Called(canProceed) }

func (m *MockCheckoutMetrics) ObserveVoucher(stage, outcome string) { m.Called(stage, outcome) }

func (m *MockCheckoutMetrics) ObserveTipResult(status string) { m.Called(status) }

type MockTipStatusCache struct{ mock.Mock }

func (m *MockTipStatusCache) Get(ctx context.Context, tipID kernel.UUID) (ports.TipStatusView, bool, error) {
	args := m.Called(ctx, tipID)
	return args.Get(0).(ports.TipStatusView), args.Bool(1), args.Error(2)
}

func (m *MockTipStatusCache) Set(ctx context.Context, view ports.TipStatusView) error {
	return m.Called(ctx, view).Error(0)
}
