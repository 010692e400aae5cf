package queries_test

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
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
