package pricing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/pricing"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogRepository struct {
	mock.Mock
}

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

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) PlatformDeliveryFee(ctx context.Context) (kernel.Money, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockSettingsRepository) SetPlatformDeliveryFee(ctx context.Context, fee kernel.Money) error {
	return m.Called(ctx, fee).Error(0)
}

type fixture struct {
	catalog  *MockCatalogRepository
	settings *MockSettingsRepository
	products map[kernel.UUID]*product.Product
	sellers  map[kernel.UUID]*seller.Seller
}

func newFixture() *fixture {
	return &fixture{
		catalog:  &MockCatalogRepository{},
		settings: &MockSettingsRepository{},
		products: map[kernel.UUID]*product.Product{},
		sellers:  map[kernel.UUID]*seller.Seller{},
	}
}

func (f *fixture) seller(t *testing.T, name string, params seller.DeliverySettingsParams) *seller.Seller {
	t.Helper()
	settings, err := seller.NewDeliverySettings(params)
	require.NoError(t, err)
	s, err := seller.NewSeller(kernel.NewUUID(), name, settings)
	require.NoError(t, err)
	f.sellers[s.ID()] = s
	return s
}

func (f *fixture) product(t *testing.T, s *seller.Seller, price int64, productType string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), s.ID(), "item", kernel.Shillings(price), productType, true)
	require.NoError(t, err)
	f.products[p.ID()] = p
	return p
}

func (f *fixture) expectCatalog() {
	f.catalog.On("GetProducts", mock.Anything, mock.Anything).Return(f.products, nil).Once()
	f.catalog.On("GetSellers", mock.Anything, mock.Anything).Return(f.sellers, nil).Once()
}

func item(t *testing.T, p *product.Product, qty int) cart.Item {
	t.Helper()
	it, err := cart.NewItem(p.ID(), qty)
	require.NoError(t, err)
	return it
}

func TestQuoter_Quote(t *testing.T) {
	ctx := t.Context()
	quoter := pricing.NewDefaultQuoter()

	t.Run("platform delivery uses stored fee", func(t *testing.T) {
		f := newFixture()
		s := f.seller(t, "Seller A", seller.DeliverySettingsParams{})
		p := f.product(t, s, 500, "electronics")
		f.expectCatalog()
		f.settings.On("PlatformDeliveryFee", mock.Anything).Return(kernel.Shillings(250), nil).Once()

		q, err := quoter.Quote(ctx, f.catalog, f.settings, " nairobi ", []cart.Item{item(t, p, 2)})
		require.NoError(t, err)

		assert.Equal(t, "Nairobi", q.Location.County())
		require.Len(t, q.Summary.Options, 1)
		assert.True(t, q.Summary.Options[0].RequiresPlatformDelivery)
		assert.Equal(t, "Ksh 250", q.DeliveryFee().String())
		assert.Equal(t, "Ksh 1000", q.Subtotal().String())
		assert.Equal(t, "Ksh 1250", q.Total().String())
		assert.True(t, q.Summary.CanProceedWithOrder)
		f.catalog.AssertExpectations(t)
		f.settings.AssertExpectations(t)
	})

	t.Run("missing platform fee falls back to default", func(t *testing.T) {
		f := newFixture()
		s := f.seller(t, "Seller A", seller.DeliverySettingsParams{})
		p := f.product(t, s, 500, "electronics")
		f.expectCatalog()
		f.settings.On("PlatformDeliveryFee", mock.Anything).
			Return(kernel.Money{}, errs.NewObjectNotFoundError("setting", "platform_delivery_fee")).Once()

		q, err := quoter.Quote(ctx, f.catalog, f.settings, "Nairobi", []cart.Item{item(t, p, 1)})
		require.NoError(t, err)

		assert.Equal(t, "Ksh 200", q.DeliveryFee().String())
	})

	t.Run("undeliverable seller blocks the order", func(t *testing.T) {
		f := newFixture()
		s := f.seller(t, "Seller B", seller.DeliverySettingsParams{OffersDelivery: true, Counties: []string{"Kiambu"}})
		p := f.product(t, s, 500, "general")
		f.expectCatalog()
		f.settings.On("PlatformDeliveryFee", mock.Anything).Return(kernel.Shillings(200), nil).Once()

		q, err := quoter.Quote(ctx, f.catalog, f.settings, "Mombasa", []cart.Item{item(t, p, 1)})
		require.NoError(t, err)

		assert.False(t, q.Summary.CanProceedWithOrder)
		require.Len(t, q.Summary.UndeliverableItems, 1)
		assert.Equal(t, []kernel.UUID{p.ID()}, q.Summary.UndeliverableItems[0].ProductIDs)
	})

	t.Run("unknown county", func(t *testing.T) {
		f := newFixture()
		p := f.product(t, f.seller(t, "Seller A", seller.DeliverySettingsParams{}), 10, "general")

		_, err := quoter.Quote(ctx, f.catalog, f.settings, "Atlantis", []cart.Item{item(t, p, 1)})

		require.ErrorIs(t, err, errs.ErrInvalidLocation)
		f.catalog.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything)
	})

	t.Run("missing county and items", func(t *testing.T) {
		f := newFixture()

		_, err := quoter.Quote(ctx, f.catalog, f.settings, "  ", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = quoter.Quote(ctx, f.catalog, f.settings, "Nairobi", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unavailable product", func(t *testing.T) {
		f := newFixture()
		s := f.seller(t, "Seller A", seller.DeliverySettingsParams{})
		ghost, err := product.NewProduct(kernel.NewUUID(), s.ID(), "ghost", kernel.Shillings(10), "general", true)
		require.NoError(t, err)
		f.expectCatalog()

		_, err = quoter.Quote(ctx, f.catalog, f.settings, "Nairobi", []cart.Item{item(t, ghost, 1)})

		require.ErrorIs(t, err, errs.ErrProductUnavailable)
		f.settings.AssertNotCalled(t, "PlatformDeliveryFee", mock.Anything)
	})

	t.Run("catalog failure is returned", func(t *testing.T) {
		f := newFixture()
		s := f.seller(t, "Seller A", seller.DeliverySettingsParams{})
		p := f.product(t, s, 10, "general")
		boom := errors.New("db down")
		f.catalog.On("GetProducts", mock.Anything, mock.Anything).Return(nil, boom).Once()

		_, err := quoter.Quote(ctx, f.catalog, f.settings, "Nairobi", []cart.Item{item(t, p, 1)})

		require.ErrorIs(t, err, boom)
	})
}

func newVoucher(t *testing.T, discountType voucher.DiscountType, value int64, maxDiscount *kernel.Money) *voucher.Voucher {
	t.Helper()
	now := time.Now()
	v, err := voucher.NewVoucher(voucher.Params{
		ID:                kernel.NewUUID(),
		Code:              "save20",
		DiscountType:      discountType,
		Value:             decimal.NewFromInt(value),
		MaxDiscountAmount: maxDiscount,
		ValidFrom:         now.Add(-time.Hour),
		ValidUntil:        now.Add(time.Hour),
		MaxUses:           10,
		Active:            true,
	})
	require.NoError(t, err)
	return v
}

func TestQuote_WithVoucher(t *testing.T) {
	ctx := t.Context()
	quoter := pricing.NewDefaultQuoter()
	flat := kernel.Shillings(150)

	quote := func(t *testing.T) pricing.Quote {
		t.Helper()
		f := newFixture()
		s := f.seller(t, "Seller C", seller.DeliverySettingsParams{
			OffersDelivery: true, Provinces: []string{"Nairobi"}, DeliveryFeePerKm: &flat,
		})
		p := f.product(t, s, 1500, "fashion")
		f.expectCatalog()
		f.settings.On("PlatformDeliveryFee", mock.Anything).Return(kernel.Shillings(200), nil).Once()

		q, err := quoter.Quote(ctx, f.catalog, f.settings, "Nairobi", []cart.Item{item(t, p, 2)})
		require.NoError(t, err)
		return q
	}

	t.Run("percentage capped by max discount", func(t *testing.T) {
		maxDiscount := kernel.Shillings(500)
		q, err := quote(t).WithVoucher(newVoucher(t, voucher.Percentage, 20, &maxDiscount), kernel.RoleBuyer, time.Now())
		require.NoError(t, err)

		assert.Equal(t, "Ksh 500", q.DiscountAmount().String())
		assert.Equal(t, "Ksh 2650", q.Total().String())
		assert.Equal(t, "SAVE20", q.Discount.Code)
	})

	t.Run("free shipping zeroes delivery", func(t *testing.T) {
		q, err := quote(t).WithVoucher(newVoucher(t, voucher.FreeShipping, 0, nil), kernel.RoleBuyer, time.Now())
		require.NoError(t, err)

		assert.True(t, q.DeliveryFee().IsZero())
		assert.True(t, q.Summary.Options[0].DeliveryFee.IsZero())
		assert.Equal(t, "Ksh 3000", q.Total().String())
	})

	t.Run("rejected voucher leaves quote untouched", func(t *testing.T) {
		base := quote(t)
		expired := newVoucher(t, voucher.FixedAmount, 100, nil)

		q, err := base.WithVoucher(expired, kernel.RoleBuyer, time.Now().Add(2*time.Hour))

		var target *errs.VoucherInvalidError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, errs.VoucherExpired, target.Reason)
		assert.Nil(t, q.Discount)
		assert.Equal(t, "Ksh 3150", q.Total().String())
	})
}

func TestVoucherOutcome(t *testing.T) {
	assert.Equal(t, "VOUCHER_EXPIRED", pricing.VoucherOutcome(errs.NewVoucherInvalidError("X", errs.VoucherExpired)))
	assert.Equal(t, pricing.VoucherOutcomeError, pricing.VoucherOutcome(errors.New("db down")))
}
