package queries_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/model/voucher"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalog struct {
	repo     *MockCatalogRepository
	settings *MockSettingsRepository
	products map[kernel.UUID]*product.Product
	sellers  map[kernel.UUID]*seller.Seller
}

func newCatalog() *catalog {
	return &catalog{
		repo:     new(MockCatalogRepository),
		settings: new(MockSettingsRepository),
		products: map[kernel.UUID]*product.Product{},
		sellers:  map[kernel.UUID]*seller.Seller{},
	}
}

func (c *catalog) seller(t *testing.T, params seller.DeliverySettingsParams) *seller.Seller {
	t.Helper()
	settings, err := seller.NewDeliverySettings(params)
	require.NoError(t, err)
	s, err := seller.NewSeller(kernel.NewUUID(), "Duka "+kernel.NewUUID().String()[:4], settings)
	require.NoError(t, err)
	c.sellers[s.ID()] = s
	return s
}

func (c *catalog) product(t *testing.T, s *seller.Seller, price int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), s.ID(), "Maasai shuka", kernel.Shillings(price), "fashion", true)
	require.NoError(t, err)
	c.products[p.ID()] = p
	return p
}

// expect wires the catalog reads and a stored platform fee of Ksh 200.
func (c *catalog) expect() {
	c.repo.On("GetProducts", mock.Anything, mock.Anything).Return(c.products, nil).Once()
	c.repo.On("GetSellers", mock.Anything, mock.Anything).Return(c.sellers, nil).Once()
	c.settings.On("PlatformDeliveryFee", mock.Anything).Return(kernel.Shillings(200), nil).Once()
}

func item(t *testing.T, p *product.Product, qty int) cart.Item {
	t.Helper()
	it, err := cart.NewItem(p.ID(), qty)
	require.NoError(t, err)
	return it
}

func newVoucher(t *testing.T, discountType voucher.DiscountType, value int64, roles ...kernel.Role) *voucher.Voucher {
	t.Helper()
	now := time.Now()
	maxDiscount := kernel.Shillings(500)
	v, err := voucher.NewVoucher(voucher.Params{
		ID:                kernel.NewUUID(),
		Code:              "SAVE20",
		DiscountType:      discountType,
		Value:             decimal.NewFromInt(value),
		MaxDiscountAmount: &maxDiscount,
		ValidFrom:         now.Add(-time.Hour),
		ValidUntil:        now.Add(time.Hour),
		MaxUses:           10,
		ApplicableRoles:   roles,
		Active:            true,
	})
	require.NoError(t, err)
	return v
}
