package voucherrepo_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/voucherrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type VoucherRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *voucherrepo.GormVoucherRepository
}

func (suite *VoucherRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &voucherrepo.VoucherDTO{}, &voucherrepo.RedemptionDTO{})
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *VoucherRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("voucher_redemptions", "vouchers"))
	suite.repository = voucherrepo.NewGormVoucherRepository(suite.database.DB)
}

func (suite *VoucherRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *VoucherRepositoryIntegrationTestSuite) TestGetByCode_IsCaseInsensitive() {
	ctx := context.Background()
	stored := suite.addVoucher("SAVE20", 100, 0)

	got, err := suite.repository.GetByCode(ctx, "  save20 ")
	suite.Require().NoError(err)

	suite.True(got.ID().IsEqual(stored.ID()))
	suite.Equal(voucher.Percentage, got.DiscountType())
	suite.True(got.Value().Equal(decimal.NewFromInt(20)))
	suite.Require().NotNil(got.MaxDiscountAmount())
	suite.True(got.MaxDiscountAmount().Equal(kernel.Shillings(500)))
	suite.Equal([]kernel.Role{kernel.RoleBuyer}, got.ApplicableRoles())
	suite.Equal([]string{"grocery"}, got.ApplicableProductTypes())
}

func (suite *VoucherRepositoryIntegrationTestSuite) TestGetByCode_Unknown_ReturnsVoucherNotFound() {
	_, err := suite.repository.GetByCode(context.Background(), "NOPE")

	var invalid *errs.VoucherInvalidError
	suite.Require().ErrorAs(err, &invalid)
	suite.Equal(errs.VoucherNotFound, invalid.Reason)
}

func (suite *VoucherRepositoryIntegrationTestSuite) TestRedeem_IncrementsUntilExhausted() {
	ctx := context.Background()
	v := suite.addVoucher("TWICE", 2, 0)

	suite.Require().NoError(suite.repository.Redeem(ctx, v.ID()))
	suite.Require().NoError(suite.repository.Redeem(ctx, v.ID()))

	err := suite.repository.Redeem(ctx, v.ID())
	var invalid *errs.VoucherInvalidError
	suite.Require().ErrorAs(err, &invalid)
	suite.Equal(errs.VoucherExhausted, invalid.Reason)
	suite.Equal("TWICE", invalid.Code)

	suite.Equal(2, suite.usedCount(v.ID()))
}

func (suite *VoucherRepositoryIntegrationTestSuite) TestRedeem_ConcurrentLastUse_OnlyOneWins() {
	ctx := context.Background()
	v := suite.addVoucher("LASTONE", 5, 4)

	const racers = 20
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		exhausted atomic.Int32
	)
	start := make(chan struct{})
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := suite.repository.Redeem(ctx, v.ID())
			if err == nil {
				succeeded.Add(1)
				return
			}
			var invalid *errs.VoucherInvalidError
			if suite.ErrorAs(err, &invalid) && invalid.Reason == errs.VoucherExhausted {
				exhausted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	suite.Equal(int32(1), succeeded.Load())
	suite.Equal(int32(racers-1), exhausted.Load())
	suite.Equal(5, suite.usedCount(v.ID()))
}

func (suite *VoucherRepositoryIntegrationTestSuite) TestRedeem_ConcurrentTransactions_NeverOvershoot() {
	ctx := context.Background()
	v := suite.addVoucher("TEN", 10, 0)

	const racers = 25
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx := suite.database.DB.Begin()
			repo := voucherrepo.NewGormVoucherRepository(tx)
			if err := repo.Redeem(ctx, v.ID()); err != nil {
				tx.Rollback()
				return
			}
			if tx.Commit().Error == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	suite.Equal(int32(10), succeeded.Load())
	suite.Equal(10, suite.usedCount(v.ID()))
}

func (suite *VoucherRepositoryIntegrationTestSuite) TestRedeem_InactiveVoucher_ReturnsNotFound() {
	ctx := context.Background()
	v := suite.addVoucher("OFF", 5, 0)
	suite.Require().NoError(suite.database.DB.Model(&voucherrepo.VoucherDTO{}).
		Where("code = ?", "OFF").Update("is_active", false).Error)

	err := suite.repository.Redeem(ctx, v.ID())

	var invalid *errs.VoucherInvalidError
	suite.Require().ErrorAs(err, &invalid)
	suite.Equal(errs.VoucherNotFound, invalid.Reason)
	suite.Equal(0, suite.usedCount(v.ID()))
}

func (suite *VoucherRepositoryIntegrationTestSuite) TestRedemptions_AreListedOldestFirst() {
	ctx := context.Background()
	v := suite.addVoucher("AUDIT", 5, 0)
	now := time.Now()

	for i, amount := range []int64{100, 300} {
		discount := voucher.Discount{VoucherID: v.ID(), Code: v.Code(), Amount: kernel.Shillings(amount)}
		r := voucher.NewRedemption(discount, kernel.NewUUID(), now.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(suite.repository.AddRedemption(ctx, r))
	}

	got, err := suite.repository.ListRedemptions(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].Amount().Equal(kernel.Shillings(100)))
	suite.True(got[1].Amount().Equal(kernel.Shillings(300)))
}

func (suite *VoucherRepositoryIntegrationTestSuite) addVoucher(code string, maxUses, usedCount int) *voucher.Voucher {
	maxDiscount := kernel.Shillings(500)
	v, err := voucher.NewVoucher(voucher.Params{
		ID:                     kernel.NewUUID(),
		Code:                   code,
		DiscountType:           voucher.Percentage,
		Value:                  decimal.NewFromInt(20),
		MinOrderAmount:         kernel.Shillings(1000),
		MaxDiscountAmount:      &maxDiscount,
		ValidFrom:              time.Now().Add(-time.Hour),
		ValidUntil:             time.Now().Add(time.Hour),
		MaxUses:                maxUses,
		UsedCount:              usedCount,
		ApplicableRoles:        []kernel.Role{kernel.RoleBuyer},
		ApplicableProductTypes: []string{"grocery"},
		Active:                 true,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), v))
	return v
}

func (suite *VoucherRepositoryIntegrationTestSuite) usedCount(id kernel.UUID) int {
	var dto voucherrepo.VoucherDTO
	suite.Require().NoError(suite.database.DB.First(&dto, "id = ?", id.Bytes()).Error)
	return dto.UsedCount
}

func TestVoucherRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(VoucherRepositoryIntegrationTestSuite))
}
