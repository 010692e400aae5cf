package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/application/pricing"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// PlaceOrderCommandHandler prices the cart, applies and redeems the voucher
// and stores the order, all inside one transaction. The voucher use is taken
// by a conditional increment, so when two buyers race for the last use one of
// them gets VOUCHER_EXHAUSTED and its order is rolled back.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	quoter     pricing.Quoter
	metrics    ports.CheckoutMetrics
}

func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	quoter pricing.Quoter,
	metrics ports.CheckoutMetrics,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		quoter:     quoter,
		metrics:    metrics,
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	quote, err := h.quoter.Quote(ctx, uow.CatalogRepository(), uow.SettingsRepository(), cmd.County(), cmd.Items())
	if err != nil {
		return err
	}

	var applied *voucher.Voucher
	if cmd.HasVoucher() {
		applied, err = uow.VoucherRepository().GetByCode(ctx, cmd.VoucherCode())
		if err == nil {
			quote, err = quote.WithVoucher(applied, kernel.RoleBuyer, now)
		}
		if err != nil {
			h.metrics.ObserveVoucher(pricing.VoucherStageRedeem, pricing.VoucherOutcome(err))
			return err
		}
	}

	if !quote.Summary.CanProceedWithOrder {
		blocked := make([]string, 0, len(quote.Summary.UndeliverableItems))
		for _, o := range quote.Summary.UndeliverableItems {
			blocked = append(blocked, o.SellerID.String())
		}
		return errs.NewCheckoutBlockedError(quote.Summary.Message, blocked...)
	}
	if !quote.Summary.PaymentTypeAllowed(cmd.PaymentType()) {
		return errs.NewValueIsInvalidErrorWithCause("paymentType",
			fmt.Errorf("%s is not offered by every seller in the cart", cmd.PaymentType()))
	}

	lines, err := orderLines(quote.Groups)
	if err != nil {
		return err
	}
	o, err := order.NewOrder(
		cmd.OrderID(), cmd.BuyerID(), lines, quote.Location,
		quote.DeliveryFee(), quote.DiscountAmount(), cmd.VoucherCode(),
		cmd.PaymentType(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if applied != nil {
		if err = uow.VoucherRepository().Redeem(ctx, applied.ID()); err != nil {
			h.metrics.ObserveVoucher(pricing.VoucherStageRedeem, pricing.VoucherOutcome(err))
			return err
		}
		redemption := voucher.NewRedemption(*quote.Discount, o.ID(), now)
		if err = uow.VoucherRepository().AddRedemption(ctx, redemption); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if applied != nil {
		h.metrics.ObserveVoucher(pricing.VoucherStageRedeem, pricing.VoucherOutcomeApplied)
	}
	return nil
}

func orderLines(groups []cart.SellerGroup) ([]order.Line, error) {
	lines := make([]order.Line, 0)
	for _, g := range groups {
		for _, l := range g.Lines() {
			p := l.Product()
			line, err := order.NewLine(p.ID(), p.SellerID(), p.Name(), l.Quantity(), p.Price())
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	}
	return lines, nil
}
