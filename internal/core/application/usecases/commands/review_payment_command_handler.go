package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
)

// ReviewPaymentCommandHandler applies an admin payment decision and appends it
// to the approval audit.
//
// For a BEFORE_DELIVERY order still PENDING, approval also confirms the order
// and opens its delivery, and rejection rejects the order. AFTER_DELIVERY
// orders only record the payment outcome.
type ReviewPaymentCommandHandler struct {
	uowFactory ReviewUoWFactory
}

func NewReviewPaymentCommandHandler(uowFactory ReviewUoWFactory) ReviewPaymentCommandHandler {
	return ReviewPaymentCommandHandler{uowFactory: uowFactory}
}

func (h *ReviewPaymentCommandHandler) Handle(ctx context.Context, cmd ReviewPaymentCommand) error {
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
	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	gatesOrder := o.PaymentType() == kernel.PayBeforeDelivery && o.Status() == order.Pending

	var opened *delivery.Delivery
	switch cmd.Decision() {
	case payment.Approve:
		if err = o.ApprovePayment(now); err != nil {
			return err
		}
		if gatesOrder {
			if err = o.Confirm(now); err != nil {
				return err
			}
			if opened, err = delivery.NewDelivery(o.ID(), o.DeliveryFee(), now); err != nil {
				return err
			}
		}
	case payment.Reject:
		if err = o.RejectPayment(now); err != nil {
			return err
		}
		if gatesOrder {
			if err = o.Reject(now); err != nil {
				return err
			}
		}
	}

	approval, err := payment.NewApproval(o.ID(), cmd.AdminID(), cmd.Decision(), cmd.Reason(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if opened != nil {
		if err = uow.DeliveryRepository().Add(ctx, opened); err != nil {
			return err
		}
	}
	if err = uow.PaymentApprovalRepository().Add(ctx, approval); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
