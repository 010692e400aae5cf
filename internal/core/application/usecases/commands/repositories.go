// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, applies domain
// transitions and commits; a deferred Rollback undoes anything left open.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each group of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	VoucherRepoFactory interface {
		VoucherRepository() ports.VoucherRepository
	}

	ApprovalRepoFactory interface {
		PaymentApprovalRepository() ports.PaymentApprovalRepository
	}

	TipRepoFactory interface {
		TipRepository() ports.TipRepository
	}

	// CheckoutUoW prices a cart, redeems its voucher and stores the order in
	// one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   quote, err := quoter.Quote(ctx, uow.CatalogRepository(), uow.SettingsRepository(), county, items)
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.VoucherRepository().Redeem(ctx, voucherID)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CatalogRepoFactory
		SettingsRepoFactory
		OrderRepoFactory
		VoucherRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW is used by transitions that only touch the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW moves an order and its delivery together.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// ReviewUoW records an admin payment decision next to its effect on the
	// order and delivery.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		ApprovalRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	TipUoW interface {
		TxManager
		TipRepoFactory
	}

	TipUoWFactory interface {
		Create() TipUoW
	}
)
