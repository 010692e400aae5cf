package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction; before Begin they run on the plain connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes change events for the
	// orders touched inside it.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active, so it is safe
	// to defer after Commit.
	Rollback(ctx context.Context) error

	CatalogRepository() CatalogRepository
	SettingsRepository() SettingsRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	VoucherRepository() VoucherRepository
	PaymentApprovalRepository() PaymentApprovalRepository
	TipRepository() TipRepository
}
