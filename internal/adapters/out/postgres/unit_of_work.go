// Package postgres provides the GORM implementation of the unit of work.
//
// A unit of work owns at most one transaction. Repositories handed out after
// Begin run inside it; repositories handed out before Begin run on the plain
// connection. Order and delivery repositories report every aggregate they
// write back to the unit of work, and a successful Commit publishes one
// OrderChanged event per tracked order.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/voucherrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates the factory. publisher may be nil, in which
// case committed changes are not announced.
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and remembers the
// aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.OrderEventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction and publishes events for tracked orders.
// Publishing failures are logged; the data is already durable at that point.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTrackedOrders(ctx)
	return nil
}

// Rollback discards the transaction and everything tracked in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return catalogrepo.NewGormSettingsRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VoucherRepository() ports.VoucherRepository {
	return voucherrepo.NewGormVoucherRepository(uow.conn())
}

func (uow *GormUnitOfWork) PaymentApprovalRepository() ports.PaymentApprovalRepository {
	return paymentrepo.NewGormApprovalRepository(uow.conn())
}

func (uow *GormUnitOfWork) TipRepository() ports.TipRepository {
	return paymentrepo.NewGormTipRepository(uow.conn())
}

// TrackAggregate registers an aggregate written inside this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many writes are waiting for the commit.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTrackedOrders(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if uow.publisher == nil {
		return
	}

	published := make(map[kernel.UUID]bool)
	for i := len(tracked) - 1; i >= 0; i-- {
		o, ok := tracked[i].Aggregate.(*order.Order)
		if !ok || published[tracked[i].ID] {
			continue
		}
		published[tracked[i].ID] = true

		if err := uow.publisher.PublishOrderChanged(ctx, OrderChangedEvent(o, time.Now())); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish order change",
				"order_id", o.ID().String(), "status", o.Status().String(), "error", err)
		}
	}
}

// OrderChangedEvent builds the broker event for an order's current state.
func OrderChangedEvent(o *order.Order, at time.Time) ports.OrderChanged {
	return ports.OrderChanged{
		OrderID:       o.ID().String(),
		BuyerID:       o.BuyerID().String(),
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		PaymentType:   o.PaymentType().String(),
		Total:         o.Total().Decimal().StringFixed(2),
		Version:       o.Version(),
		OccurredAt:    at.UTC(),
	}
}
