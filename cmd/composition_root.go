package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/voucherrepo"
	"marketplace/internal/core/application/pricing"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

// Infrastructure is what the composition root wires the use cases to.
type Infrastructure struct {
	DB        *gorm.DB
	Publisher ports.OrderEventPublisher
	Cache     ports.TipStatusCache
	Metrics   ports.CheckoutMetrics
	Logger    *slog.Logger
}

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.TipStatusCache
	metrics    ports.CheckoutMetrics
	quoter     pricing.Quoter
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, infra Infrastructure) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     infra.DB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(infra.DB, infra.Publisher, infra.Logger),
		cache:      infra.Cache,
		metrics:    infra.Metrics,
		quoter:     pricing.NewDefaultQuoter(),
		logger:     infra.Logger,
	}
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tipUoWFactory() commands.TipUoWFactory {
	return FuncTipUoWFactory(func() commands.TipUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.checkoutUoWFactory(), c.quoter, c.metrics)
}

func (c *CompositionRoot) CreateSubmitPaymentCommandHandler() commands.SubmitPaymentCommandHandler {
	return commands.NewSubmitPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReviewPaymentCommandHandler() commands.ReviewPaymentCommandHandler {
	return commands.NewReviewPaymentCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	return commands.NewPackOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryAgentCommandHandler() commands.AssignDeliveryAgentCommandHandler {
	return commands.NewAssignDeliveryAgentCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateRecordDeliveryEventCommandHandler() commands.RecordDeliveryEventCommandHandler {
	return commands.NewRecordDeliveryEventCommandHandler(c.fulfillmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateTipCommandHandler() commands.CreateTipCommandHandler {
	return commands.NewCreateTipCommandHandler(c.tipUoWFactory())
}

func (c *CompositionRoot) CreateApplyPaymentResultCommandHandler() commands.ApplyPaymentResultCommandHandler {
	return commands.NewApplyPaymentResultCommandHandler(c.tipUoWFactory(), c.cache, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateExpireTipsCommandHandler() commands.ExpireTipsCommandHandler {
	return commands.NewExpireTipsCommandHandler(c.tipUoWFactory(), c.cache, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetDeliveryOptionsQueryHandler() queries.GetDeliveryOptionsQueryHandler {
	return queries.NewGetDeliveryOptionsQueryHandler(
		catalogrepo.NewGormCatalogRepository(c.gormDB),
		catalogrepo.NewGormSettingsRepository(c.gormDB),
		c.quoter,
		c.metrics,
	)
}

func (c *CompositionRoot) CreatePreviewVoucherQueryHandler() queries.PreviewVoucherQueryHandler {
	return queries.NewPreviewVoucherQueryHandler(
		catalogrepo.NewGormCatalogRepository(c.gormDB),
		catalogrepo.NewGormSettingsRepository(c.gormDB),
		voucherrepo.NewGormVoucherRepository(c.gormDB),
		c.quoter,
		c.metrics,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTipStatusQueryHandler() queries.GetTipStatusQueryHandler {
	return queries.NewGetTipStatusQueryHandler(paymentrepo.NewGormTipRepository(c.gormDB), c.cache, c.logger)
}

// CreateServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	placeOrder := c.CreatePlaceOrderCommandHandler()
	submitPayment := c.CreateSubmitPaymentCommandHandler()
	reviewPayment := c.CreateReviewPaymentCommandHandler()
	confirmOrder := c.CreateConfirmOrderCommandHandler()
	packOrder := c.CreatePackOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()
	assignAgent := c.CreateAssignDeliveryAgentCommandHandler()
	deliveryEvent := c.CreateRecordDeliveryEventCommandHandler()
	createTip := c.CreateCreateTipCommandHandler()
	paymentResult := c.CreateApplyPaymentResultCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		DeliveryOptions:     c.CreateGetDeliveryOptionsQueryHandler(),
		PreviewVoucher:      c.CreatePreviewVoucherQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		TipStatus:           c.CreateGetTipStatusQueryHandler(),
		PlaceOrder:          &placeOrder,
		SubmitPayment:       &submitPayment,
		ReviewPayment:       &reviewPayment,
		ConfirmOrder:        &confirmOrder,
		PackOrder:           &packOrder,
		CancelOrder:         &cancelOrder,
		AssignDeliveryAgent: &assignAgent,
		RecordDeliveryEvent: &deliveryEvent,
		CreateTip:           &createTip,
		ApplyPaymentResult:  &paymentResult,
	}, c.logger)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expireTips := c.CreateExpireTipsCommandHandler()
	return jobs.NewJobManager(
		jobs.NewTipExpiryJob(&expireTips, c.config.TipExpirySchedule, c.config.TipPaymentTimeout, 0, c.logger),
	)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncTipUoWFactory func() commands.TipUoW

func (f FuncTipUoWFactory) Create() commands.TipUoW {
	return f()
}
