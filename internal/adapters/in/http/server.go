package http

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
)

// Handler contracts the server depends on. The use case handlers in
// commands and queries satisfy them.
type (
	DeliveryOptionsHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryOptionsQuery) (checkout.Summary, error)
	}
	PreviewVoucherHandler interface {
		Handle(ctx context.Context, query queries.PreviewVoucherQuery) (queries.PreviewVoucherResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderResponse, error)
	}
	TipStatusHandler interface {
		Handle(ctx context.Context, query queries.GetTipStatusQuery) (ports.TipStatusView, error)
	}
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
	}
	SubmitPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitPaymentCommand) error
	}
	ReviewPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ReviewPaymentCommand) error
	}
	ConfirmOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error
	}
	PackOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PackOrderCommand) error
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	AssignDeliveryAgentHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDeliveryAgentCommand) error
	}
	RecordDeliveryEventHandler interface {
		Handle(ctx context.Context, cmd commands.RecordDeliveryEventCommand) error
	}
	CreateTipHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTipCommand) (kernel.UUID, error)
	}
	ApplyPaymentResultHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyPaymentResultCommand) error
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	DeliveryOptions     DeliveryOptionsHandler
	PreviewVoucher      PreviewVoucherHandler
	GetOrder            GetOrderHandler
	TipStatus           TipStatusHandler
	PlaceOrder          PlaceOrderHandler
	SubmitPayment       SubmitPaymentHandler
	ReviewPayment       ReviewPaymentHandler
	ConfirmOrder        ConfirmOrderHandler
	PackOrder           PackOrderHandler
	CancelOrder         CancelOrderHandler
	AssignDeliveryAgent AssignDeliveryAgentHandler
	RecordDeliveryEvent RecordDeliveryEventHandler
	CreateTip           CreateTipHandler
	ApplyPaymentResult  ApplyPaymentResultHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}
