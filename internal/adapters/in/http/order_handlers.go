package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetOrder handles GET /api/v1/orders/{orderId}. What the caller sees depends
// on its role; an order it may not see is reported as not found.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := requireActor(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id, caller.ID, caller.Role)
	if err != nil {
		return s.writeError(ctx, err)
	}
	order, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, order)
}

// SubmitPayment handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) SubmitPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := requireActor(ctx, kernel.RoleBuyer)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req servers.SubmitPaymentJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitPaymentCommand(id, caller.ID, req.Reference)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.SubmitPayment.Handle(ctx.Request().Context(), cmd))
}

// ApprovePayment handles POST /api/v1/orders/{orderId}/payment/approve.
func (s *Server) ApprovePayment(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.reviewPayment(ctx, orderId, payment.Approve)
}

// RejectPayment handles POST /api/v1/orders/{orderId}/payment/reject.
func (s *Server) RejectPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	return s.reviewPayment(ctx, orderId, payment.Reject)
}

func (s *Server) reviewPayment(ctx echo.Context, orderId openapi_types.UUID, decision payment.Decision) error {
	caller, err := requireActor(ctx, kernel.RoleAdmin)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req servers.ReviewPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}
	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewReviewPaymentCommand(id, caller.ID, decision, reason)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.ReviewPayment.Handle(ctx.Request().Context(), cmd))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := requireActor(ctx, kernel.RoleAdmin)
	if err != nil {
		return s.writeError(ctx, err)
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(id, caller.ID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd))
}

// PackOrder handles POST /api/v1/orders/{orderId}/pack.
func (s *Server) PackOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := requireActor(ctx, kernel.RoleSeller)
	if err != nil {
		return s.writeError(ctx, err)
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewPackOrderCommand(id, caller.ID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.PackOrder.Handle(ctx.Request().Context(), cmd))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := requireActor(ctx, kernel.RoleBuyer, kernel.RoleAdmin)
	if err != nil {
		return s.writeError(ctx, err)
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id, caller.ID, caller.Role)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.CancelOrder.Handle(ctx.Request().Context(), cmd))
}

// AssignDeliveryAgent handles POST /api/v1/orders/{orderId}/delivery/agent.
func (s *Server) AssignDeliveryAgent(ctx echo.Context, orderId openapi_types.UUID) error {
	if _, err := requireActor(ctx, kernel.RoleAdmin); err != nil {
		return s.writeError(ctx, err)
	}

	var req servers.AssignDeliveryAgentJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	agentID, err := toUUID("agentId", req.AgentId)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryAgentCommand(id, agentID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.AssignDeliveryAgent.Handle(ctx.Request().Context(), cmd))
}

// RecordDeliveryEvent handles POST /api/v1/orders/{orderId}/delivery/events.
func (s *Server) RecordDeliveryEvent(ctx echo.Context, orderId openapi_types.UUID) error {
	caller, err := requireActor(ctx, kernel.RoleDeliveryAgent)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req servers.RecordDeliveryEventJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}
	id, err := toUUID("orderId", orderId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	event, err := commands.ParseDeliveryEvent(string(req.Event))
	if err != nil {
		return s.writeError(ctx, err)
	}
	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	cmd, err := commands.NewRecordDeliveryEventCommand(id, caller.ID, event, reason)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.noContent(ctx, s.h.RecordDeliveryEvent.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) noContent(ctx echo.Context, err error) error {
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
