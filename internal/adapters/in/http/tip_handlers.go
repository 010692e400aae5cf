package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateTip handles POST /api/v1/tips.
func (s *Server) CreateTip(ctx echo.Context) error {
	var req servers.CreateTipJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}

	amount, err := kernel.NewMoneyFromFloat(req.Amount)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateTipCommand(req.CheckoutRequestId, req.PostSlug, req.Phone, amount)
	if err != nil {
		return s.writeError(ctx, err)
	}

	tipID, err := s.h.CreateTip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, servers.TipCreated{TipId: tipID.Bytes()})
}

// GetTipStatus handles GET /api/v1/tips/{tipId}/status.
func (s *Server) GetTipStatus(ctx echo.Context, tipId openapi_types.UUID) error {
	id, err := toUUID("tipId", tipId)
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetTipStatusQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.h.TipStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp := servers.TipStatus{
		TipId:    tipId,
		Status:   view.Status,
		CanRetry: view.CanRetry,
	}
	if view.FailedReason != "" {
		resp.FailedReason = &view.FailedReason
	}
	if view.ActionRequired != "" {
		resp.ActionRequired = &view.ActionRequired
	}
	return ctx.JSON(http.StatusOK, resp)
}

// HandlePaymentCallback handles POST /api/v1/payments/callback. Gateways
// retry until they get a 200, so redelivered results are acknowledged too.
func (s *Server) HandlePaymentCallback(ctx echo.Context) error {
	var req servers.HandlePaymentCallbackJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}

	cb := req.Body.StkCallback
	desc := ""
	if cb.ResultDesc != nil {
		desc = *cb.ResultDesc
	}
	cmd, err := commands.NewApplyPaymentResultCommand(cb.CheckoutRequestID, cb.ResultCode, desc)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.h.ApplyPaymentResult.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}
