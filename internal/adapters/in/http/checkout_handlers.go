package http

import (
	"errors"
	"fmt"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetDeliveryOptions handles POST /api/v1/checkout/delivery-options.
func (s *Server) GetDeliveryOptions(ctx echo.Context) error {
	if _, err := requireBuyer(ctx); err != nil {
		return s.writeError(ctx, err)
	}

	var req servers.GetDeliveryOptionsJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}

	items, err := toCartItems(req.Items)
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetDeliveryOptionsQuery(req.DeliveryLocation.County, items)
	if err != nil {
		return s.writeError(ctx, err)
	}

	summary, err := s.h.DeliveryOptions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDeliveryOptionsResponse(summary))
}

// PreviewVoucher handles POST /api/v1/vouchers/preview. The voucher is priced
// against the cart but no use is consumed.
func (s *Server) PreviewVoucher(ctx echo.Context) error {
	caller, err := requireActor(ctx, kernel.RoleBuyer)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req servers.PreviewVoucherJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}

	items, err := toCartItems(req.Items)
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewPreviewVoucherQuery(req.Code, req.DeliveryLocation.County, items, caller.Role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	preview, err := s.h.PreviewVoucher.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.VoucherPreviewResponse{
		Code:         preview.Code,
		DiscountType: preview.DiscountType.String(),
		Discount:     preview.Discount.Float64(),
		Subtotal:     preview.Subtotal.Float64(),
		DeliveryFee:  preview.DeliveryFee.Float64(),
		Total:        preview.Total.Float64(),
		FreeShipping: preview.FreeShipping,
	})
}

// PlaceOrder handles POST /api/v1/orders. A client may pick the order id so
// that retries of the same request cannot create a second order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	caller, err := requireActor(ctx, kernel.RoleBuyer)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return s.badBody(ctx)
	}

	orderID := kernel.NewUUID()
	if req.OrderId != nil {
		if orderID, err = toUUID("orderId", *req.OrderId); err != nil {
			return s.writeError(ctx, err)
		}
	}
	items, err := toCartItems(req.Items)
	if err != nil {
		return s.writeError(ctx, err)
	}
	paymentType, err := kernel.ParsePaymentType(string(req.PaymentType))
	if err != nil {
		return s.writeError(ctx, err)
	}
	voucherCode := ""
	if req.VoucherCode != nil {
		voucherCode = *req.VoucherCode
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, caller.ID, req.DeliveryLocation.County, items, paymentType, voucherCode)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{OrderId: orderID.Bytes()})
}

func (s *Server) badBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func toUUID(paramName string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return parsed, nil
}

func toCartItems(in []servers.CartItem) ([]cart.Item, error) {
	items := make([]cart.Item, 0, len(in))
	var problems []error
	for i, raw := range in {
		productID, err := toUUID(fmt.Sprintf("items[%d].productId", i), raw.ProductId)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		item, err := cart.NewItem(productID, raw.Quantity)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return items, nil
}

func toDeliveryOptionsResponse(summary checkout.Summary) servers.DeliveryOptionsResponse {
	return servers.DeliveryOptionsResponse{
		DeliveryLocation: servers.ResolvedLocation{
			County:   summary.Location.County(),
			Province: string(summary.Location.Province()),
		},
		DeliveryOptions:            toDeliveryOptions(summary.Options),
		Subtotal:                   summary.Subtotal.Float64(),
		CanProceedWithOrder:        summary.CanProceedWithOrder,
		TotalDeliveryFee:           summary.TotalDeliveryFee.Float64(),
		UndeliverableItems:         toUndeliverable(summary.UndeliverableItems),
		HasPayAfterDeliveryOptions: summary.HasPayAfterDeliveryOptions,
		Message:                    summary.Message,
	}
}

// toUndeliverable is null on the wire when every seller group can deliver.
func toUndeliverable(options []checkout.DeliveryOption) *[]servers.DeliveryOption {
	if len(options) == 0 {
		return nil
	}
	out := toDeliveryOptions(options)
	return &out
}

func toDeliveryOptions(options []checkout.DeliveryOption) []servers.DeliveryOption {
	out := make([]servers.DeliveryOption, len(options))
	for i, o := range options {
		productIDs := make([]openapi_types.UUID, len(o.ProductIDs))
		for j, id := range o.ProductIDs {
			productIDs[j] = id.Bytes()
		}
		paymentOptions := make([]servers.PaymentType, len(o.PaymentOptions))
		for j, p := range o.PaymentOptions {
			paymentOptions[j] = servers.PaymentType(p.String())
		}

		out[i] = servers.DeliveryOption{
			SellerId:                 o.SellerID.Bytes(),
			SellerName:               o.SellerName,
			ProductIds:               productIDs,
			Subtotal:                 o.Subtotal.Float64(),
			CanDeliver:               o.CanDeliver,
			RequiresPlatformDelivery: o.RequiresPlatformDelivery,
			DeliveryFee:              o.DeliveryFee.Float64(),
			FreeDeliveryEligible:     o.FreeDeliveryEligible,
			PaymentOptions:           paymentOptions,
			Message:                  o.Message,
		}
	}
	return out
}
