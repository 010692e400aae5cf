package http

import (
	"errors"
	"net/http"

	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError renders err with the status its kind maps to. Unknown errors are
// logged and answered with a generic 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	body := servers.Error{Code: http.StatusInternalServerError, Message: "Internal server error"}

	var (
		httpErr     *echo.HTTPError
		voucherErr  *errs.VoucherInvalidError
		blockedErr  *errs.CheckoutBlockedError
		paymentErr  *errs.PaymentFailedError
		notFoundErr *errs.ObjectNotFoundError
	)
	switch {
	case errors.As(err, &httpErr):
		body.Code = httpErr.Code
		body.Message = http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		}
	case errors.As(err, &voucherErr):
		reason := string(voucherErr.Reason)
		body.Code = http.StatusUnprocessableEntity
		body.Message = voucherErr.Error()
		body.Reason = &reason
	case errors.As(err, &blockedErr):
		sellerIDs := append([]string(nil), blockedErr.SellerIDs...)
		body.Code = http.StatusUnprocessableEntity
		body.Message = blockedErr.Message
		body.SellerIds = &sellerIDs
	case errors.As(err, &paymentErr):
		body.Code = http.StatusUnprocessableEntity
		body.Message = paymentErr.Reason
	case errors.As(err, &notFoundErr):
		body.Code = http.StatusNotFound
		body.Message = notFoundErr.ParamName + " not found"
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrVersionIsInvalid):
		body.Code = http.StatusConflict
		body.Message = err.Error()
	case isBadRequest(err):
		body.Code = http.StatusBadRequest
		body.Message = err.Error()
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}

	return ctx.JSON(body.Code, body)
}

func isBadRequest(err error) bool {
	for _, target := range []error{
		errs.ErrValueIsRequired,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrProductUnavailable,
		errs.ErrInvalidLocation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// HTTPErrorHandler renders errors that escape the handlers, such as unknown
// routes and parameter binding failures, in the API error format.
func (s *Server) HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}
	if writeErr := s.writeError(ctx, err); writeErr != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
	}
}
