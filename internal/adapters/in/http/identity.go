package http

import (
	"net/http"
	"slices"
	"strings"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// actor is the authenticated caller of a request.
type actor struct {
	ID   kernel.UUID
	Role kernel.Role
}

// requireActor reads the caller from the identity headers and checks the role
// against allowed. A missing or malformed identity is 401, a role outside
// allowed is 403.
func requireActor(ctx echo.Context, allowed ...kernel.Role) (actor, error) {
	rawID := strings.TrimSpace(ctx.Request().Header.Get(HeaderUserID))
	rawRole := strings.TrimSpace(ctx.Request().Header.Get(HeaderUserRole))
	if rawID == "" || rawRole == "" {
		return actor{}, echo.NewHTTPError(http.StatusUnauthorized, "X-User-ID and X-User-Role headers are required")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor{}, echo.NewHTTPError(http.StatusUnauthorized, "X-User-ID is not a valid id")
	}
	role, err := kernel.ParseRole(rawRole)
	if err != nil {
		return actor{}, echo.NewHTTPError(http.StatusUnauthorized, "X-User-Role is not a known role")
	}

	if len(allowed) > 0 && !slices.Contains(allowed, role) {
		return actor{}, echo.NewHTTPError(http.StatusForbidden, "role "+role.String()+" may not perform this operation")
	}
	return actor{ID: id, Role: role}, nil
}

// requireBuyer is requireActor for buyer-only endpoints that treat any other
// caller as unauthenticated: a non-buyer role is 401, not 403.
func requireBuyer(ctx echo.Context) (actor, error) {
	caller, err := requireActor(ctx)
	if err != nil {
		return actor{}, err
	}
	if caller.Role != kernel.RoleBuyer {
		return actor{}, echo.NewHTTPError(http.StatusUnauthorized, "a buyer identity is required")
	}
	return caller, nil
}
