package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdeck/hr-admin-api/internal/api/middleware"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// fast-fails when the claims are structurally unusable: a non-empty role
// proves the middleware ran, and every token must carry a numeric subject.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, ok := c.Get(middleware.CtxCallerID).(int64)
	if !ok || id == 0 {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing caller identity")
	}

	return ports.Caller{ID: id, Role: role}, nil
}
