package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swipe-labs/swipe-api/internal/api/middleware"
	"github.com/swipe-labs/swipe-api/internal/core/domain"
)

// ctxIdentity extracts the verified identity injected by the Auth middleware
// and performs a fast-fail check before any service call: a typed, non-empty
// claims value proves the middleware ran on this request.
func ctxIdentity(c echo.Context) (domain.Claims, error) {
	claims, ok := c.Get(middleware.ContextKeyIdentity).(domain.Claims)
	if !ok || claims.UserID == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
