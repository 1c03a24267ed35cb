package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/swipe-labs/swipe-api/internal/api/metrics"
	"github.com/swipe-labs/swipe-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyIdentity = "identity"
	ContextKeyRole     = "role"
)

// Auth gates protected routes. The header must have the exact shape
// "Bearer <token>"; anything else is rejected before the codec is consulted.
// On success the verified claims are attached to the request context for the
// duration of this request only.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				metrics.TokenVerificationsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Parse(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(ContextKeyIdentity, claims)
			c.Set(ContextKeyRole, claims.Role)

			return next(c)
		}
	}
}
