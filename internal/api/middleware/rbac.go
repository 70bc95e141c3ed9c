package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uqcareers/jobboard-api/internal/api/metrics"
	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

// Require enforces the access policy for op at the edge. The services apply
// the same policy again; this guard just rejects obviously unauthorized
// requests before any handler work happens.
func Require(op domain.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, err := domain.ScopeFor(p.Role, op); err != nil {
				metrics.AccessDeniedTotal.WithLabelValues(string(op), string(p.Role)).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
