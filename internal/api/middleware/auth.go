package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/uqcareers/jobboard-api/internal/api/metrics"
	"github.com/uqcareers/jobboard-api/internal/core/domain"
	"github.com/uqcareers/jobboard-api/internal/core/ports"
)

// principalKey is the echo context key under which the resolved principal is
// stored for downstream handlers.
const principalKey = "principal"

// Auth extracts the bearer token, resolves it to a live principal and injects
// it into the request context. Any resolution failure is a 401; the handler
// chain never runs with a stale or unverified identity.
func Auth(resolver ports.PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			// Only a rejected token is a 401; anything else is an
			// infrastructure failure and must reach the central error
			// handler's logged 500 path untouched.
			principal, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrInvalidToken) {
					metrics.TokenResolutionsTotal.WithLabelValues("rejected").Inc()
				} else {
					metrics.TokenResolutionsTotal.WithLabelValues("error").Inc()
				}
				return err
			}
			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal injected by Auth, reporting whether
// one is present.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
