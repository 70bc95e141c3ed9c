package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uqcareers/jobboard-api/internal/api/middleware"
	"github.com/uqcareers/jobboard-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails with 401 when it is absent. Absence means a route was wired
// without the middleware, which must never reach a service call.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok || p.Username == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return p, nil
}
