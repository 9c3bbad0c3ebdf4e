package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// principalKey is the echo.Context key under which the authenticated
// principal is stored. The context is per-request, so the principal can
// never leak into another request.
const principalKey = "principal"

// SetPrincipal attaches the authenticated principal to the request context.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal established for this request, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
