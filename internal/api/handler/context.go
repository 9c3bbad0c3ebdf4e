package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/api/middleware"
	"github.com/fintrack/finance-system/internal/core/domain"
)

// currentPrincipal returns the principal established by the authentication
// middleware. Every principal-scoped handler goes through this single
// helper; a request that reaches one without a principal is rejected with
// domain.ErrUnauthenticated (rendered as 401).
func currentPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return p, nil
}
