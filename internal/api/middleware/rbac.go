package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// RequireAuth rejects requests that reached this point without a principal.
// The central error handler renders domain.ErrUnauthenticated as 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := PrincipalFrom(c); !ok {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireRoles enforces role-based access control: the principal must carry
// at least one of the allowed roles.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			for _, role := range allowedRoles {
				if p.HasRole(role) {
					return next(c)
				}
			}
			return domain.ErrForbidden
		}
	}
}
