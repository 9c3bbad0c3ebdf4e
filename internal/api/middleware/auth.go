package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// Authenticate inspects the Authorization header once per request and, when
// it carries a valid bearer token whose subject resolves to a known user,
// attaches that user as the request principal.
//
// The filter fails open to anonymous: a missing header, malformed or expired
// token, or unknown subject leaves the request unauthenticated and forwards
// it unchanged. It never aborts the request itself; RequireAuth and the
// handlers make the actual authorization decisions.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A principal established earlier in the chain wins.
			if _, ok := PrincipalFrom(c); ok {
				return next(c)
			}

			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			subject, err := tokens.Subject(token)
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues("malformed").Inc()
				log.Debug().Err(err).Msg("bearer token unparseable, continuing anonymous")
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokensRejectedTotal.WithLabelValues("unknown_subject").Inc()
					log.Debug().Str("subject", subject).Msg("token subject unknown, continuing anonymous")
				} else {
					log.Warn().Err(err).Str("subject", subject).Msg("user lookup failed, continuing anonymous")
				}
				return next(c)
			}

			if !tokens.IsValid(token) {
				metrics.TokensRejectedTotal.WithLabelValues("invalid").Inc()
				log.Debug().Str("subject", subject).Msg("token expired or tampered, continuing anonymous")
				return next(c)
			}

			SetPrincipal(c, domain.Principal{Username: user.Username, Roles: user.Roles})
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Any other scheme is ignored.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
