package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/core/domain"
)

func runGuard(t *testing.T, mw echo.MiddlewareFunc, principal *domain.Principal) (reached bool, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		SetPrincipal(c, *principal)
	}

	handler := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	return reached, handler(c)
}

func TestRequireAuth_Anonymous(t *testing.T) {
	reached, err := runGuard(t, RequireAuth(), nil)
	if reached {
		t.Fatalf("handler must not run for anonymous request")
	}
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequireAuth_Authenticated(t *testing.T) {
	p := domain.Principal{Username: "alice", Roles: []string{domain.RoleUser}}
	reached, err := runGuard(t, RequireAuth(), &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reached {
		t.Fatalf("handler not called")
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name      string
		principal *domain.Principal
		wantErr   error
	}{
		{
			name:    "anonymous",
			wantErr: domain.ErrUnauthenticated,
		},
		{
			name:      "missing role",
			principal: &domain.Principal{Username: "bob", Roles: []string{"ROLE_GUEST"}},
			wantErr:   domain.ErrForbidden,
		},
		{
			name:      "allowed",
			principal: &domain.Principal{Username: "alice", Roles: []string{domain.RoleUser}},
		},
		{
			name:      "any of several roles",
			principal: &domain.Principal{Username: "carol", Roles: []string{"ROLE_ADMIN"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached, err := runGuard(t, RequireRoles(domain.RoleUser, "ROLE_ADMIN"), tt.principal)
			if tt.wantErr != nil {
				if reached {
					t.Fatalf("handler must not run")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reached {
				t.Fatalf("handler not called")
			}
		})
	}
}
