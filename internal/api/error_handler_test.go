package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// serveError routes a request through an echo instance whose handler fails
// with the given error, and returns the rendered response.
func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/fail", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ""},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "username or email already exists"},
		{"category exists", domain.ErrCategoryExists, http.StatusBadRequest, "category already exists"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
		{"expense not found", domain.ErrExpenseNotFound, http.StatusNotFound, "expense not found"},
		{"place not found", domain.ErrPlaceNotFound, http.StatusNotFound, "place not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveError(t, tt.err)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var body struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if tt.wantMsg != "" && body.Error != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedError(t *testing.T) {
	rec := serveError(t, errors.Join(domain.ErrCategoryNotFound, errors.New("lookup failed")))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped domain error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec := serveError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid payload") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_MasksUnexpectedErrors(t *testing.T) {
	rec := serveError(t, errors.New("mongo: connection refused to 10.0.0.5"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
