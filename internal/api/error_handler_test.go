package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/openpress/blog-system/internal/core/domain"
)

func render(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrValidation, http.StatusUnprocessableEntity},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		code, body := render(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if body["error"] == "" {
			t.Fatalf("%v: expected error envelope, got %+v", tc.err, body)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, _ := render(t, errors.Join(errors.New("update post"), domain.ErrForbidden))
	if code != http.StatusForbidden {
		t.Fatalf("expected wrapped error to resolve to 403, got %d", code)
	}
}

func TestErrorHandler_EchoError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusForbidden, "access denied"))
	if code != http.StatusForbidden || body["error"] != "access denied" {
		t.Fatalf("unexpected echo error rendering: %d %+v", code, body)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := render(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked to client: %+v", body)
	}
}
