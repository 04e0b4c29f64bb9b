package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentbridge/job-portal/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	e.HTTPErrorHandler(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return rec.Code, resp
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusBadRequest, "user not found with this email"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect email or password"},
		{"role mismatch", domain.ErrRoleMismatch, http.StatusBadRequest, "account does not exist with current role"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists with this email"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"company not found", domain.ErrCompanyNotFound, http.StatusNotFound, "company not found"},
		{"company exists", domain.ErrCompanyExists, http.StatusConflict, "company with this name already exists"},
		{"job not found", domain.ErrJobNotFound, http.StatusNotFound, "job not found"},
		{"application not found", domain.ErrApplicationNotFound, http.StatusNotFound, "application not found"},
		{"already applied", domain.ErrAlreadyApplied, http.StatusConflict, "you have already applied to this job"},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest, "invalid application status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, code)
			}
			if resp.Success {
				t.Fatalf("failure envelope must carry success=false")
			}
			if resp.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp.Message)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update status"), domain.ErrJobNotFound)
	code, resp := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped ErrJobNotFound, got %d", code)
	}
	if resp.Message != "job not found" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if resp.Message != "invalid payload" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, resp := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Message != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", resp.Message)
	}
}
