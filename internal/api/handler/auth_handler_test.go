package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/job-portal/internal/api/middleware"
	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password, role string) (string, *domain.User, error)
	updateFn   func(ctx context.Context, in ports.UpdateProfileInput) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password, role)
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, in)
}

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			return ck
		}
	}
	t.Fatalf("no %q cookie set", middleware.CookieName)
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "a@x.com" || in.Role != domain.RoleStudent {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "user_1", FullName: in.FullName, Email: in.Email, Role: in.Role}, nil
		},
	}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/user/register",
		`{"fullname":"Alice","email":"a@x.com","phone_number":"5550001111","password":"secret1","role":"student"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.User == nil || resp.User.ID != "user_1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(svc, time.Hour)

	c, _ := newEchoContext(t, http.MethodPost, "/api/v1/user/register",
		`{"fullname":"Alice","email":"a@x.com","phone_number":"5550001111","password":"secret1","role":"admin"}`)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	user := &domain.User{ID: "user_1", FullName: "Alice", Email: "a@x.com", Role: domain.RoleStudent}
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, password, role string) (string, *domain.User, error) {
			if email != "a@x.com" || password != "secret1" || role != domain.RoleStudent {
				t.Fatalf("unexpected credentials: %s %s %s", email, password, role)
			}
			return "signed-token", user, nil
		},
	}
	h := NewAuthHandler(svc, 24*time.Hour)

	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/user/login",
		`{"email":"a@x.com","password":"secret1","role":"student"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ck := sessionCookieFrom(t, rec)
	if ck.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", ck.Value)
	}
	if !ck.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if ck.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("cookie MaxAge %d does not match the token TTL", ck.MaxAge)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.User == nil || resp.User.Email != "a@x.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must not expose password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_ErrorPassesThrough(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/user/login",
		`{"email":"a@x.com","password":"wrong","role":"student"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			t.Fatalf("no session cookie may be set on a failed login")
		}
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newEchoContext(t, http.MethodGet, "/api/v1/user/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ck := sessionCookieFrom(t, rec)
	if ck.Value != "" || ck.MaxAge != -1 {
		t.Fatalf("logout must expire the cookie, got value=%q maxage=%d", ck.Value, ck.MaxAge)
	}
}

func TestAuthHandler_UpdateProfile_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, _ := newEchoContext(t, http.MethodPost, "/api/v1/user/profile/update", `{"bio":"hi"}`)

	err := h.UpdateProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_UpdateProfile_Success(t *testing.T) {
	svc := &stubAuthService{
		updateFn: func(_ context.Context, in ports.UpdateProfileInput) (*domain.User, error) {
			if in.UserID != "user_1" || in.Bio != "Backend engineer" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: in.UserID, Profile: domain.Profile{Bio: in.Bio}}, nil
		},
	}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newEchoContext(t, http.MethodPost, "/api/v1/user/profile/update",
		`{"bio":"Backend engineer","skills":["go"]}`)
	c.Set(middleware.ContextUserID, "user_1")
	c.Set(middleware.ContextRole, domain.RoleStudent)

	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
