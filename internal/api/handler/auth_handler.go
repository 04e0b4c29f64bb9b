package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/job-portal/internal/api/metrics"
	"github.com/talentbridge/job-portal/internal/api/middleware"
	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// AuthHandler handles registration, login, logout and profile updates.
type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/v1/user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, userResponse{
		Success: true,
		Message: "Account created successfully.",
		User:    user,
	})
}

// Login verifies credentials and sets the session cookie.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/v1/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(req.Role, loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues(req.Role, "ok").Inc()

	c.SetCookie(h.sessionCookie(token, int(h.tokenTTL.Seconds())))

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "Welcome back " + user.FullName,
		User:    user,
	})
}

// Logout clears the session cookie. The server keeps no session state, so a
// previously issued token stays valid until its natural expiry; logout only
// removes the cookie from the client.
//
// @Summary      Logout
// @Tags         user
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/v1/user/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Logged out successfully.",
	})
}

// UpdateProfile updates the caller's mutable profile fields.
//
// @Summary      Update own profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /api/v1/user/profile/update [post]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:             userID,
		FullName:           req.FullName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Bio:                req.Bio,
		Skills:             req.Skills,
		ResumeURL:          req.ResumeURL,
		ResumeOriginalName: req.ResumeOriginalName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Success: true,
		Message: "Profile updated successfully.",
		User:    user,
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRoleMismatch):
		return "role_mismatch"
	default:
		return "invalid_credentials"
	}
}
