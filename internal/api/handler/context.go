package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/job-portal/internal/api/middleware"
)

// ctxIdentity extracts the authenticated identity injected by the Auth
// middleware and fast-fails before any service call: a missing user id means
// the middleware did not run on this route, which is a wiring bug surfaced
// as 401 rather than a panic deeper down.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.ContextRole).(string)
	return userID, role, nil
}
