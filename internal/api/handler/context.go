package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/comicjam/storyboard-api/internal/api/middleware"
)

// currentUserID returns the acting user injected by middleware.CurrentUser.
func currentUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.UserIDKey).(int64)
	if !ok || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "no current user")
	}
	return id, nil
}

// parseID parses a positive integer id. msg is returned with a 400 when the
// value is malformed.
func parseID(raw, msg string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, msg)
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}
