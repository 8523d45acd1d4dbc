package middleware

import "github.com/labstack/echo/v4"

// UserIDKey is the echo.Context key holding the acting user's id (int64).
const UserIDKey = "user_id"

// CurrentUser injects a fixed acting user into every request. There is no
// authentication; every caller acts as userID.
func CurrentUser(userID int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
