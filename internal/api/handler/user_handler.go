package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comicjam/storyboard-api/internal/core/ports"
)

// UserHandler serves the acting user's profile.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /api/auth/me.
//
// @Summary      Current user
// @Description  Returns the acting user. The password hash is never serialised.
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      404  {object}  messageResponse
// @Router       /api/auth/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
