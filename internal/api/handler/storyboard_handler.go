package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comicjam/storyboard-api/internal/core/ports"
)

// StoryboardHandler serves completed storyboards.
type StoryboardHandler struct {
	service ports.ChallengeService
}

func NewStoryboardHandler(service ports.ChallengeService) *StoryboardHandler {
	return &StoryboardHandler{service: service}
}

// Completed handles GET /api/storyboards/completed.
//
// @Summary      Recently completed storyboards
// @Tags         storyboards
// @Produce      json
// @Success      200  {array}  domain.CompletedStoryboard
// @Router       /api/storyboards/completed [get]
func (h *StoryboardHandler) Completed(c echo.Context) error {
	boards, err := h.service.CompletedStoryboards(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, boards)
}

// Get handles GET /api/storyboards/:id.
//
// @Summary      Storyboard by challenge id
// @Tags         storyboards
// @Produce      json
// @Param        id   path      int  true  "Challenge ID"
// @Success      200  {object}  domain.CompletedStoryboard
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/storyboards/{id} [get]
func (h *StoryboardHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"), "Invalid storyboard ID")
	if err != nil {
		return err
	}
	board, err := h.service.CompletedStoryboard(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, board)
}
