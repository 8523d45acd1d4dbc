package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comicjam/storyboard-api/internal/core/ports"
)

// PanelHandler handles panel and vote endpoints.
type PanelHandler struct {
	service    ports.PanelService
	generation ports.GenerationService
}

func NewPanelHandler(service ports.PanelService, generation ports.GenerationService) *PanelHandler {
	return &PanelHandler{service: service, generation: generation}
}

// ListByChallenge handles GET /api/panels?challengeId=.
//
// @Summary      Panels of a challenge, by position
// @Tags         panels
// @Produce      json
// @Param        challengeId  query     int  true  "Challenge ID"
// @Success      200          {array}   domain.Panel
// @Failure      400          {object}  messageResponse
// @Router       /api/panels [get]
func (h *PanelHandler) ListByChallenge(c echo.Context) error {
	challengeID, err := parseID(c.QueryParam("challengeId"), "Invalid challenge ID")
	if err != nil {
		return err
	}
	panels, err := h.service.ListByChallenge(c.Request().Context(), challengeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, panels)
}

// Get handles GET /api/panels/:id.
//
// @Summary      Panel by id
// @Tags         panels
// @Produce      json
// @Param        id   path      int  true  "Panel ID"
// @Success      200  {object}  domain.Panel
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/panels/{id} [get]
func (h *PanelHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"), "Invalid panel ID")
	if err != nil {
		return err
	}
	panel, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, panel)
}

// Voted handles GET /api/panels/:id/voted.
//
// @Summary      Whether the current user voted for a panel
// @Tags         panels
// @Produce      json
// @Param        id   path      int  true  "Panel ID"
// @Success      200  {object}  votedResponse
// @Failure      400  {object}  messageResponse
// @Router       /api/panels/{id}/voted [get]
func (h *PanelHandler) Voted(c echo.Context) error {
	id, err := parseID(c.Param("id"), "Invalid panel ID")
	if err != nil {
		return err
	}
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	voted, err := h.service.HasVoted(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, votedResponse{Voted: voted})
}

// Generate handles POST /api/panels/generate. Nothing is stored.
//
// @Summary      Generate panel artwork
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        body  body      generatePanelRequest  true  "Prompt"
// @Success      200   {object}  generatePanelResponse
// @Failure      400   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/panels/generate [post]
func (h *PanelHandler) Generate(c echo.Context) error {
	var req generatePanelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	url, err := h.generation.GenerateImage(c.Request().Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generatePanelResponse{ImageURL: url})
}

// Create handles POST /api/panels.
//
// @Summary      Add a panel as the current user
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        body  body      createPanelRequest  true  "Panel"
// @Success      201   {object}  domain.Panel
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/panels [post]
func (h *PanelHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req createPanelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	panel, err := h.service.Create(c.Request().Context(), req.toDomain(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, panel)
}

// Vote handles POST /api/votes.
//
// @Summary      Vote for a panel as the current user
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body      createVoteRequest  true  "Vote"
// @Success      201   {object}  domain.Vote
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/votes [post]
func (h *PanelHandler) Vote(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	var req createVoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	vote, err := h.service.Vote(c.Request().Context(), req.toDomain(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vote)
}

// SuggestCaption handles POST /api/captions/suggest.
//
// @Summary      Suggest a caption for a prompt
// @Tags         captions
// @Accept       json
// @Produce      json
// @Param        body  body      suggestCaptionRequest  true  "Prompt"
// @Success      200   {object}  suggestCaptionResponse
// @Failure      400   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/captions/suggest [post]
func (h *PanelHandler) SuggestCaption(c echo.Context) error {
	var req suggestCaptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	caption, err := h.generation.SuggestCaption(c.Request().Context(), req.Prompt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suggestCaptionResponse{Caption: caption})
}
