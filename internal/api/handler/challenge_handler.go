package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comicjam/storyboard-api/internal/core/domain"
	"github.com/comicjam/storyboard-api/internal/core/ports"
)

// ChallengeHandler handles challenge endpoints.
type ChallengeHandler struct {
	service    ports.ChallengeService
	generation ports.GenerationService
}

func NewChallengeHandler(service ports.ChallengeService, generation ports.GenerationService) *ChallengeHandler {
	return &ChallengeHandler{service: service, generation: generation}
}

// Daily handles GET /api/challenges/daily.
//
// @Summary      Today's challenge
// @Tags         challenges
// @Produce      json
// @Success      200  {object}  domain.Challenge
// @Failure      404  {object}  messageResponse
// @Router       /api/challenges/daily [get]
func (h *ChallengeHandler) Daily(c echo.Context) error {
	challenge, err := h.service.Daily(c.Request().Context())
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "No daily challenge found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challenge)
}

// CommunityPreviews handles GET /api/challenges/community.
//
// @Summary      Community challenge previews
// @Tags         challenges
// @Produce      json
// @Success      200  {array}  domain.CommunityChallenge
// @Router       /api/challenges/community [get]
func (h *ChallengeHandler) CommunityPreviews(c echo.Context) error {
	previews, err := h.service.CommunityPreviews(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, previews)
}

// Community handles GET /api/challenges/community/:id.
//
// @Summary      Community challenge
// @Tags         challenges
// @Produce      json
// @Param        id   path      int  true  "Challenge ID"
// @Success      200  {object}  domain.Challenge
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/challenges/community/{id} [get]
func (h *ChallengeHandler) Community(c echo.Context) error {
	id, err := parseID(c.Param("id"), "Invalid challenge ID")
	if err != nil {
		return err
	}
	challenge, err := h.service.Community(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challenge)
}

// Get handles GET /api/challenges/:id.
//
// @Summary      Challenge by id
// @Tags         challenges
// @Produce      json
// @Param        id   path      int  true  "Challenge ID"
// @Success      200  {object}  domain.Challenge
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/challenges/{id} [get]
func (h *ChallengeHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"), "Invalid challenge ID")
	if err != nil {
		return err
	}
	challenge, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challenge)
}

// Create handles POST /api/challenges.
//
// @Summary      Create a challenge
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Param        body  body      createChallengeRequest  true  "Challenge"
// @Success      201   {object}  domain.Challenge
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/challenges [post]
func (h *ChallengeHandler) Create(c echo.Context) error {
	var req createChallengeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	challenge, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, challenge)
}

// Update handles PATCH /api/challenges/:id. Panel counts and contributors
// are not writable.
//
// @Summary      Update a challenge
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Challenge ID"
// @Param        body  body      updateChallengeRequest  true  "Fields to overwrite"
// @Success      200   {object}  domain.Challenge
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/challenges/{id} [patch]
func (h *ChallengeHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"), "Invalid challenge ID")
	if err != nil {
		return err
	}
	var req updateChallengeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	challenge, err := h.service.Update(c.Request().Context(), id, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, challenge)
}

// GenerateTheme handles POST /api/challenges/generate-theme.
//
// @Summary      Suggest a challenge theme
// @Tags         challenges
// @Produce      json
// @Success      200  {object}  domain.ChallengeTheme
// @Failure      502  {object}  messageResponse
// @Router       /api/challenges/generate-theme [post]
func (h *ChallengeHandler) GenerateTheme(c echo.Context) error {
	theme, err := h.generation.GenerateTheme(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, theme)
}

// CreateFromTheme handles POST /api/challenges/from-theme.
//
// @Summary      Create a challenge from a generated theme
// @Tags         challenges
// @Accept       json
// @Produce      json
// @Param        body  body      challengeFromThemeRequest  false  "Options"
// @Success      201   {object}  domain.Challenge
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/challenges/from-theme [post]
func (h *ChallengeHandler) CreateFromTheme(c echo.Context) error {
	var req challengeFromThemeRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}
	challenge, err := h.service.CreateFromTheme(c.Request().Context(), req.TotalPanels, req.IsDaily)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, challenge)
}
