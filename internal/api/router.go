package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/comicjam/storyboard-api/docs"
	"github.com/comicjam/storyboard-api/internal/api/handler"
	"github.com/comicjam/storyboard-api/internal/api/middleware"
	"github.com/comicjam/storyboard-api/internal/core/ports"
	"github.com/comicjam/storyboard-api/internal/infrastructure/http/handlers"
	"github.com/comicjam/storyboard-api/internal/pkg/metrics"
)

// Dependencies are the services the router exposes.
type Dependencies struct {
	Users      ports.UserService
	Challenges ports.ChallengeService
	Panels     ports.PanelService
	Generation ports.GenerationService

	// Redis is optional; it only feeds the readiness probe.
	Redis         *redis.Client
	CurrentUserID int64
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(middleware.RequestLogger(log))

	// --- Health probes, metrics and docs ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	users := handler.NewUserHandler(deps.Users)
	challenges := handler.NewChallengeHandler(deps.Challenges, deps.Generation)
	panels := handler.NewPanelHandler(deps.Panels, deps.Generation)
	storyboards := handler.NewStoryboardHandler(deps.Challenges)

	g := e.Group("/api", middleware.CurrentUser(deps.CurrentUserID))

	g.GET("/auth/me", users.Me)

	g.GET("/challenges/daily", challenges.Daily)
	g.GET("/challenges/community", challenges.CommunityPreviews)
	g.GET("/challenges/community/:id", challenges.Community)
	g.POST("/challenges/generate-theme", challenges.GenerateTheme)
	g.POST("/challenges/from-theme", challenges.CreateFromTheme)
	g.GET("/challenges/:id", challenges.Get)
	g.POST("/challenges", challenges.Create)
	g.PATCH("/challenges/:id", challenges.Update)

	g.GET("/panels", panels.ListByChallenge)
	g.GET("/panels/:id", panels.Get)
	g.GET("/panels/:id/voted", panels.Voted)
	g.POST("/panels/generate", panels.Generate)
	g.POST("/panels", panels.Create)
	g.POST("/votes", panels.Vote)
	g.POST("/captions/suggest", panels.SuggestCaption)

	g.GET("/storyboards/completed", storyboards.Completed)
	g.GET("/storyboards/:id", storyboards.Get)

	return e
}
