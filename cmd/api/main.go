package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/comicjam/storyboard-api/internal/api"
	"github.com/comicjam/storyboard-api/internal/core/ports"
	"github.com/comicjam/storyboard-api/internal/core/service"
	"github.com/comicjam/storyboard-api/internal/infrastructure/db/memory"
	redisdb "github.com/comicjam/storyboard-api/internal/infrastructure/db/redis"
	"github.com/comicjam/storyboard-api/internal/infrastructure/generator/gemini"
	"github.com/comicjam/storyboard-api/internal/infrastructure/generator/openai"
	"github.com/comicjam/storyboard-api/internal/pkg/config"
	"github.com/comicjam/storyboard-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storyboard-api",
	})
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	gen, err := newGenerator(ctx, cfg.Generator, logger.Component("generator"))
	if err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		OpTimeout: cfg.Redis.OpTimeout,
	})
	if err != nil {
		return err
	}
	var cache ports.GenerationCache
	if rdb != nil {
		defer rdb.Close()
		cache = redisdb.NewGenerationCache(rdb, cfg.Redis.CacheTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("generation cache enabled")
	}

	store := memory.NewStore()
	users := service.NewUserService(store, logger.Component("users"))
	generation := service.NewGenerationService(gen, cache, logger.Component("generation"))
	challenges := service.NewChallengeService(store, generation, logger.Component("challenges"))
	panels := service.NewPanelService(store, logger.Component("panels"))

	if cfg.SeedSampleData {
		if err := service.NewSeeder(users, challenges, panels, logger.Component("seed")).Seed(ctx); err != nil {
			return err
		}
	}

	e := api.NewRouter(api.Dependencies{
		Users:         users,
		Challenges:    challenges,
		Panels:        panels,
		Generation:    generation,
		Redis:         rdb,
		CurrentUserID: cfg.CurrentUserID,
	}, logger.Component("http"))

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("provider", cfg.Generator.Provider).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newGenerator(ctx context.Context, cfg config.GeneratorConfig, log zerolog.Logger) (ports.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(ctx, gemini.Config{
			APIKey:     cfg.Gemini.APIKey,
			TextModel:  cfg.Gemini.TextModel,
			ImageModel: cfg.Gemini.ImageModel,
		}, log)
	default:
		if cfg.OpenAI.APIKey == "" {
			log.Warn().Msg("OPENAI_API_KEY is not set; generation requests will fail")
		}
		return openai.NewClient(openai.Config{
			APIKey:     cfg.OpenAI.APIKey,
			BaseURL:    cfg.OpenAI.BaseURL,
			ImageModel: cfg.OpenAI.ImageModel,
			ChatModel:  cfg.OpenAI.ChatModel,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		}, log), nil
	}
}
