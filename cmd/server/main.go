package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/IbrahimAwiby/youtube-clone/internal/config"
	"github.com/IbrahimAwiby/youtube-clone/internal/db"
	"github.com/IbrahimAwiby/youtube-clone/internal/handler"
	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
	"github.com/IbrahimAwiby/youtube-clone/internal/repository"
	"github.com/IbrahimAwiby/youtube-clone/internal/router"
	"github.com/IbrahimAwiby/youtube-clone/internal/service"
	"github.com/IbrahimAwiby/youtube-clone/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		middleware.InitLogger("info", "youtube-clone")
		middleware.Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	middleware.InitLogger(cfg.LogLevel, "youtube-clone")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		middleware.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)
	cache.InstrumentHitMiss(handler.Metrics.CacheHits, handler.Metrics.CacheMisses)

	ytClient := youtube.New(youtube.Config{
		APIKey:         cfg.YouTube.APIKey,
		BaseURL:        cfg.YouTube.BaseURL,
		RegionCode:     cfg.YouTube.RegionCode,
		QuotaPerSecond: cfg.YouTube.QuotaPerSecond,
	})

	feedSvc := service.NewFeedService(ytClient, cache)
	watchSvc := service.NewWatchService(ytClient, cache)
	recommendSvc := service.NewRecommendService(ytClient)
	authSvc := service.NewAuthService(repository.NewUserRepo(pool), cache, cfg.Session.TTL)

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Clone API",
		ServerHeader: "youtube-clone",
	})

	router.Setup(app, &router.Handlers{
		Feed:              handler.NewFeedHandler(feedSvc),
		Watch:             handler.NewWatchHandler(watchSvc, recommendSvc),
		Auth:              handler.NewAuthHandler(authSvc, cfg.Session.CookieName, cfg.Environment == "production"),
		Theme:             handler.NewThemeHandler(),
		Health:            handler.NewHealthHandler(pool, cache.Client()),
		Sessions:          authSvc,
		SessionCookieName: cfg.Session.CookieName,
	}, cfg.CORSOrigins)

	warmer := service.NewWarmWorker(feedSvc, cache)
	go warmer.Start(ctx)

	go func() {
		<-ctx.Done()
		middleware.Logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			middleware.Logger.Error().Err(err).Msg("shutdown error")
		}
	}()

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("environment", cfg.Environment).
		Msg("backend starting")

	if err := app.Listen(":" + cfg.Port); err != nil {
		middleware.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
