package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clubrail/content-service/internal/config"
	"github.com/clubrail/content-service/internal/handler"
	"github.com/clubrail/content-service/internal/logger"
	"github.com/clubrail/content-service/internal/repository"
	pg "github.com/clubrail/content-service/internal/repository/postgres"
	"github.com/clubrail/content-service/internal/service"
)

func main() {
	// Optional .env for local development; real environments set vars directly.
	_ = godotenv.Load()

	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	repo, err := repository.New(context.Background(), cfg, &appLogger)
	if err != nil {
		log.Fatalf("❌ Postgres connection failed: %v", err)
	}
	defer repo.Close()

	pool := repo.Pool()
	txManager := pg.NewTxManager(pool)
	pagerSettings := service.PaginationSettings{
		PageSize:        cfg.Site.PageSize,
		MaxVisiblePages: cfg.Site.MaxVisiblePages,
		BoundaryCount:   cfg.Site.BoundaryCount,
	}

	postRepo := pg.NewPostRepository(pool)
	postSvc := service.NewPostService(postRepo, pagerSettings, appLogger)
	sectionSvc := service.NewSectionService(pg.NewSectionRepository(pool), postRepo, appLogger)
	locationSvc := service.NewLocationService(pg.NewLocationRepository(pool), txManager, pagerSettings, appLogger)
	eventSvc := service.NewEventService(pg.NewEventRepository(pool), pagerSettings, appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.CORS(cfg.Server.AllowedOrigins))
	handler.Register(r, pg.NewPinger(pool), postSvc, sectionSvc, locationSvc, eventSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Block until an interrupt, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("✅ Service stopped")
}
