package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/coocood/freecache"
	"github.com/joho/godotenv"

	httpadapter "campaigniq/internal/adapter/http"
	"campaigniq/internal/adapter/postgres"
	"campaigniq/internal/adapter/predictor"
	"campaigniq/internal/adapter/usecase"
	"campaigniq/internal/adapter/worqhat"
	"campaigniq/internal/config"
	"campaigniq/internal/db"
)

// insightCacheSize is the freecache arena for the combined-insight
// projection. 1 MiB is far more than twenty insights ever need; freecache
// rounds anything smaller up to its 512 KB minimum anyway.
const insightCacheSize = 1024 * 1024

// main loads configuration, optionally runs migrations and seeds, wires the
// repositories, clients and usecases, spawns the model server side process
// and starts the HTTP server. On a termination signal it shuts the server
// down gracefully and stops the model server last.
func main() {
	// Best-effort .env load for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("sample data seeding checked")
		}
	}

	// The model server is a side process of this server's lifecycle: started
	// once the database is confirmed connected, stopped on shutdown. Request
	// handlers never touch the supervisor.
	supervisor := predictor.NewSupervisor(cfg.Predictor.Command, []string{cfg.Predictor.Script}, logger)
	if cfg.Predictor.Autostart {
		if err = supervisor.Start(); err != nil {
			logger.Error("model server start error", slog.Any("error", err))
		}
	}

	campaignRepo := postgres.NewCampaignRepository(pool)
	predictionRepo := postgres.NewPredictionRepository(pool)
	predictClient := predictor.NewClient(cfg.Predictor.Endpoint, cfg.Predictor.Timeout)
	chatClient := worqhat.NewClient(cfg.Worqhat.APIKey, cfg.Worqhat.Endpoint, cfg.Worqhat.Model, cfg.Worqhat.Timeout)

	campaigns := usecase.NewCampaignUseCase(campaignRepo, predictionRepo, predictClient, freecache.NewCache(insightCacheSize))
	chat := usecase.NewChatUseCase(campaigns, chatClient)

	handler := httpadapter.NewHandler(campaigns, chat, pool, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}

	supervisor.Stop()
}
