package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/iapourpme/content-api/internal/api"
	"github.com/iapourpme/content-api/internal/core/service"
	"github.com/iapourpme/content-api/internal/infrastructure/config"
	mongostore "github.com/iapourpme/content-api/internal/infrastructure/db/mongo"
	redisstore "github.com/iapourpme/content-api/internal/infrastructure/db/redis"
	"github.com/iapourpme/content-api/internal/infrastructure/queue"
	"github.com/iapourpme/content-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := mongostore.NewArticleRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("article index creation failed")
	}
	if err := mongostore.NewSubscriberRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("subscriber index creation failed")
	}

	// Page-view pipeline: workers live for the whole process.
	viewService := service.NewViewService(mongostore.NewStatsRepository(db), log)
	dispatcher := queue.NewDispatcher(cfg.ViewWorkers, viewService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
