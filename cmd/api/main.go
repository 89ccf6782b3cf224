package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/cron"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/database"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/llm"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/logger"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/redis"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/storage"
	"github.com/hectoorperezz/goviral-backend/internal/wire"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	logger.InitLogger()

	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	err = redis.InitRedis(cfg.Redis)
	if err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}

	store, err := storage.New(cfg.Storage, cfg.MinIO)
	if err != nil {
		log.Error("Fatal error: failed to initialize blob storage", "err", err)
		panic(err)
	}

	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		log.Error("Fatal error: failed to initialize llm client", "err", err)
		panic(err)
	}

	app, err := wire.BuildApplication(db, store, llmClient, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	err = cron.InitCron(app.CronMgr)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "port", cfg.Server.Port)
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
