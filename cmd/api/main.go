package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crud-tank/internal/adapters/storage/docstore"
	"crud-tank/internal/config"
	"crud-tank/internal/platform/logger"
	"crud-tank/internal/platform/metrics"
	"crud-tank/internal/router"
)

// @title CRUD Tank API
// @version 1.0
// @description API JSON del tanque de peces (crear, listar, ver, editar y quitar peces).
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, driver, err := docstore.Open(ctx, cfg.Store)
	if err != nil {
		lg.Error("failed to open store", map[string]any{"driver": cfg.Store.Driver, "error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			lg.Warn("store close failed", map[string]any{"error": err.Error()})
		}
	}()

	r := router.NewRouter(router.Options{
		Store:       st,
		Driver:      driver,
		Logger:      lg,
		Metrics:     metrics.New(),
		FlashSecret: cfg.FlashSecret,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("welcome to CRUD Tank", map[string]any{"addr": cfg.Addr, "store": string(driver)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			lg.Error("server error", map[string]any{"error": err.Error()})
		}
	case <-ctx.Done():
		lg.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Error("shutdown failed", map[string]any{"error": err.Error()})
		}
	}
}
