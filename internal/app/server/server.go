// Package server собирает хранилище, HTTP API и управляет жизненным циклом процесса.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"passwordy/internal/app/server/api"
	"passwordy/internal/app/server/config"
	"passwordy/internal/infrastructure/storage"
)

type App struct {
	cfg    *config.Config
	log    *slog.Logger
	store  storage.Store
	server *http.Server
}

// New открывает хранилище и собирает роутер. Для Postgres миграции применяются до открытия.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.DB.Driver == config.DriverPostgres {
		if err := storage.Migrate(cfg.DB); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	mux, err := api.New(store, cfg, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		cfg:   cfg,
		log:   log.With("component", "server"),
		store: store,
		server: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error("failed to close storage", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", "address", a.server.Addr, "driver", a.cfg.DB.Driver)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
