package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pet-shelter-hub/internal/adapters/auth/remote"
	"pet-shelter-hub/internal/adapters/backend"
	pg "pet-shelter-hub/internal/adapters/storage/postgres"
	"pet-shelter-hub/internal/platform/config"
	"pet-shelter-hub/internal/platform/logger"
	"pet-shelter-hub/internal/ports/auth"
	"pet-shelter-hub/internal/router"

	"github.com/spf13/cobra"
)

func newServeCmd(envDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(*envDir)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	opts := router.Options{Logger: log}

	if cfg.Backend.BaseURL != "" {
		client, err := backend.NewClient(backend.Config{
			BaseURL:      cfg.Backend.BaseURL,
			APIKey:       cfg.Backend.APIKey,
			APIKeyHeader: cfg.Backend.APIKeyHeader,
			Timeout:      cfg.Backend.Timeout(),
		})
		if err != nil {
			return err
		}
		opts.Backend = client
		log.Info("using backend", map[string]any{"base_url": cfg.Backend.BaseURL})
	} else {
		log.Warn("no backend configured, using in-memory repos", nil)
	}

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}
	opts.AuthVerifier = verifier
	if verifier == nil {
		log.Warn("dev auth enabled: X-Debug-User-ID is trusted", nil)
	}

	if cfg.Database.DSN != "" {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newVerifier: con DevAuth o sin backend no hay verifier (modo dev con headers de debug).
func newVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	if cfg.Server.DevAuth || cfg.Backend.BaseURL == "" {
		return nil, nil
	}
	client, err := remote.NewClient(remote.Config{
		BaseURL:      cfg.Backend.BaseURL,
		APIKey:       cfg.Backend.APIKey,
		APIKeyHeader: cfg.Backend.APIKeyHeader,
		Timeout:      cfg.Backend.Timeout(),
	})
	if err != nil {
		return nil, err
	}
	return remote.NewVerifier(client), nil
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, errors.New("DATABASE_DSN is not set")
	}
	return pg.Open(ctx, cfg.Database.DSN, cfg.Database.MaxOpenConns)
}
