package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"petcare-go/internal/app"
	"petcare-go/internal/config"
	"petcare-go/internal/db"
	"petcare-go/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func newRootCmd(log logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "petcare",
		Short:         "Pet care backend: HTTP API, migrations and database checks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(log),
		newMigrateCmd(log),
		newPingCmd(log),
	)
	return root
}

func newServeCmd(log logger.Logger) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(log)
			if err != nil {
				return err
			}
			log = appLogger(cfg)
			return serve(cmd.Context(), cfg, log, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func newMigrateCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(log)
			if err != nil {
				return err
			}
			log = appLogger(cfg)

			gormDB, err := db.NewPostgres(cfg.DB, log)
			if err != nil {
				return err
			}
			defer db.Close(gormDB)

			applied, err := db.Migrate(gormDB, cfg.DB.MigrationsDir, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", len(applied))
			return nil
		},
	}
}

func newPingCmd(log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the database is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(log)
			if err != nil {
				return err
			}

			version, err := db.Ping(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("database unreachable: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "connected, server version %s\n", version)
			return nil
		},
	}
}

func loadConfig(log logger.Logger) (config.Config, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func appLogger(cfg config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.Log.Level, cfg.Env)
	return logger.New(os.Stdout, level, cfg.Log.Format).With("env", cfg.Env)
}

func serve(parent context.Context, cfg config.Config, log logger.Logger, migrate bool) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("app: close failed", "err", err)
		}
	}()

	if migrate {
		if _, err := application.Migrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	srv := application.HTTPServer()
	log.Info("http: listening", "addr", srv.Addr)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("app: shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			serveErr = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http: graceful shutdown failed", "err", err)
		if serveErr == nil {
			serveErr = err
		}
	}

	if serveErr == nil {
		log.Info("app: stopped")
	}
	return serveErr
}
