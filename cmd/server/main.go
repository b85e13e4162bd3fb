package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/randstr/internal/api"
	"github.com/mcoot/randstr/internal/config"
	"github.com/mcoot/randstr/internal/factory"
)

func main() {
	if err := newServerCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newServerCmd() *cobra.Command {
	loader := config.NewLoader(config.DefaultConfig())
	var maxLength int

	cmd := &cobra.Command{
		Use:   "randstr-server",
		Short: "Serve the randstr JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, maxLength)
		},
		SilenceUsage: true,
	}

	loader.RegisterFlags(cmd.Flags(),
		config.KeyConfigFile,
		config.KeyStorageType,
		config.KeyRedisURL,
		config.KeyRedisRunTTL,
		config.KeyJournalMaxRuns,
		config.KeyLogLevel,
		config.KeyServerHost,
		config.KeyServerPort,
	)
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Longest string a request may ask for (0 uses the built-in limit)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, maxLength int) error {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(factory.ConfigFrom(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		GeneratorService: app.GeneratorService,
		MaxLength:        maxLength,
	})

	server := api.NewServer(router, api.ServerConfigFrom(cfg), logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("server stopped")
	return nil
}
