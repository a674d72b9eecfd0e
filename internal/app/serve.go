package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/loanboard/cms/internal/config"
	"github.com/loanboard/cms/internal/logger"
	"github.com/loanboard/cms/internal/server"

	_ "github.com/loanboard/cms/docs/swagger"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg)
	},
}

// loadConfig reads the configuration and initialises the global logger from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.close()

	blobs, err := openBlobStore(ctx, cfg)
	if err != nil {
		return err
	}

	// HTTP collectors live on their own registry; the default one carries the
	// runtime collectors and the log statement counter.
	registry := prometheus.NewRegistry()

	handler := server.NewRouter(newServices(repos, blobs, cfg.UploadMaxBytes), server.Options{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		Registry:       registry,
		Gatherer:       prometheus.DefaultGatherer,
	})

	log.Info().
		Str("env", cfg.AppEnv).
		Str("document_store", cfg.DocumentStore).
		Str("blob_store", cfg.BlobStore).
		Msgf("swagger UI at http://localhost:%s/swagger/", cfg.Port)

	return server.Run(ctx, server.New(cfg.Port, handler), cfg.ShutdownTimeout)
}
