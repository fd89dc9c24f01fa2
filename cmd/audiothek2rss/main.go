package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mbarthauer/audiothek2rss/internal/client"
	"github.com/mbarthauer/audiothek2rss/internal/config"
	"github.com/mbarthauer/audiothek2rss/internal/metrics"
	"github.com/mbarthauer/audiothek2rss/internal/service"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}
	logger := config.GetLogger()

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("directory", cfg.OutputDir).
		Str("output", cfg.Output).
		Int("pagination", cfg.Pagination).
		Int("latest", cfg.Latest).
		Bool("html", cfg.HTML).
		Msg("Application started with configuration")

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Metrics.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && err.Error() != "http: Server closed" {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	// Cancel the run on SIGINT/SIGTERM so partially written output stays consistent.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpClient := client.NewClient(cfg)
	if err := service.New(cfg, httpClient).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}

	logger.Info().Msg("Run finished successfully")
}
