package main

import (
	"context"
	"log"

	"voice-crm/internal/bootstrap"
	"voice-crm/internal/config"
	"voice-crm/internal/observability"
	"voice-crm/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()
	defer logger.Sync()

	sentryEnabled, err := observability.InitSentry(observability.SentryOptions{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
	})
	if err != nil {
		logger.Error(ctx, "failed to initialize sentry, continuing without it", err)
	}
	defer observability.FlushSentry()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger, sentryEnabled)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "server shutdown failed", err)
	}
}
