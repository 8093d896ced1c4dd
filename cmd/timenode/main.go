package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/timenode/internal/app"
	"github.com/gabapcia/timenode/internal/config"
	"github.com/gabapcia/timenode/internal/handlers/cli"
	"github.com/gabapcia/timenode/internal/pkg/logger"
	"github.com/gabapcia/timenode/internal/pkg/telemetry"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	if cfg.OTLPEndpoint != "" {
		opts := []telemetry.Option{telemetry.WithEndpoint(cfg.OTLPEndpoint)}
		if cfg.OTLPInsecure {
			opts = append(opts, telemetry.WithInsecure())
		}

		shutdown, err := telemetry.Init(ctx, "timenode", opts...)
		if err != nil {
			return fmt.Errorf("failed to start telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				logger.Warn(ctx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	a := app.New(cfg)
	defer a.Close()

	return cli.Run(ctx, a)
}
