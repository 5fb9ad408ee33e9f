package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"voucher-pipeline/internal/handler/middleware"
	"voucher-pipeline/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/schema.sql declaratively with the atlas CLI.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned statements without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Migrate.Schema,
		DevURL:      cfg.Migrate.DevURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Applied {
		logger.Info("applied", "statement", stmt)
	}
	for _, stmt := range res.Changes.Pending {
		logger.Info("pending", "statement", stmt)
	}
	logger.Info("schema is up to date", "applied", len(res.Changes.Applied), "dry_run", *dryRun)
}
