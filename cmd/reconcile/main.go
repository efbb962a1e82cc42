// cmd/reconcile/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/dangerclosesec/tounesna/internal/app"
	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/service"
)

func main() {
	// Command line flags
	var (
		batchSize = flag.Int("batch-size", 100, "Number of records to process in a batch")
		dryRun    = flag.Bool("dry-run", false, "Report drift without writing corrections")
		timeout   = flag.Duration("timeout", 30*time.Minute, "Maximum time to run reconciliation")
		entity    = flag.String("entity", "all", "Aggregate to reconcile: all, followers, ratings, pending_legs")
	)
	flag.Parse()

	// Initialize logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slogger := slog.New(logHandler)
	slog.SetDefault(slogger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slogger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var aggregates []string
	switch *entity {
	case "all":
		aggregates = []string{service.AggregateFollowers, service.AggregateRatings, service.AggregatePendingLegs}
	case service.AggregateFollowers, service.AggregateRatings, service.AggregatePendingLegs:
		aggregates = []string{*entity}
	default:
		slogger.Error("unknown aggregate", "entity", *entity)
		os.Exit(1)
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	a, err := app.New(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	// Configure the reconciliation service
	a.Reconciliation.SetBatchSize(*batchSize)
	a.Reconciliation.SetDryRun(*dryRun)

	slogger.Info("reconciling aggregates", "aggregates", aggregates, "dry_run", *dryRun)
	report, err := a.Reconciliation.Reconcile(ctx, aggregates...)
	if err != nil {
		slogger.Error("reconciliation failed", "error", err)
		a.Close()
		os.Exit(1)
	}

	slogger.Info("reconciliation completed successfully",
		"organizations", report.Organizations,
		"requests", report.Requests,
		"followers_fixed", report.FollowersFixed,
		"ratings_fixed", report.RatingsFixed,
		"pending_legs_fixed", report.PendingLegsFixed,
		"dry_run", report.DryRun,
	)
}
