package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dangerclosesec/tounesna/internal/app"
	"github.com/dangerclosesec/tounesna/internal/config"
	"github.com/dangerclosesec/tounesna/internal/database"
	"github.com/dangerclosesec/tounesna/internal/service"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	configPath string
	verbose    bool
	timeout    time.Duration

	dryRun     bool
	aggregates []string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Maximum time for the command")

	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report drift without writing corrections")
	reconcileCmd.Flags().StringSliceVar(&aggregates, "aggregate",
		[]string{service.AggregateFollowers, service.AggregateRatings, service.AggregatePendingLegs},
		"Aggregates to reconcile")

	orgCmd.AddCommand(orgPendingCmd)
	orgCmd.AddCommand(orgApproveCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(orgCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "tounesnactl",
	Short: "tounesnactl administers a Tounesna deployment",
	Long:  `tounesnactl migrates the database, approves organizations and repairs denormalized counters.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			os.Setenv("TOUNESNA_CONFIG", configPath)
		}
	},
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func logger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// withApp runs fn against a fully wired application.
func withApp(fn func(ctx context.Context, a *app.App) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a, err := app.New(ctx, loadConfig(), logger())
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.Close()

	if err := fn(ctx, a); err != nil {
		a.Close()
		log.Fatalf("Error: %v", err)
	}
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if cfg.Database.Driver == "memory" {
			fmt.Println("Memory store needs no migration")
			return
		}

		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate: %v", err)
		}

		fmt.Printf("Schema migrated on %s\n", cfg.Database.Driver)
	},
}

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
}

var orgPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List organizations awaiting approval",
	Run: func(cmd *cobra.Command, args []string) {
		withApp(func(ctx context.Context, a *app.App) error {
			orgs, err := a.Auth.PendingOrganizations(ctx)
			if err != nil {
				return err
			}
			if len(orgs) == 0 {
				fmt.Println("No organizations awaiting approval")
				return nil
			}
			for _, org := range orgs {
				fmt.Printf("%s\t%s\t%s\t%s\n", org.ID, org.Name, org.Email, org.CreatedAt.Format(time.DateOnly))
			}
			return nil
		})
	},
}

var orgApproveCmd = &cobra.Command{
	Use:   "approve [id...]",
	Short: "Approve one or more organizations",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withApp(func(ctx context.Context, a *app.App) error {
			for _, id := range args {
				org, err := a.Auth.ApproveOrganization(ctx, id)
				if err != nil {
					return fmt.Errorf("approving %s: %w", id, err)
				}
				fmt.Printf("Approved %s (%s)\n", org.Name, org.ID)
			}
			return nil
		})
	},
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute denormalized counters from source records",
	Run: func(cmd *cobra.Command, args []string) {
		withApp(func(ctx context.Context, a *app.App) error {
			a.Reconciliation.SetDryRun(dryRun)
			report, err := a.Reconciliation.Reconcile(ctx, aggregates...)
			if err != nil {
				return err
			}

			mode := "fixed"
			if report.DryRun {
				mode = "drifted"
			}
			fmt.Printf("Checked %d organizations and %d requests\n", report.Organizations, report.Requests)
			fmt.Printf("  followers %s:    %d\n", mode, report.FollowersFixed)
			fmt.Printf("  ratings %s:      %d\n", mode, report.RatingsFixed)
			fmt.Printf("  pending legs %s: %d\n", mode, report.PendingLegsFixed)
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tounesnactl v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
