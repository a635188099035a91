package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/logger"
	"menu-manager/core/storage"
	"menu-manager/feature/menu"
	menusync "menu-manager/feature/menu/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncCSVPath string
	dryRunSync  bool
	yesConfirm  bool
)

// syncCmd pushes the menu spreadsheet into the document store.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the menu spreadsheet into the document store",
	Long: `Sync reads the menu CSV, resolves item images against the storage
bucket, and fully replaces the catalog in the document store.

The replace is clear-then-write and not transactional: the existing catalog
is deleted before the new one is written. Do not run two syncs at once.

Examples:
  # Full sync (with interactive confirmation)
  menu-manager sync

  # Non-interactive (cron, CI)
  menu-manager sync --yes

  # Build and report without touching the store
  menu-manager sync --dry-run

  # Use a different spreadsheet export
  menu-manager sync --csv ./exports/menu-2026-08.csv`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncCSVPath, "csv", "", "Path to the menu CSV (default from config)")
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Build and report the catalog without touching the store")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the destructive replace (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting menu sync")

	csvPath := syncCSVPath
	if csvPath == "" {
		csvPath = cfg.Sync.CSVPath
	}

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	// Connect to the document store (skipped on dry-run)
	var repo menu.Repository
	if !dryRunSync {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Disconnect(context.Background(), db)

		repo = menu.NewMongoRepository(db, cfg.Sync.Collection, cfg.Sync.ItemsCollection)

		// The replace deletes everything first; make sure that is wanted.
		if !confirmDestructiveAction() {
			l.Warn("Sync cancelled by user. No changes were made.")
			return nil
		}
	}

	runner := &menusync.Runner{
		Client:   client,
		Bucket:   cfg.Storage.Bucket,
		Repo:     repo,
		Resolver: menu.NewResolver(client, cfg.Storage.Bucket, cfg.Storage.SignedURLExpiry()),
		Logger:   l,
	}

	summary, err := runner.Run(ctx, csvPath, dryRunSync)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	l.Info("Sync summary",
		zap.Int("storage_objects", summary.Objects),
		zap.Int("rows", summary.Rows),
		zap.Int("categories", summary.Categories),
		zap.Int("items", summary.Items),
		zap.Int("deleted_categories", summary.Deleted),
		zap.Bool("dry_run", summary.DryRun),
	)
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  This replaces the whole catalog. Type 'yes' to continue: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
