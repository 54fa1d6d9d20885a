// Package main implements the entry point for the taskboard API server,
// which stores tasks, suggests priorities and statuses for them, and reports
// task analytics.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./config.yaml if present)")
	migrateCmd := flag.String("migrate", "",
		fmt.Sprintf("run a database migration command and exit, one of %v", postgres.MigrationCommands))
	flag.Parse()

	if err := run(context.Background(), *configPath, *migrateCmd); err != nil {
		fmt.Fprintf(os.Stderr, "taskboard-api: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, and either executes a migration
// command or serves HTTP until shutdown.
func run(ctx context.Context, configPath, migrateCmd string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"durable_store", cfg.Database.Durable(),
		"remote_classifier", cfg.Classifier.URL != "")

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, migrateCmd, logger)
	}

	var db *sql.DB
	if cfg.Database.Durable() {
		db, err = setupAppDatabase(ctx, cfg, logger)
		if err != nil {
			return err
		}
		if err := postgres.Migrate(ctx, db, "up", logger); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
