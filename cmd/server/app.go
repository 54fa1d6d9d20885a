package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/classification"
	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/platform/classifier"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when running on the in-memory store
	db *sql.DB

	taskStore    store.TaskStore
	classifier   *classification.Service
	eventEmitter *events.InMemoryEventEmitter
	taskService  service.TaskService
}

// newApplication wires the stores and services.
// A nil db selects the in-memory store; otherwise tasks are kept in Postgres.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	if db != nil {
		app.taskStore = postgres.NewPostgresTaskStore(db, logger)
		logger.Info("Using durable task store")
	} else {
		app.taskStore = memory.NewTaskStore(logger)
		logger.Info("Using ephemeral task store")
	}

	var remote classification.Remote
	if cfg.Classifier.URL != "" {
		remote = classifier.NewClient(
			cfg.Classifier.URL,
			&http.Client{Timeout: cfg.Classifier.Timeout()},
			logger,
		)
		logger.Info("Remote classifier configured",
			"timeout_ms", cfg.Classifier.TimeoutMS)
	} else {
		logger.Info("No remote classifier configured, using keyword rules only")
	}
	app.classifier = classification.NewService(remote, logger,
		classification.WithTimeout(cfg.Classifier.Timeout()))

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.MetricsHandler())

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.classifier, logger,
		service.WithEventEmitter(app.eventEmitter))
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
