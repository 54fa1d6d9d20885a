package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// DBTX is the subset of *sql.DB and *sql.Tx used by the store, so a store can
// run against either a pooled connection or a caller-managed transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const taskColumns = `id, title, description, priority, status, created_at, updated_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     DBTX
	now    func() time.Time
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		now:    time.Now,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
// Check constraint failures are returned as a *store.StoreError wrapping store.ErrInvalidEntity.
func (s *PostgresTaskStore) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task := domain.NewTask(input, s.now())
	id, err := uuid.Parse(task.ID)
	if err != nil {
		return nil, store.NewStoreError("task", "create", "generated id is not a uuid", err)
	}

	query := `
		INSERT INTO tasks (id, title, description, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		id,
		task.Title,
		task.Description,
		string(task.Priority),
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID))
		return nil, wrapError("create", "failed to insert task", err)
	}

	log.Debug("task created",
		slog.String("task_id", task.ID),
		slog.String("priority", string(task.Priority)),
		slog.String("status", string(task.Status)))
	return task, nil
}

// List implements store.TaskStore.List.
// Tasks are ordered newest first; ties on created_at are broken by id.
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, wrapError("list", "failed to query tasks", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("task", "list", "failed to scan task", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", slog.String("error", err.Error()))
		return nil, wrapError("list", "failed to iterate tasks", err)
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// An id that is not a UUID cannot match any row and is reported as store.ErrTaskNotFound
// without querying the database.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	uid, ok := parseID(id)
	if !ok {
		log.Debug("task id is not a uuid", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		mapped := wrapError("get", "failed to fetch task", err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found", slog.String("task_id", id))
		} else {
			log.Error("failed to get task",
				slog.String("error", err.Error()),
				slog.String("task_id", id))
		}
		return nil, mapped
	}

	return task, nil
}

// Update implements store.TaskStore.Update.
// updated_at is set to the later of now and its previous value so it never regresses.
func (s *PostgresTaskStore) Update(ctx context.Context, id string, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	uid, ok := parseID(id)
	if !ok {
		log.Debug("task id is not a uuid", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	query := `
		UPDATE tasks
		SET title = $2, description = $3, priority = $4, status = $5,
		    updated_at = GREATEST($6::timestamptz, updated_at)
		WHERE id = $1
		RETURNING ` + taskColumns

	task, err := scanTask(s.db.QueryRowContext(
		ctx,
		query,
		uid,
		input.Title,
		input.Description,
		string(input.Priority),
		string(input.Status),
		domain.Timestamp(s.now()),
	))
	if err != nil {
		mapped := wrapError("update", "failed to update task", err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found for update", slog.String("task_id", id))
		} else {
			log.Error("failed to update task",
				slog.String("error", err.Error()),
				slog.String("task_id", id))
		}
		return nil, mapped
	}

	log.Debug("task updated", slog.String("task_id", id))
	return task, nil
}

// Delete implements store.TaskStore.Delete.
// The returned task is the row as it was before removal.
func (s *PostgresTaskStore) Delete(ctx context.Context, id string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	uid, ok := parseID(id)
	if !ok {
		log.Debug("task id is not a uuid", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	query := `DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns

	task, err := scanTask(s.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		mapped := wrapError("delete", "failed to delete task", err)
		if store.IsNotFoundError(mapped) {
			log.Debug("task not found for delete", slog.String("task_id", id))
		} else {
			log.Error("failed to delete task",
				slog.String("error", err.Error()),
				slog.String("task_id", id))
		}
		return nil, mapped
	}

	log.Debug("task deleted", slog.String("task_id", id))
	return task, nil
}

// Aggregate implements store.TaskStore.Aggregate.
// Both breakdowns are computed in a single scan of the table.
func (s *PostgresTaskStore) Aggregate(ctx context.Context) (domain.Analytics, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE priority = 'high'),
			COUNT(*) FILTER (WHERE priority = 'medium'),
			COUNT(*) FILTER (WHERE priority = 'low'),
			COUNT(*) FILTER (WHERE status = 'todo'),
			COUNT(*) FILTER (WHERE status = 'progress'),
			COUNT(*) FILTER (WHERE status = 'done')
		FROM tasks
	`

	var a domain.Analytics
	err := s.db.QueryRowContext(ctx, query).Scan(
		&a.ByPriority.High,
		&a.ByPriority.Medium,
		&a.ByPriority.Low,
		&a.ByStatus.Todo,
		&a.ByStatus.Progress,
		&a.ByStatus.Done,
	)
	if err != nil {
		log.Error("failed to aggregate tasks", slog.String("error", err.Error()))
		return domain.Analytics{}, store.NewStoreError("task", "aggregate", "failed to count tasks", MapError(err))
	}

	return a, nil
}

// parseID reports whether id is a canonical task id and returns its UUID form.
// Only the hyphenated 36-character form produced by NewTask is accepted, so
// lookup stays an exact string match.
func parseID(id string) (uuid.UUID, bool) {
	if len(id) != 36 {
		return uuid.Nil, false
	}
	uid, err := uuid.Parse(id)
	if err != nil || uid.String() != id {
		return uuid.Nil, false
	}
	return uid, true
}

// scanTask reads one row in taskColumns order into a domain.Task.
func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task     domain.Task
		id       uuid.UUID
		priority string
		status   string
	)

	if err := row.Scan(
		&id,
		&task.Title,
		&task.Description,
		&priority,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	task.ID = id.String()
	task.Priority = domain.Priority(priority)
	task.Status = domain.Status(status)
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()

	if !task.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}
	if !task.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	return &task, nil
}
