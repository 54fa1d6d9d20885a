package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// TaskStore implements the store.TaskStore interface
// using a mutex-guarded slice held in process memory.
// Tasks are kept in insertion order, which is the order List returns.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock overrides the time source used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewTaskStore creates an empty in-process TaskStore.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger, opts ...Option) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &TaskStore{
		now:    time.Now,
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task := domain.NewTask(input, s.now())

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	log.Debug("task created",
		slog.String("task_id", task.ID),
		slog.String("priority", string(task.Priority)),
		slog.String("status", string(task.Status)))

	return task.Clone(), nil
}

// List implements store.TaskStore.List.
// The returned tasks are copies in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		tasks[i] = t.Clone()
	}
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if no task has exactly this ID.
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task not found", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}
	return s.tasks[i].Clone(), nil
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if no task has exactly this ID.
func (s *TaskStore) Update(ctx context.Context, id string, input domain.TaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("task not found for update", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	task := s.tasks[i]
	task.Replace(input, s.now())

	log.Debug("task updated", slog.String("task_id", id))
	return task.Clone(), nil
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound if no task has exactly this ID.
func (s *TaskStore) Delete(ctx context.Context, id string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		log.Debug("task not found for delete", slog.String("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	task := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)

	log.Debug("task deleted", slog.String("task_id", id))
	return task, nil
}

// Aggregate implements store.TaskStore.Aggregate.
func (s *TaskStore) Aggregate(ctx context.Context) (domain.Analytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var a domain.Analytics
	for _, t := range s.tasks {
		a.Add(t)
	}
	return a, nil
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// indexOf must be called with s.mu held.
func (s *TaskStore) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
