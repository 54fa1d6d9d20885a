package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// Classifier suggests a priority and status for a description.
// Implementations never fail.
type Classifier interface {
	Classify(ctx context.Context, description string) domain.ClassificationResult
}

// TaskService provides task-related operations.
// Create, Update and Classify accept the raw decoded request body and
// validate it before anything else happens.
type TaskService interface {
	// CreateTask validates raw and stores a new task.
	CreateTask(ctx context.Context, raw any) (*domain.Task, error)

	// ListTasks returns every task in the store's own order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// UpdateTask validates raw and replaces the task's mutable fields.
	UpdateTask(ctx context.Context, id string, raw any) (*domain.Task, error)

	// DeleteTask removes a task and returns it.
	DeleteTask(ctx context.Context, id string) (*domain.Task, error)

	// ClassifyTask validates raw and suggests a priority and status.
	ClassifyTask(ctx context.Context, raw any) (domain.ClassificationResult, error)

	// Analytics returns task counts by priority and status.
	Analytics(ctx context.Context) (domain.Analytics, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks      store.TaskStore
	analytics  *AnalyticsAggregator
	classifier Classifier
	emitter    events.EventEmitter
	logger     *slog.Logger
}

// Option configures optional TaskService collaborators.
type Option func(*taskServiceImpl)

// WithEventEmitter publishes a TaskEvent after every successful mutation.
func WithEventEmitter(emitter events.EventEmitter) Option {
	return func(s *taskServiceImpl) {
		s.emitter = emitter
	}
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	tasks store.TaskStore,
	classifier Classifier,
	logger *slog.Logger,
	opts ...Option,
) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
		}
	}
	if classifier == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "classifier cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		tasks:      tasks,
		analytics:  NewAnalyticsAggregator(tasks),
		classifier: classifier,
		logger:     logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// emit publishes a lifecycle event. A handler failure is logged and never
// fails the mutation, which has already been stored.
func (s *taskServiceImpl) emit(ctx context.Context, eventType events.TaskEventType, task *domain.Task) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.EmitEvent(ctx, events.NewTaskEvent(eventType, task)); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("failed to publish task event",
			slog.String("event_type", string(eventType)),
			slog.String("task_id", task.ID),
			slog.String("error", redact.Error(err)))
	}
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(ctx context.Context, raw any) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input, err := domain.ValidateTaskInput(raw)
	if err != nil {
		log.Debug("task validation failed", slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	task, err := s.tasks.Create(ctx, input)
	if err != nil {
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.emit(ctx, events.TaskCreated, task)
	log.Info("task created",
		slog.String("task_id", task.ID),
		slog.String("priority", string(task.Priority)),
		slog.String("status", string(task.Status)))
	return task, nil
}

// ListTasks implements TaskService.ListTasks.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", redact.Error(err)))
		return nil, NewTaskServiceError("list_tasks", "failed to fetch tasks", err)
	}
	return tasks, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
				slog.String("task_id", id),
				slog.String("error", redact.Error(err)))
		}
		return nil, NewTaskServiceError("get_task", "failed to fetch task", err)
	}
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask.
// Validation runs before the lookup, so an invalid body for a missing task
// is reported as a validation failure.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id string, raw any) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	input, err := domain.ValidateTaskInput(raw)
	if err != nil {
		log.Debug("task validation failed",
			slog.String("task_id", id),
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("update_task", "invalid task", err)
	}

	task, err := s.tasks.Update(ctx, id, input)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update task",
				slog.String("task_id", id),
				slog.String("error", redact.Error(err)))
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.emit(ctx, events.TaskUpdated, task)
	log.Info("task updated",
		slog.String("task_id", task.ID),
		slog.String("priority", string(task.Priority)),
		slog.String("status", string(task.Status)))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.Delete(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to delete task",
				slog.String("task_id", id),
				slog.String("error", redact.Error(err)))
		}
		return nil, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.emit(ctx, events.TaskDeleted, task)
	log.Info("task deleted", slog.String("task_id", id))
	return task, nil
}

// ClassifyTask implements TaskService.ClassifyTask.
// Only an invalid request body produces an error.
func (s *taskServiceImpl) ClassifyTask(ctx context.Context, raw any) (domain.ClassificationResult, error) {
	req, err := domain.ValidateClassifyRequest(raw)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("classify request validation failed",
			slog.String("error", err.Error()))
		return domain.ClassificationResult{}, NewTaskServiceError("classify_task", "invalid request", err)
	}

	return s.classifier.Classify(ctx, req.Description), nil
}

// Analytics implements TaskService.Analytics.
func (s *taskServiceImpl) Analytics(ctx context.Context) (domain.Analytics, error) {
	a, err := s.analytics.Analytics(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to aggregate tasks",
			slog.String("error", redact.Error(err)))
		return domain.Analytics{}, NewTaskServiceError("analytics", "failed to fetch analytics", err)
	}
	return a, nil
}
