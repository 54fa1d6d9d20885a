package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskEventType names a task lifecycle transition.
type TaskEventType string

// Task lifecycle event types.
const (
	TaskCreated TaskEventType = "task.created"
	TaskUpdated TaskEventType = "task.updated"
	TaskDeleted TaskEventType = "task.deleted"
)

// TaskEvent records a completed mutation of a single task.
// It carries a snapshot of the classification fields at the time of the event.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Type     TaskEventType   `json:"type"`
	TaskID   string          `json:"task_id"`
	Priority domain.Priority `json:"priority"`
	Status   domain.Status   `json:"status"`

	// OccurredAt is when the event was created, in UTC
	OccurredAt time.Time `json:"occurred_at"`
}

// NewTaskEvent creates an event of eventType for task.
func NewTaskEvent(eventType TaskEventType, task *domain.Task) *TaskEvent {
	return &TaskEvent{
		ID:         uuid.New(),
		Type:       eventType,
		TaskID:     task.ID,
		Priority:   task.Priority,
		Status:     task.Status,
		OccurredAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *TaskEvent) error

// HandleEvent calls f.
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *TaskEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *TaskEvent) error
}
