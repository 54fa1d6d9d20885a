package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/taskboard-api/internal/platform/logger"
)

// InMemoryEventEmitter fans task events out to handlers in the order they
// were registered. Dispatch happens on the caller's goroutine.
type InMemoryEventEmitter struct {
	mu       sync.RWMutex
	handlers []EventHandler
	log      *slog.Logger
}

var _ EventEmitter = (*InMemoryEventEmitter)(nil)

// NewInMemoryEventEmitter returns an emitter with no handlers.
func NewInMemoryEventEmitter(log *slog.Logger) *InMemoryEventEmitter {
	if log == nil {
		log = slog.Default()
	}
	return &InMemoryEventEmitter{
		log: log.With(slog.String("component", "task_events")),
	}
}

// RegisterHandler subscribes h to every subsequent event.
func (e *InMemoryEventEmitter) RegisterHandler(h EventHandler) {
	e.mu.Lock()
	e.handlers = append(e.handlers, h)
	n := len(e.handlers)
	e.mu.Unlock()

	e.log.Debug("task event handler registered", slog.Int("handlers", n))
}

// EmitEvent hands event to each handler. A failing handler does not stop
// the rest; the first failure is returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *TaskEvent) error {
	e.mu.RLock()
	handlers := slices.Clone(e.handlers)
	e.mu.RUnlock()

	log := logger.FromContextOrDefault(ctx, e.log)

	var firstErr error
	for i, h := range handlers {
		err := h.HandleEvent(ctx, event)
		if err == nil {
			continue
		}
		log.Warn("task event handler failed",
			slog.String("event_type", string(event.Type)),
			slog.String("task_id", event.TaskID),
			slog.Int("handler", i),
			slog.Any("error", err))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
