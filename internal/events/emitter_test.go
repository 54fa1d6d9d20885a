package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// MockEventHandler records the events it receives.
type MockEventHandler struct {
	mu           sync.Mutex
	HandledCount int
	LastEvent    *TaskEvent
	HandlerError error
}

func (m *MockEventHandler) HandleEvent(_ context.Context, event *TaskEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HandledCount++
	m.LastEvent = event
	return m.HandlerError
}

func sampleTask() *domain.Task {
	return &domain.Task{
		ID:       "11111111-1111-1111-1111-111111111111",
		Title:    "Ship release",
		Priority: domain.PriorityHigh,
		Status:   domain.StatusProgress,
	}
}

func TestNewTaskEvent(t *testing.T) {
	before := time.Now().UTC()
	event := NewTaskEvent(TaskUpdated, sampleTask())

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TaskUpdated, event.Type)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", event.TaskID)
	assert.Equal(t, domain.PriorityHigh, event.Priority)
	assert.Equal(t, domain.StatusProgress, event.Status)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
	assert.False(t, event.OccurredAt.Before(before))

	other := NewTaskEvent(TaskUpdated, sampleTask())
	assert.NotEqual(t, event.ID, other.ID)
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		assert.NoError(t, emitter.EmitEvent(context.Background(), NewTaskEvent(TaskCreated, sampleTask())))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := NewTaskEvent(TaskCreated, sampleTask())
		require.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Same(t, event, handler1.LastEvent)
		assert.Same(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		failingHandler := &MockEventHandler{HandlerError: errors.New("handler error")}
		successHandler := &MockEventHandler{}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		err := emitter.EmitEvent(context.Background(), NewTaskEvent(TaskDeleted, sampleTask()))
		require.Error(t, err)
		assert.Equal(t, "handler error", err.Error())

		assert.Equal(t, 1, failingHandler.HandledCount)
		assert.Equal(t, 1, successHandler.HandledCount, "later handlers still run")
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)
		assert.NoError(t, emitter.EmitEvent(context.Background(), NewTaskEvent(TaskCreated, sampleTask())))
	})
}

func TestMetricsHandler(t *testing.T) {
	counter := taskEventsTotal.WithLabelValues(string(TaskDeleted))
	before := testutil.ToFloat64(counter)

	handler := MetricsHandler()
	require.NoError(t, handler.HandleEvent(context.Background(), NewTaskEvent(TaskDeleted, sampleTask())))
	require.NoError(t, handler.HandleEvent(context.Background(), NewTaskEvent(TaskDeleted, sampleTask())))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
