package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/phrazzld/taskboard-api/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStoreContract(t *testing.T) {
	storetest.RunTaskStoreTests(t, func(t *testing.T) store.TaskStore {
		return memory.NewTaskStore(nil)
	})
}

// fakeClock returns a controllable time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func TestTaskStore_Timestamps(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.FixedZone("X", 3600))
	clock := &fakeClock{now: start}
	s := memory.NewTaskStore(nil, memory.WithClock(clock.Now))
	ctx := context.Background()

	task, err := s.Create(ctx, storetest.Input("clocked", domain.PriorityMedium, domain.StatusTodo))
	require.NoError(t, err)
	assert.Equal(t, domain.Timestamp(start), task.CreatedAt)
	assert.Equal(t, time.UTC, task.CreatedAt.Location())
	assert.Equal(t, 0, task.CreatedAt.Nanosecond()%1000, "microsecond precision")

	later := start.Add(time.Minute)
	clock.Set(later)
	updated, err := s.Update(ctx, task.ID, storetest.Input("clocked", domain.PriorityHigh, domain.StatusTodo))
	require.NoError(t, err)
	assert.Equal(t, domain.Timestamp(start), updated.CreatedAt)
	assert.Equal(t, domain.Timestamp(later), updated.UpdatedAt)

	// A clock that moves backwards must not move UpdatedAt backwards.
	clock.Set(start.Add(-time.Hour))
	again, err := s.Update(ctx, task.ID, storetest.Input("clocked", domain.PriorityLow, domain.StatusTodo))
	require.NoError(t, err)
	assert.Equal(t, domain.Timestamp(later), again.UpdatedAt)
}

func TestTaskStore_ListIsInsertionOrder(t *testing.T) {
	s := memory.NewTaskStore(nil)
	ctx := context.Background()

	var want []string
	for _, title := range []string{"first", "second", "third"} {
		task, err := s.Create(ctx, storetest.Input(title, domain.PriorityLow, domain.StatusTodo))
		require.NoError(t, err)
		want = append(want, task.ID)
	}

	_, err := s.Delete(ctx, want[1])
	require.NoError(t, err)

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{want[0], want[2]}, storetest.IDs(tasks))
	assert.Equal(t, 2, s.Len())
}

func TestTaskStore_ReturnsCopies(t *testing.T) {
	s := memory.NewTaskStore(nil)
	ctx := context.Background()

	created, err := s.Create(ctx, storetest.Input("original", domain.PriorityLow, domain.StatusTodo))
	require.NoError(t, err)
	created.Title = "mutated by caller"

	listed, err := s.List(ctx)
	require.NoError(t, err)
	listed[0].Status = domain.StatusDone

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestTaskStore_IndependentInstances(t *testing.T) {
	t.Parallel()

	a := memory.NewTaskStore(nil)
	b := memory.NewTaskStore(nil)
	ctx := context.Background()

	_, err := a.Create(ctx, storetest.Input("only in a", domain.PriorityHigh, domain.StatusTodo))
	require.NoError(t, err)

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestTaskStore_ConcurrentDeleteAndUpdate(t *testing.T) {
	s := memory.NewTaskStore(nil)
	ctx := context.Background()

	task, err := s.Create(ctx, storetest.Input("raced", domain.PriorityLow, domain.StatusTodo))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var updateErr, deleteErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, updateErr = s.Update(ctx, task.ID, storetest.Input("raced", domain.PriorityHigh, domain.StatusDone))
	}()
	go func() {
		defer wg.Done()
		_, deleteErr = s.Delete(ctx, task.ID)
	}()
	wg.Wait()

	// Either ordering is acceptable; the delete always wins in the end.
	require.NoError(t, deleteErr)
	if updateErr != nil {
		assert.ErrorIs(t, updateErr, store.ErrTaskNotFound)
	}
	assert.Equal(t, 0, s.Len())
}
