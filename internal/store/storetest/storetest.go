// Package storetest provides the behavioral contract every store.TaskStore
// implementation must satisfy. Both the in-process store and the durable
// store run the same suite, which is what guarantees that swapping one for
// the other at startup is invisible to API callers.
package storetest

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a new, empty store. It is called once per subtest.
type Factory func(t *testing.T) store.TaskStore

// TestTimeout bounds every store call made by the suite.
const TestTimeout = 10 * time.Second

// RunTaskStoreTests runs the full TaskStore contract against stores built by newStore.
func RunTaskStoreTests(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("create_then_get_returns_equal_task", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		input := domain.TaskInput{
			Title:       "Write docs",
			Description: "Document the API",
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusTodo,
		}
		created, err := s.Create(ctx, input)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, input.Title, created.Title)
		assert.Equal(t, input.Description, created.Description)
		assert.Equal(t, input.Priority, created.Priority)
		assert.Equal(t, input.Status, created.Status)
		assert.False(t, created.CreatedAt.IsZero())
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt), "createdAt and updatedAt start equal")

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		AssertSameTask(t, created, got)
	})

	t.Run("create_assigns_unique_ids", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			task, err := s.Create(ctx, Input("task", domain.PriorityMedium, domain.StatusTodo))
			require.NoError(t, err)
			assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
			seen[task.ID] = true
		}
	})

	t.Run("get_unknown_id_is_not_found", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		created, err := s.Create(ctx, Input("exists", domain.PriorityLow, domain.StatusTodo))
		require.NoError(t, err)

		for _, id := range []string{uuid.NewString(), "does-not-exist", "", created.ID[:8]} {
			_, err := s.GetByID(ctx, id)
			assert.ErrorIs(t, err, store.ErrTaskNotFound, "id %q", id)
		}
	})

	t.Run("update_replaces_fields_and_keeps_created_at", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		created, err := s.Create(ctx, domain.TaskInput{
			Title:       "to update",
			Description: "original",
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusTodo,
		})
		require.NoError(t, err)

		replacement := domain.TaskInput{
			Title:       "updated",
			Description: "",
			Priority:    domain.PriorityLow,
			Status:      domain.StatusDone,
		}
		updated, err := s.Update(ctx, created.ID, replacement)
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "updated", updated.Title)
		assert.Equal(t, "", updated.Description)
		assert.Equal(t, domain.PriorityLow, updated.Priority)
		assert.Equal(t, domain.StatusDone, updated.Status)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "createdAt must not change")
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt), "updatedAt must not regress")

		got, err := s.GetByID(ctx, created.ID)
		require.NoError(t, err)
		AssertSameTask(t, updated, got)
	})

	t.Run("repeated_updates_never_regress_updated_at", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		task, err := s.Create(ctx, Input("counter", domain.PriorityMedium, domain.StatusTodo))
		require.NoError(t, err)

		prev := task.UpdatedAt
		for i := 0; i < 5; i++ {
			task, err = s.Update(ctx, task.ID, Input("counter", domain.PriorityMedium, domain.StatusProgress))
			require.NoError(t, err)
			assert.False(t, task.UpdatedAt.Before(prev))
			prev = task.UpdatedAt
		}
	})

	t.Run("update_unknown_id_is_not_found_and_does_not_upsert", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		_, err := s.Update(ctx, uuid.NewString(), Input("ghost", domain.PriorityHigh, domain.StatusTodo))
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		_, err = s.Update(ctx, "not-a-real-id", Input("ghost", domain.PriorityHigh, domain.StatusTodo))
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		tasks, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("delete_returns_task_then_not_found", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		keep, err := s.Create(ctx, Input("keep", domain.PriorityLow, domain.StatusTodo))
		require.NoError(t, err)
		doomed, err := s.Create(ctx, Input("to delete", domain.PriorityHigh, domain.StatusDone))
		require.NoError(t, err)

		deleted, err := s.Delete(ctx, doomed.ID)
		require.NoError(t, err)
		AssertSameTask(t, doomed, deleted)

		_, err = s.GetByID(ctx, doomed.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		_, err = s.Delete(ctx, doomed.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		_, err = s.Delete(ctx, "not-a-real-id")
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		tasks, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, keep.ID, tasks[0].ID)
	})

	t.Run("list_returns_every_task_in_a_stable_order", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		empty, err := s.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		var want []string
		for _, title := range []string{"a", "b", "c", "d"} {
			task, err := s.Create(ctx, Input(title, domain.PriorityMedium, domain.StatusTodo))
			require.NoError(t, err)
			want = append(want, task.ID)
		}

		first, err := s.List(ctx)
		require.NoError(t, err)
		second, err := s.List(ctx)
		require.NoError(t, err)

		assert.ElementsMatch(t, want, IDs(first))
		assert.Equal(t, IDs(first), IDs(second), "order must be consistent across calls")
	})

	t.Run("aggregate_empty_store", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		got, err := s.Aggregate(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Analytics{}, got)
	})

	t.Run("aggregate_matches_list", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		for _, p := range domain.Priorities() {
			for _, st := range domain.Statuses() {
				_, err := s.Create(ctx, Input(string(p)+"/"+string(st), p, st))
				require.NoError(t, err)
			}
		}
		_, err := s.Create(ctx, Input("extra", domain.PriorityHigh, domain.StatusDone))
		require.NoError(t, err)

		got, err := s.Aggregate(ctx)
		require.NoError(t, err)

		tasks, err := s.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, CountTasks(tasks), got)
		assert.Equal(t, len(tasks), got.PriorityTotal())
		assert.Equal(t, len(tasks), got.StatusTotal())
		assert.Equal(t, len(domain.Statuses())+1, got.ByPriority.High)
		assert.Equal(t, len(domain.Priorities())+1, got.ByStatus.Done)
		assert.Equal(t, len(domain.Statuses()), got.ByPriority.Low)
		assert.Equal(t, len(domain.Priorities()), got.ByStatus.Todo)
	})

	t.Run("aggregate_reflects_mutations", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		task, err := s.Create(ctx, Input("moving", domain.PriorityLow, domain.StatusTodo))
		require.NoError(t, err)

		before, err := s.Aggregate(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, before.ByPriority.Low)
		assert.Equal(t, 1, before.ByStatus.Todo)

		_, err = s.Update(ctx, task.ID, Input("moving", domain.PriorityHigh, domain.StatusDone))
		require.NoError(t, err)

		after, err := s.Aggregate(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityCounts{High: 1}, after.ByPriority)
		assert.Equal(t, domain.StatusCounts{Done: 1}, after.ByStatus)

		_, err = s.Delete(ctx, task.ID)
		require.NoError(t, err)

		final, err := s.Aggregate(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Analytics{}, final)
	})

	t.Run("concurrent_mutations_stay_consistent", func(t *testing.T) {
		s := newStore(t)
		ctx := testContext(t)

		const workers = 8
		const perWorker = 5

		var wg sync.WaitGroup
		errs := make(chan error, workers*perWorker*2)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					task, err := s.Create(ctx, Input("concurrent", domain.PriorityLow, domain.StatusTodo))
					if err != nil {
						errs <- err
						continue
					}
					if _, err := s.Update(ctx, task.ID, Input("concurrent", domain.PriorityHigh, domain.StatusDone)); err != nil {
						errs <- err
					}
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		tasks, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, tasks, workers*perWorker)

		got, err := s.Aggregate(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityCounts{High: workers * perWorker}, got.ByPriority)
		assert.Equal(t, domain.StatusCounts{Done: workers * perWorker}, got.ByStatus)
	})

	t.Run("script_produces_expected_state", func(t *testing.T) {
		s := newStore(t)

		analytics, snapshot := RunScript(t, s)
		assert.Equal(t, ExpectedScriptAnalytics, analytics)
		assert.Equal(t, ExpectedScriptSnapshot, snapshot)
	})
}

// Input is a shorthand for building a TaskInput.
func Input(title string, p domain.Priority, s domain.Status) domain.TaskInput {
	return domain.TaskInput{Title: title, Priority: p, Status: s}
}

// IDs extracts task IDs in order.
func IDs(tasks []*domain.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

// CountTasks computes the analytics breakdown directly from a task list.
func CountTasks(tasks []*domain.Task) domain.Analytics {
	var a domain.Analytics
	for _, t := range tasks {
		a.Add(t)
	}
	return a
}

// AssertSameTask compares every field, using time equality for timestamps
// so that location differences introduced by a driver do not matter.
func AssertSameTask(t *testing.T, want, got *domain.Task) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Priority, got.Priority)
	assert.Equal(t, want.Status, got.Status)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "createdAt: want %s, got %s", want.CreatedAt, got.CreatedAt)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updatedAt: want %s, got %s", want.UpdatedAt, got.UpdatedAt)
}

// Snapshot is the backend-independent view of a stored task: everything
// but the ID and timestamps.
type Snapshot struct {
	Title       string
	Description string
	Priority    domain.Priority
	Status      domain.Status
}

// RunScript applies a fixed sequence of creates, updates and deletes and
// returns the resulting aggregate together with the remaining tasks as
// snapshots sorted by title. Two stores given the same script must return
// identical values.
func RunScript(t *testing.T, s store.TaskStore) (domain.Analytics, []Snapshot) {
	t.Helper()
	ctx := testContext(t)

	ids := make(map[string]string)
	create := func(title string, p domain.Priority, st domain.Status) {
		task, err := s.Create(ctx, domain.TaskInput{Title: title, Description: title + " details", Priority: p, Status: st})
		require.NoError(t, err)
		ids[title] = task.ID
	}

	create("outage", domain.PriorityHigh, domain.StatusProgress)
	create("design", domain.PriorityMedium, domain.StatusProgress)
	create("cleanup", domain.PriorityLow, domain.StatusTodo)
	create("note", domain.PriorityMedium, domain.StatusTodo)
	create("release", domain.PriorityHigh, domain.StatusTodo)

	_, err := s.Update(ctx, ids["outage"], domain.TaskInput{Title: "outage", Description: "resolved", Priority: domain.PriorityHigh, Status: domain.StatusDone})
	require.NoError(t, err)
	_, err = s.Update(ctx, ids["note"], domain.TaskInput{Title: "note", Priority: domain.PriorityLow, Status: domain.StatusTodo})
	require.NoError(t, err)
	_, err = s.Delete(ctx, ids["design"])
	require.NoError(t, err)
	_, err = s.Update(ctx, ids["design"], domain.TaskInput{Title: "design", Priority: domain.PriorityHigh, Status: domain.StatusDone})
	require.ErrorIs(t, err, store.ErrTaskNotFound)

	analytics, err := s.Aggregate(ctx)
	require.NoError(t, err)

	tasks, err := s.List(ctx)
	require.NoError(t, err)

	snapshot := make([]Snapshot, 0, len(tasks))
	for _, task := range tasks {
		snapshot = append(snapshot, Snapshot{
			Title:       task.Title,
			Description: task.Description,
			Priority:    task.Priority,
			Status:      task.Status,
		})
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].Title < snapshot[j].Title })

	return analytics, snapshot
}

// ExpectedScriptAnalytics is the aggregate RunScript must produce.
var ExpectedScriptAnalytics = domain.Analytics{
	ByPriority: domain.PriorityCounts{High: 2, Medium: 0, Low: 2},
	ByStatus:   domain.StatusCounts{Todo: 3, Progress: 0, Done: 1},
}

// ExpectedScriptSnapshot is the task set RunScript must leave behind.
var ExpectedScriptSnapshot = []Snapshot{
	{Title: "cleanup", Description: "cleanup details", Priority: domain.PriorityLow, Status: domain.StatusTodo},
	{Title: "note", Description: "", Priority: domain.PriorityLow, Status: domain.StatusTodo},
	{Title: "outage", Description: "resolved", Priority: domain.PriorityHigh, Status: domain.StatusDone},
	{Title: "release", Description: "release details", Priority: domain.PriorityHigh, Status: domain.StatusTodo},
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	t.Cleanup(cancel)
	return ctx
}
