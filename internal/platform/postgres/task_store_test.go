//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/memory"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/phrazzld/taskboard-api/internal/store/storetest"
	"github.com/phrazzld/taskboard-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresTaskStoreContract(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	storetest.RunTaskStoreTests(t, func(t *testing.T) store.TaskStore {
		testdb.ResetTasks(t, db)
		return postgres.NewPostgresTaskStore(db, nil)
	})
}

func TestPostgresMatchesMemoryStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.ResetTasks(t, db)

	durableAnalytics, durableSnapshot := storetest.RunScript(t, postgres.NewPostgresTaskStore(db, nil))
	memoryAnalytics, memorySnapshot := storetest.RunScript(t, memory.NewTaskStore(nil))

	assert.Equal(t, memoryAnalytics, durableAnalytics)
	assert.Equal(t, memorySnapshot, durableSnapshot)
}

func TestPostgresTaskStore_ListNewestFirst(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.ResetTasks(t, db)

	s := postgres.NewPostgresTaskStore(db, nil)
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"oldest", "middle", "newest"} {
		task, err := s.Create(ctx, storetest.Input(title, domain.PriorityLow, domain.StatusTodo))
		require.NoError(t, err)
		ids = append(ids, task.ID)
		// created_at has microsecond resolution
		time.Sleep(2 * time.Millisecond)
	}

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, storetest.IDs(tasks))
}

func TestPostgresTaskStore_WithinTransaction(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.ResetTasks(t, db)
	ctx := context.Background()

	var id string
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresTaskStore(tx, nil)
		task, err := s.Create(ctx, storetest.Input("rolled back", domain.PriorityHigh, domain.StatusTodo))
		require.NoError(t, err)
		id = task.ID

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "rolled back", got.Title)
	})

	_, err := postgres.NewPostgresTaskStore(db, nil).GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestPostgresTaskStore_CheckConstraint(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresTaskStore(tx, nil)
		_, err := s.Create(ctx, domain.TaskInput{Title: "bad", Priority: "extreme", Status: domain.StatusTodo})
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrStorage)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresTaskStore_NonCanonicalIDIsNotFound(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresTaskStore(tx, nil)
		task, err := s.Create(ctx, storetest.Input("case", domain.PriorityLow, domain.StatusTodo))
		require.NoError(t, err)

		for _, id := range []string{strings.ToUpper(task.ID), "{" + task.ID + "}", "urn:uuid:" + task.ID} {
			_, err = s.GetByID(ctx, id)
			assert.ErrorIs(t, err, store.ErrTaskNotFound, "id %q", id)
		}
	})
}

func TestMigrateStatusAndVersion(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	require.NoError(t, postgres.Migrate(ctx, db, "status", nil))
	require.NoError(t, postgres.Migrate(ctx, db, "version", nil))
}
