package store

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Every implementation must satisfy identical pre- and post-conditions so the
// orchestrator cannot observe which one is active. The shared behavioral
// suite in package storetest encodes this contract.
type TaskStore interface {
	// Create assigns a fresh unique ID, sets CreatedAt = UpdatedAt = now,
	// stores the task and returns it.
	// Backend failures are returned as *StoreError.
	Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error)

	// List returns every stored task. The order is implementation-specific
	// but stable across calls for the same implementation.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by exact ID match.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Update replaces title, description, priority and status of an existing
	// task, leaves CreatedAt unchanged and advances UpdatedAt.
	// Returns ErrTaskNotFound if the task does not exist; it never creates one.
	Update(ctx context.Context, id string, input domain.TaskInput) (*domain.Task, error)

	// Delete removes a task and returns it as it was before removal.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) (*domain.Task, error)

	// Aggregate counts every stored task once by priority and once by status.
	// It is computed fresh on every call.
	Aggregate(ctx context.Context) (domain.Analytics, error)
}
