// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It handles query execution, mapping between domain.Task and table rows,
// translating driver errors into store errors, and applying the embedded
// schema migrations with goose.
package postgres
