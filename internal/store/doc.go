// Package store defines the persistence capability set for tasks.
// The TaskStore interface abstracts the underlying storage mechanism from
// the orchestration layer, so an in-process store and a durable database
// can be swapped at startup without changing any observable API behavior.
package store
