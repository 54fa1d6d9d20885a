// Package memory provides the in-process implementation of store.TaskStore.
// Tasks live only as long as the TaskStore value that holds them; nothing is
// persisted across restarts.
package memory
