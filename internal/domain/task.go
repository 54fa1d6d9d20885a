package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the urgency of a task.
type Priority string

// Valid priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is applied when an input omits the priority.
const DefaultPriority = PriorityMedium

// Priorities returns every accepted priority in display order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid reports whether p is one of the enumerated priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status is the workflow state of a task.
type Status string

// Valid statuses.
const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

// DefaultStatus is applied when an input omits the status.
const DefaultStatus = StatusTodo

// Statuses returns every accepted status in workflow order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusProgress, StatusDone}
}

// IsValid reports whether s is one of the enumerated statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusDone:
		return true
	}
	return false
}

// Task is the persisted unit of work.
// ID is opaque to callers; CreatedAt is set once and UpdatedAt is refreshed
// on every mutation.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskInput is the normalized set of mutable task fields produced by
// ValidateTaskInput. Every field is populated and defaults are applied,
// so a storage backend never sees partially-defaulted input.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	Status      Status
}

// Timestamp normalizes t to the precision every storage backend can
// represent: UTC with microsecond resolution.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NewTask builds a Task from validated input, assigning a fresh ID and
// setting CreatedAt and UpdatedAt to now.
func NewTask(input TaskInput, now time.Time) *Task {
	ts := Timestamp(now)
	return &Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// Replace overwrites every mutable field with input and advances UpdatedAt.
// CreatedAt is untouched. UpdatedAt never moves backwards, even if the
// clock does.
func (t *Task) Replace(input TaskInput, now time.Time) {
	t.Title = input.Title
	t.Description = input.Description
	t.Priority = input.Priority
	t.Status = input.Status

	ts := Timestamp(now)
	if ts.After(t.UpdatedAt) {
		t.UpdatedAt = ts
	}
}

// Clone returns a copy of the task that shares no state with the original.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
