package service

import (
	"context"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// AnalyticsAggregator reports task counts by priority and status.
// It is a direct pass-through to store.TaskStore.Aggregate.
type AnalyticsAggregator struct {
	store store.TaskStore
}

// NewAnalyticsAggregator creates an AnalyticsAggregator over s.
func NewAnalyticsAggregator(s store.TaskStore) *AnalyticsAggregator {
	if s == nil {
		panic("store cannot be nil")
	}
	return &AnalyticsAggregator{store: s}
}

// Analytics returns a freshly computed breakdown of every stored task.
func (a *AnalyticsAggregator) Analytics(ctx context.Context) (domain.Analytics, error) {
	return a.store.Aggregate(ctx)
}
