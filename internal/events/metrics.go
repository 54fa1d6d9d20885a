package events

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var taskEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "taskboard",
		Subsystem: "tasks",
		Name:      "events_total",
		Help:      "Task lifecycle events by type.",
	},
	[]string{"type"},
)

// MetricsHandler counts every event it receives by type.
func MetricsHandler() EventHandler {
	return EventHandlerFunc(func(_ context.Context, event *TaskEvent) error {
		taskEventsTotal.WithLabelValues(string(event.Type)).Inc()
		return nil
	})
}
