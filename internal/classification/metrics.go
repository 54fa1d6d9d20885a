package classification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Remote failure classes used as metric labels and log attributes.
const (
	failureTimeout     = "timeout"
	failureUnavailable = "unavailable"
	failureInvalid     = "invalid_response"
)

var (
	// classificationsTotal counts classify calls by the source of the result.
	// Labels: source (remote, fallback, fallback-default)
	classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskboard",
		Subsystem: "classification",
		Name:      "results_total",
		Help:      "Total classification results by source",
	}, []string{"source"})

	// remoteFailuresTotal counts remote classifier calls that fell back.
	// Labels: reason (timeout, unavailable, invalid_response)
	remoteFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskboard",
		Subsystem: "classification",
		Name:      "remote_failures_total",
		Help:      "Total remote classifier failures that resolved to the local rules",
	}, []string{"reason"})

	// remoteLatency measures remote classifier round trips.
	// Labels: outcome (success, failure)
	remoteLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taskboard",
		Subsystem: "classification",
		Name:      "remote_latency_seconds",
		Help:      "Remote classifier call latency in seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"outcome"})
)
