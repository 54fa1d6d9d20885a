package classification

import "github.com/prometheus/client_golang/prometheus"

// ClassificationResults exposes the result counter for tests.
func ClassificationResults(source string) prometheus.Counter {
	return classificationsTotal.WithLabelValues(source)
}
