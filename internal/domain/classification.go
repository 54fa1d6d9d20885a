package domain

// ClassificationSource tags where a ClassificationResult came from.
type ClassificationSource string

// Known provenance tags. A remote classifier may report its own source
// string, which is passed through unchanged.
const (
	// SourceClassifier marks a result produced by the remote classifier.
	SourceClassifier ClassificationSource = "classifier"

	// SourceFallback marks a result produced by a matching local keyword rule.
	SourceFallback ClassificationSource = "fallback"

	// SourceFallbackDefault marks a local result where no keyword rule matched.
	SourceFallbackDefault ClassificationSource = "fallback-default"
)

// ClassificationResult is a suggested priority and status for a free-text
// description. It is transient and never persisted.
// Confidence scores are only present when the remote classifier supplied them.
type ClassificationResult struct {
	Priority           Priority             `json:"priority"`
	Status             Status               `json:"status"`
	Source             ClassificationSource `json:"source"`
	Confidence         *float64             `json:"confidence,omitempty"`
	PriorityConfidence *float64             `json:"priority_confidence,omitempty"`
	StatusConfidence   *float64             `json:"status_confidence,omitempty"`
}

// ClassifyRequest is the validated body of a classification request.
type ClassifyRequest struct {
	Description string
}
