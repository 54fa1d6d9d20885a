package classification

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// ParseResponse converts a remote classifier payload into a result.
// The payload must be a JSON object. Missing or non-string priority, status
// and source fall back to medium, todo and "classifier"; confidence fields
// are kept only when they are numbers.
func ParseResponse(body []byte) (domain.ClassificationResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.ClassificationResult{}, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidResponse)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return domain.ClassificationResult{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	result := domain.ClassificationResult{
		Priority: domain.DefaultPriority,
		Status:   domain.DefaultStatus,
		Source:   domain.SourceClassifier,
	}
	if s, ok := stringField(fields, "priority"); ok {
		result.Priority = domain.Priority(s)
	}
	if s, ok := stringField(fields, "status"); ok {
		result.Status = domain.Status(s)
	}
	if s, ok := stringField(fields, "source"); ok {
		result.Source = domain.ClassificationSource(s)
	}
	result.Confidence = numberField(fields, "confidence")
	result.PriorityConfidence = numberField(fields, "priority_confidence")
	result.StatusConfidence = numberField(fields, "status_confidence")

	return result, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

func numberField(fields map[string]json.RawMessage, key string) *float64 {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return f
}
