package classification

import (
	"strings"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

// Rule maps a set of keywords to a suggested priority and status.
type Rule struct {
	Keywords []string
	Priority domain.Priority
	Status   domain.Status
}

// Matches reports whether any keyword occurs in the lowercased description.
func (r Rule) Matches(lowered string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

// DefaultRules returns the keyword rules in evaluation order.
// The first matching rule wins.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"urgent", "critical", "outage", "bug", "failure"},
			Priority: domain.PriorityHigh,
			Status:   domain.StatusProgress,
		},
		{
			Keywords: []string{"investigate", "implement", "draft", "design", "review"},
			Priority: domain.PriorityMedium,
			Status:   domain.StatusProgress,
		},
		{
			Keywords: []string{"cleanup", "refactor", "document", "research"},
			Priority: domain.PriorityLow,
			Status:   domain.StatusTodo,
		},
	}
}

// defaultResult is returned when no rule matches.
func defaultResult() domain.ClassificationResult {
	return domain.ClassificationResult{
		Priority: domain.DefaultPriority,
		Status:   domain.DefaultStatus,
		Source:   domain.SourceFallbackDefault,
	}
}

// Fallback classifies description with DefaultRules.
func Fallback(description string) domain.ClassificationResult {
	return applyRules(DefaultRules(), description)
}

func applyRules(rules []Rule, description string) domain.ClassificationResult {
	lowered := strings.ToLower(strings.TrimSpace(description))
	if lowered == "" {
		return defaultResult()
	}

	for _, r := range rules {
		if r.Matches(lowered) {
			return domain.ClassificationResult{
				Priority: r.Priority,
				Status:   r.Status,
				Source:   domain.SourceFallback,
			}
		}
	}
	return defaultResult()
}
