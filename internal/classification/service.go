package classification

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
)

// DefaultTimeout bounds a single remote classifier call.
const DefaultTimeout = 5 * time.Second

// Remote sends a description to an external classifier and returns the raw
// response body. Implementations return an error wrapping
// ErrClassificationUnavailable when the call cannot complete or the remote
// answers with a non-success status.
type Remote interface {
	Classify(ctx context.Context, description string) ([]byte, error)
}

// Service classifies task descriptions.
type Service struct {
	remote  Remote
	rules   []Rule
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithRules replaces DefaultRules.
func WithRules(rules []Rule) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

// NewService creates a Service. A nil remote means only the keyword rules
// are used. If logger is nil, a default logger will be used.
func NewService(remote Remote, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		remote:  remote,
		rules:   DefaultRules(),
		timeout: DefaultTimeout,
		logger:  logger.With(slog.String("component", "classification_service")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasRemote reports whether a remote classifier is configured.
func (s *Service) HasRemote() bool {
	return s.remote != nil
}

// Classify suggests a priority and status for description.
// It never fails: empty input, a missing remote, and every remote failure
// produce a result from the keyword rules.
func (s *Service) Classify(ctx context.Context, description string) domain.ClassificationResult {
	result, remote := s.classify(ctx, description)
	label := string(result.Source)
	if remote {
		label = "remote"
	}
	classificationsTotal.WithLabelValues(label).Inc()
	return result
}

// classify reports whether the result came from the remote classifier.
func (s *Service) classify(ctx context.Context, description string) (domain.ClassificationResult, bool) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return defaultResult(), false
	}
	if s.remote == nil {
		return applyRules(s.rules, trimmed), false
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	body, err := s.remote.Classify(callCtx, trimmed)
	if err == nil {
		var result domain.ClassificationResult
		result, err = ParseResponse(body)
		if err == nil {
			remoteLatency.WithLabelValues("success").Observe(time.Since(start).Seconds())
			log.Debug("remote classification succeeded",
				slog.String("priority", string(result.Priority)),
				slog.String("status", string(result.Status)),
				slog.String("source", string(result.Source)))
			return result, true
		}
	}
	remoteLatency.WithLabelValues("failure").Observe(time.Since(start).Seconds())

	reason := failureReason(callCtx, err)
	remoteFailuresTotal.WithLabelValues(reason).Inc()
	log.Warn("remote classification failed, using keyword rules",
		slog.String("reason", reason),
		slog.String("error", redact.Error(err)),
		slog.Duration("timeout", s.timeout))

	return applyRules(s.rules, trimmed), false
}

func failureReason(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, ErrInvalidResponse):
		return failureInvalid
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return failureTimeout
	default:
		return failureUnavailable
	}
}
