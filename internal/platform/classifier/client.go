// Package classifier is the HTTP client for the remote task classifier.
// It implements classification.Remote.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/classification"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// request is the JSON body sent to the remote classifier.
type request struct {
	Description string `json:"description"`
}

// Client posts descriptions to a remote classifier endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for endpoint. If httpClient is nil,
// http.DefaultClient is used; the per-call deadline comes from the context.
// If logger is nil, a default logger will be used.
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) *Client {
	if endpoint == "" {
		panic("endpoint cannot be empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "classifier_client")),
	}
}

// Ensure Client implements classification.Remote interface
var _ classification.Remote = (*Client)(nil)

// Classify implements classification.Remote.
// Transport failures and non-2xx responses are returned wrapping
// classification.ErrClassificationUnavailable. The body of a 2xx response is
// returned as-is for the caller to parse.
func (c *Client) Classify(ctx context.Context, description string) ([]byte, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	payload, err := json.Marshal(request{Description: description})
	if err != nil {
		return nil, fmt.Errorf("failed to encode classifier request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", classification.ErrClassificationUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", classification.ErrClassificationUnavailable, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Debug("failed to close classifier response body", slog.String("error", cerr.Error()))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", classification.ErrClassificationUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(
			"%w: classifier responded with status %d",
			classification.ErrClassificationUnavailable,
			resp.StatusCode,
		)
	}

	log.Debug("classifier responded",
		slog.Int("status_code", resp.StatusCode),
		slog.Int("body_bytes", len(body)))
	return body, nil
}
