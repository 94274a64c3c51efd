// Package recommend provides the client for the project recommendation API.
package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/f3rmion/intelliproject/internal/project"
)

const (
	// DefaultEndpoint is the generate endpoint of a locally running backend.
	DefaultEndpoint = "http://127.0.0.1:8000/api/v1/generate"
	defaultTimeout  = 60 * time.Second

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 8 << 20
)

// FailureMessage is the only error text ever shown to the user.
const FailureMessage = "Failed to generate projects."

// ErrRequestFailed wraps every error returned by Client.Generate.
var ErrRequestFailed = errors.New("request failed")

// Recommender produces project recommendations for a form.
type Recommender interface {
	Generate(ctx context.Context, input project.FormInput) ([]project.Project, error)
}

// Client is a recommendation API client.
type Client struct {
	endpoint   string
	httpClient *http.Client

	timeout    time.Duration
	hasTimeout bool
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the client timeout. Zero disables it. The timeout is
// applied to a copy, so a client passed to WithHTTPClient is not modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		c.hasTimeout = true
	}
}

// NewClient creates a client that posts to endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.hasTimeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate posts input verbatim and returns the validated recommendations.
// Network errors, non-2xx statuses, timeouts and bodies that do not match the
// Project schema all wrap ErrRequestFailed.
func (c *Client) Generate(ctx context.Context, input project.FormInput) ([]project.Project, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fail(fmt.Errorf("marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fail(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail(fmt.Errorf("making request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fail(fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(&StatusError{Code: resp.StatusCode, Body: truncate(string(respBody), 200)})
	}

	projects, err := project.DecodeRecommendations(respBody)
	if err != nil {
		return nil, fail(err)
	}

	return projects, nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func fail(err error) error {
	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
