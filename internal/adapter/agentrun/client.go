// Package agentrun provides the HTTP client for the agent execution backend.
package agentrun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ich-youness/Financial-Services-OS/internal/port/executor"
	"github.com/ich-youness/Financial-Services-OS/internal/resilience"
)

// Client posts agent runs to the execution backend endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	breaker    *resilience.Breaker
	pool       *resilience.Pool
}

// NewClient creates a client for the given execution endpoint URL.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBreaker attaches a circuit breaker to all outgoing HTTP calls.
func (c *Client) SetBreaker(b *resilience.Breaker) {
	c.breaker = b
}

// SetPool caps the number of concurrent calls to the backend.
func (c *Client) SetPool(p *resilience.Pool) {
	c.pool = p
}

// Execute posts the run request and returns the normalized output text.
func (c *Client) Execute(ctx context.Context, req executor.Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal run request: %w", err)
	}

	data, err := c.doRequest(ctx, body)
	if err != nil {
		return "", err
	}
	return Normalize(data), nil
}

func (c *Client) doRequest(ctx context.Context, body []byte) ([]byte, error) {
	var result []byte
	err := c.pool.Run(ctx, func() error {
		return c.guarded(ctx, body, &result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) guarded(ctx context.Context, body []byte, result *[]byte) error {
	call := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("http request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode >= 400 {
			return fmt.Errorf("executor API error %d: %s", resp.StatusCode, string(data))
		}

		*result = data
		return nil
	}

	if c.breaker != nil {
		return c.breaker.Execute(call)
	}
	return call()
}
