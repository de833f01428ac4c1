package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Get(ctx context.Context, path string, headers map[string]string) (*http.Response, error)
	Post(ctx context.Context, path string, data interface{}, headers map[string]string) (*http.Response, error)
	GetJSON(ctx context.Context, path string, result interface{}, headers map[string]string) error
	PostJSON(ctx context.Context, path string, data interface{}, result interface{}, headers map[string]string) error
	Do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error)
	BaseURL() string
}

// Client represents an HTTP client with configurable settings
type Client struct {
	client     *http.Client
	baseURL    string
	headers    map[string]string
	timeout    time.Duration
	retryCount int
	logger     *slog.Logger
}

// New creates a new HTTP client with the provided options
func New(opts ...Option) HTTPClient {
	client := &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers:    make(map[string]string),
		timeout:    30 * time.Second,
		retryCount: 0,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.client.Timeout = client.timeout

	if client.headers == nil {
		client.headers = make(map[string]string)
	}

	return client
}

// Get performs an HTTP GET request
func (c *Client) Get(ctx context.Context, path string, headers map[string]string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, headers)
}

// Post performs an HTTP POST request with JSON data
func (c *Client) Post(ctx context.Context, path string, data interface{}, headers map[string]string) (*http.Response, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewBuffer(body), headers)
}

// do performs an HTTP request with the given method, path, and body
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Default headers are immutable after New, safe for concurrent use
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.logger != nil {
		c.logger.Info("HTTP request", "method", method, "url", url)
	}

	var resp *http.Response
	var lastErr error

	for i := 0; i <= c.retryCount; i++ {
		resp, lastErr = c.client.Do(req)
		if lastErr == nil {
			break
		}

		if i == c.retryCount {
			break
		}

		// Exponential backoff with a small jitter between attempts
		backoffDuration := time.Duration(1<<uint(i)) * time.Second
		jitter := time.Duration((i+1)*100) * time.Millisecond
		time.Sleep(backoffDuration + jitter)

		if c.logger != nil {
			c.logger.Info("Retrying HTTP request", "attempt", i+1, "error", lastErr.Error())
		}
	}

	if lastErr != nil {
		errMsg := fmt.Sprintf("request failed after %d retries", c.retryCount)
		if c.logger != nil {
			c.logger.Error(errMsg, "method", method, "url", url, "error", lastErr)
		}
		return nil, fmt.Errorf("%s: %w", errMsg, lastErr)
	}

	if c.logger != nil {
		c.logger.Info("HTTP response", "method", method, "url", url, "status", resp.Status)
	}

	return resp, nil
}

// decodeJSON reads a response body and unmarshals it into result
func (c *Client) decodeJSON(resp *http.Response, path string, result interface{}) error {
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Failed to read response body", "path", path, "error", err)
		}
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Error("HTTP request failed", "path", path, "status", resp.StatusCode, "body", string(body))
		}
		return fmt.Errorf("request failed with status: %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, result); err != nil {
		if c.logger != nil {
			c.logger.Error("Failed to unmarshal response", "path", path, "error", err)
		}
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// GetJSON performs a GET request and unmarshals the response into the provided interface
func (c *Client) GetJSON(ctx context.Context, path string, result interface{}, headers map[string]string) error {
	resp, err := c.Get(ctx, path, headers)
	if err != nil {
		return err
	}
	return c.decodeJSON(resp, path, result)
}

// PostJSON performs a POST request with JSON data and unmarshals the response into the provided interface
func (c *Client) PostJSON(ctx context.Context, path string, data interface{}, result interface{}, headers map[string]string) error {
	resp, err := c.Post(ctx, path, data, headers)
	if err != nil {
		return err
	}
	return c.decodeJSON(resp, path, result)
}

// Do performs an HTTP request with the given method, path, and body
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	return c.do(ctx, method, path, body, headers)
}

// BaseURL returns the base URL of the client
func (c *Client) BaseURL() string {
	return c.baseURL
}
