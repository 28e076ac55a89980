package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"strings"
	"time"
)

// Client is a small HTTP client for probing a running server.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// NewClient creates a new HTTP client with the given options
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL for the client
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the timeout for the client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a header to every request
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// TimingInfo holds timing for one request.
type TimingInfo struct {
	StartTime       time.Time
	TimeToFirstByte time.Duration
	TotalTime       time.Duration
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Timing     TimingInfo
}

// Get issues GET baseURL+path and reads the whole body.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	timing := TimingInfo{StartTime: time.Now()}
	trace := &httptrace.ClientTrace{
		GotFirstResponseByte: func() {
			timing.TimeToFirstByte = time.Since(timing.StartTime)
		},
	}
	req = req.WithContext(httptrace.WithClientTrace(ctx, trace))

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	timing.TotalTime = time.Since(timing.StartTime)

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Timing:     timing,
	}, nil
}
