package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the API root used when none is configured
	DefaultBaseURL = "https://gitlab.com/api/v4"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the User-Agent header sent with requests
	UserAgent = "gitlab-snippet/1.0"

	// TokenHeader carries the private token on every authenticated request
	TokenHeader = "PRIVATE-TOKEN"
)

// LevelTrace sits below slog.LevelDebug and gates full wire dumps.
const LevelTrace = slog.LevelDebug - 4

// Client is the GitLab API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     *slog.Logger
}

// ClientOption is a functional option for configuring the client
type ClientOption func(*Client)

// NewClient creates a new GitLab API client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger.Enabled(context.Background(), LevelTrace) {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.httpClient.Transport = &traceTransport{base: base, logger: c.logger}
	}

	return c
}

// WithToken sets the private token attached to every request
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithBaseURL sets a custom API root
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets the logger used for request logging and wire tracing
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// APIError represents an error returned by the GitLab API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// Request represents an API request
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do performs an API request
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	// Build URL
	reqURL, err := url.Parse(c.baseURL + "/" + strings.TrimPrefix(req.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}

	if req.Query != nil {
		reqURL.RawQuery = req.Query.Encode()
	}

	// Build request body
	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, reqURL.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	// Set headers
	httpReq.Header.Set("User-Agent", UserAgent)
	httpReq.Header.Set("Accept", "application/json")

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		httpReq.Header.Set(TokenHeader, c.token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logger.DebugContext(ctx, "sending request",
		"method", req.Method, "url", reqURL.Redacted())

	// Execute request
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	// Read response body
	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	c.logger.DebugContext(ctx, "received response",
		"status", httpResp.StatusCode, "bytes", len(respBody))

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	// Check for errors
	if httpResp.StatusCode >= 400 {
		return resp, parseAPIError(httpResp.StatusCode, respBody)
	}

	return resp, nil
}

// parseAPIError builds an APIError from an error response body. GitLab
// reports either {"message": ...} (string or object) or {"error": "..."}.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
	}

	var errResp struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		switch {
		case len(errResp.Message) > 0:
			var msg string
			if json.Unmarshal(errResp.Message, &msg) == nil && msg != "" {
				apiErr.Message = msg
			} else {
				apiErr.Message = string(errResp.Message)
			}
		case errResp.Error != "":
			apiErr.Message = errResp.Error
		}
	}

	return apiErr
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// ParseResponse parses a JSON response into the given type
func ParseResponse[T any](resp *Response) (T, error) {
	var result T
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return result, fmt.Errorf("could not parse response: %w", err)
	}
	return result, nil
}

// traceTransport dumps full requests and responses through the logger.
// It only ever wraps the transport when the trace level is enabled, so
// request semantics never depend on verbosity.
type traceTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func (t *traceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.logger.Log(req.Context(), LevelTrace, "http request", "dump", string(dump))
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		t.logger.Log(req.Context(), LevelTrace, "http response", "dump", string(dump))
	}

	return resp, nil
}
