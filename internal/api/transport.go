// Package api provides low-level HTTP transport for Signal Sciences API calls.
package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// maxRetries bounds the transport-level retry loop for every
	// outbound call, including the authentication POST.
	maxRetries = 5
)

// Transport handles HTTP communication with the Signal Sciences API.
// Retry behavior is configured per Transport instance; no process-wide
// HTTP state is touched.
type Transport struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	UserAgent  string
}

// NewTransport creates a Transport with the given configuration.
// The supplied http.Client (or a default one) is wrapped in a retrying
// client: up to 5 retries, with a backoff of retryCount seconds after a
// 429 response and an immediate retry for every other retryable failure.
func NewTransport(baseURL string, httpClient *http.Client, logger *slog.Logger) (*Transport, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultHTTPTimeout,
		}
	}

	return &Transport{
		BaseURL:    u,
		HTTPClient: newRetryingClient(httpClient, logger),
		UserAgent:  "go-sigsci/1.0",
	}, nil
}

// newRetryingClient wraps inner with the retry policy shared by all
// outbound calls.
func newRetryingClient(inner *http.Client, logger *slog.Logger) *http.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = inner
	rc.RetryMax = maxRetries
	rc.RetryWaitMin = 0
	rc.RetryWaitMax = time.Duration(maxRetries) * time.Second
	rc.CheckRetry = retryPolicy
	rc.Backoff = rateLimitBackoff
	// Hand the final response back for status classification instead of
	// swallowing it in a "giving up" error.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if logger != nil {
		rc.Logger = logger
	} else {
		rc.Logger = nil
	}
	return rc.StandardClient()
}

// retryPolicy retries transport failures, rate limiting, and server
// errors. Other statuses are returned for classification.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return true, nil
	}
	return false, nil
}

// rateLimitBackoff waits retryCount seconds after a 429 and retries
// immediately otherwise. attemptNum is zero-based, so the first retry
// after a 429 waits one second.
func rateLimitBackoff(_, _ time.Duration, attemptNum int, resp *http.Response) time.Duration {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return time.Duration(attemptNum+1) * time.Second
	}
	return 0
}

// Response represents a raw API response.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

// Get issues a GET request to the given path with a bearer token.
func (t *Transport) Get(ctx context.Context, path, token string, headers http.Header) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, t.BaseURL.JoinPath(path).String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.UserAgent)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	for k, vs := range headers {
		httpReq.Header[k] = vs
	}

	return t.do(httpReq)
}

// PostForm issues a POST request with a URL-encoded form body.
func (t *Transport) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	body := strings.NewReader(form.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL.JoinPath(path).String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.UserAgent)

	return t.do(httpReq)
}

func (t *Transport) do(httpReq *http.Request) (*Response, error) {
	httpResp, err := t.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	// Limit response body size to prevent memory exhaustion
	limitedReader := io.LimitReader(httpResp.Body, defaultMaxBodySize+1)
	respBody, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if int64(len(respBody)) > defaultMaxBodySize {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", defaultMaxBodySize)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Body:       respBody,
		Headers:    httpResp.Header,
	}, nil
}
