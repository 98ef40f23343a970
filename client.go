// Package sigsci provides a Go client for the Signal Sciences (Fastly
// NGWAF) dashboard REST API.
//
// Basic usage:
//
//	client, err := sigsci.NewClient(
//	    sigsci.WithCredentials("user@example.com", "password"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Enumerate corps using iterator
//	for corp, err := range client.Corps.List(ctx) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(corp.Name)
//	}
package sigsci

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tphakala/go-sigsci/internal/api"
	"github.com/tphakala/go-sigsci/internal/auth"
)

// Default configuration values.
const (
	defaultTimeout = 30 * time.Second

	// DefaultBaseURL is the production dashboard API endpoint.
	DefaultBaseURL = "https://dashboard.signalsciences.net/api/v0"
)

// Client is the Signal Sciences API client.
type Client struct {
	// Corps provides access to corp (organization) operations.
	Corps CorpService

	// Users provides access to corp user operations.
	Users UserService

	// CloudWAF provides access to cloud WAF instance operations.
	CloudWAF CloudWAFService

	transport   *api.Transport
	credentials *auth.Credentials
}

// NewClient creates a new Signal Sciences client with the given options.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		return nil, ErrNoBaseURL
	}

	creds := &auth.Credentials{
		Email:    cfg.email,
		Password: cfg.password,
	}
	if !creds.Valid() {
		return nil, ErrNoCredentials
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	transport, err := api.NewTransport(cfg.baseURL, httpClient, cfg.logger)
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}

	client := &Client{
		transport:   transport,
		credentials: creds,
	}

	// Initialize services
	client.Corps = newCorpService(client)
	client.Users = newUserService(client)
	client.CloudWAF = newCloudWAFService(client)

	return client, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL.String()
}

// Authenticate exchanges the configured credentials for a fresh bearer
// token. Any transport failure or non-2xx response is reported as an
// *AuthenticationError.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	resp, err := c.transport.PostForm(ctx, "/auth", c.credentials.FormValues())
	if err != nil {
		return "", &AuthenticationError{APIError: newAPIError("/auth", nil, err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &AuthenticationError{APIError: newAPIError("/auth", resp, nil)}
	}

	var token auth.Token
	if err := json.Unmarshal(resp.Body, &token); err != nil {
		return "", &AuthenticationError{APIError: newAPIError("/auth", resp, fmt.Errorf("decoding token: %w", err))}
	}

	return token.Token, nil
}

// Fetch authenticates and then issues a GET against the given endpoint,
// returning the raw response body on a 200. A fresh token is acquired
// for every call; tokens are never cached. Non-200 statuses are
// classified into *AuthenticationError (401/403) or *APIError.
func (c *Client) Fetch(ctx context.Context, endpoint string, opts ...RequestOption) ([]byte, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	token, err := c.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.transport.Get(ctx, endpoint, token, reqCfg.headers)
	if err != nil {
		apiErr := newAPIError(endpoint, nil, err)
		return nil, &apiErr
	}

	if err := classifyResponse(endpoint, resp); err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// VerifyAuthentication checks that the configured credentials can reach
// the API by fetching the corp list and discarding the result.
func (c *Client) VerifyAuthentication(ctx context.Context) error {
	_, err := c.Fetch(ctx, "/corps")
	return err
}
