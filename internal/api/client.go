// Package api implements the typed REST client for the WanderSphere backend.
//
// Authentication is session-cookie based: the client carries a cookie jar
// and the backend session cookie is opaque to this layer. Any 401 response
// fires the unauthorized hook so the hosting application can clear the
// cached viewer and force a fresh login.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/hoangNguyenDev3/WanderSphere/internal/config"
	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
	"github.com/hoangNguyenDev3/WanderSphere/internal/observability"
)

// Client handles HTTP requests to the WanderSphere API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *observability.Logger

	onUnauthorized func()
}

// New creates an API client with cookie support against cfg.APIBaseURL.
func New(cfg *config.Config) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	log := observability.Component("api")
	return &Client{
		baseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout:   cfg.HTTPTimeout(),
			Jar:       jar,
			Transport: newLoggingTransport(http.DefaultTransport, log),
		},
		log: log,
	}, nil
}

// SetUnauthorizedHook registers fn to be called whenever the backend
// answers 401. Intended for the session layer's forced-logout behavior.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes a JSON request and decodes a 2xx body into out (when out is
// non-nil). Non-2xx responses and transport faults are converted to
// *models.AppError; they never propagate raw.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return models.NewInternalError(err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return models.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.NewNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.NewNetworkError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return models.NewUnauthorizedError("session expired or not logged in")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody models.ErrorResponse
		_ = json.Unmarshal(respBody, &errBody)
		return models.NewAPIError(resp.StatusCode, errBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return models.NewInternalError(fmt.Errorf("failed to parse response: %w", err))
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func queryPath(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
