package crates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mad4j/rustedbytes/internal/limits"
)

const (
	// DefaultBaseURL is the public crates.io API endpoint.
	DefaultBaseURL = "https://crates.io/api/v1"

	// userAgent identifies the generator to crates.io, which rejects
	// clients without a User-Agent header
	userAgent = "rustedbytes-page-generator"
)

// Client is a lightweight crates.io API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new crates.io API client.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// APIError represents a non-2xx response from the crates.io API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("crates.io API error %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a crates.io 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// CrateName derives the crates.io package name for a repository. Crates in
// the collection are published under the repository name unchanged.
func CrateName(repoName string) string {
	return repoName
}

// PageURL returns the public crates.io page for a crate.
func PageURL(name string) string {
	return "https://crates.io/crates/" + name
}

// GetCrate returns the published crate named name, or nil when no such
// crate exists on crates.io.
func (c *Client) GetCrate(ctx context.Context, name string) (*Crate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/crates/"+name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, limits.ErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var wrapped crateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, limits.APIResponse)).Decode(&wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode crate response: %w", err)
	}

	return &wrapped.Crate, nil
}
