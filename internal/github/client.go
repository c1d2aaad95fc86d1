package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mad4j/rustedbytes/internal/limits"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"

	// PageSize is the number of repositories to fetch per listing request
	PageSize = 100

	// acceptHeader pins the GitHub REST API version
	acceptHeader = "application/vnd.github.v3+json"
)

// Client is a lightweight GitHub REST API client covering the read-only
// endpoints the generator needs.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new GitHub API client. The token may be empty, in
// which case requests are unauthenticated and subject to the public rate
// limit.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
	}
}

// APIError represents a non-2xx response from the GitHub API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API error %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a GitHub 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// getJSON executes an authenticated GET request and decodes the response
// body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", acceptHeader)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, limits.ErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, limits.APIResponse)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// ListRepositories fetches all repositories owned by user and returns those
// whose name starts with prefix. Listing is paginated; a page shorter than
// PageSize marks the end.
func (c *Client) ListRepositories(ctx context.Context, user, prefix string) ([]Repository, error) {
	var repos []Repository

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(PageSize))
		params.Set("type", "all")

		var pageRepos []Repository
		if err := c.getJSON(ctx, "/users/"+user+"/repos", params, &pageRepos); err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", user, err)
		}

		if len(pageRepos) == 0 {
			break
		}

		for _, repo := range pageRepos {
			if strings.HasPrefix(repo.Name, prefix) {
				repos = append(repos, repo)
			}
		}

		log.Debug().
			Int("page", page).
			Int("fetched", len(pageRepos)).
			Int("matched", len(repos)).
			Msg("fetched repository listing page")

		if len(pageRepos) < PageSize {
			break
		}
	}

	return repos, nil
}

// LatestRelease returns the most recent release of owner/repo, or nil when
// the repository has no releases.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	var release Release
	err := c.getJSON(ctx, "/repos/"+owner+"/"+repo+"/releases/latest", nil, &release)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch latest release for %s/%s: %w", owner, repo, err)
	}
	return &release, nil
}
