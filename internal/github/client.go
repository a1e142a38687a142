// Package github is a small client for the two GitHub REST endpoints the
// profile prefill feature needs. No pagination, no retries, no rate-limit
// handling — a failed call surfaces immediately as an upstream error with
// the status GitHub answered.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/sakif/readme-studio/internal/apperror"
)

const defaultBaseURL = "https://api.github.com"

// User is the slice of GitHub's /users/{username} response we care about.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// Repo is the slice of a repository object used for project suggestions.
type Repo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Fork        bool   `json:"fork"`
	Language    string `json:"language"`
}

// Client calls the GitHub REST API, optionally authenticated.
type Client struct {
	httpc   *http.Client
	baseURL string
}

// NewClient builds a client. With a non-empty token the underlying transport
// adds the bearer header on every request (oauth2.StaticTokenSource);
// without one, calls are anonymous and subject to GitHub's low unauthenticated
// rate limit.
func NewClient(token string) *Client {
	httpc := &http.Client{Timeout: 10 * time.Second}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpc = oauth2.NewClient(context.Background(), src)
		httpc.Timeout = 10 * time.Second
	}
	return &Client{httpc: httpc, baseURL: defaultBaseURL}
}

// NewClientWithBaseURL is used by tests to point the client at a local server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// GetUser fetches the public profile for a username.
func (c *Client) GetUser(ctx context.Context, username string) (*User, error) {
	var user User
	path := "/users/" + url.PathEscape(username)
	if err := c.get(ctx, path, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRepos fetches the user's ten most recently updated repositories.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	path := "/users/" + url.PathEscape(username) + "/repos?sort=updated&per_page=10"
	if err := c.get(ctx, path, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("github: building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("github: calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperror.NotFound("GitHub user", path)
	}
	if resp.StatusCode != http.StatusOK {
		return apperror.Upstream("GitHub API", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("github: decoding %s response: %w", path, err)
	}
	return nil
}
