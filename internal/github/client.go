// Package github fetches the public data the portfolio decorates itself
// with: the repository listing from the GitHub REST API and the
// contribution calendar from the jogruber contributions API. Both calls
// are best-effort; callers degrade to synthesized data on any failure.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"
)

// Default endpoints and limits.
const (
	DefaultAPIBase     = "https://api.github.com"
	DefaultContribBase = "https://github-contributions-api.jogruber.de/v4"
	maxRepos           = 6
	requestTimeout     = 10 * time.Second
)

// Repo is one repository from the listing.
type Repo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	Language    string `json:"language"`
	URL         string `json:"html_url"`
}

// RepoSummary is the retained repository listing plus aggregate counts
// computed over the full response.
type RepoSummary struct {
	TotalRepos int    `json:"total_repos"`
	TotalStars int    `json:"total_stars"`
	TotalForks int    `json:"total_forks"`
	Repos      []Repo `json:"repos"`
}

// ContributionDay is one day from the contribution calendar source.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Client calls the two outbound data sources. Base URLs are injectable
// for tests.
type Client struct {
	http        *http.Client
	apiBase     string
	contribBase string
}

// NewClient creates a Client against the public endpoints.
func NewClient() *Client {
	return &Client{
		http:        &http.Client{Timeout: requestTimeout},
		apiBase:     DefaultAPIBase,
		contribBase: DefaultContribBase,
	}
}

// NewClientWithBases creates a Client against the given endpoints, used
// by tests.
func NewClientWithBases(apiBase, contribBase string) *Client {
	return &Client{
		http:        &http.Client{Timeout: requestTimeout},
		apiBase:     apiBase,
		contribBase: contribBase,
	}
}

// Repos fetches the user's repositories (source ordering: most recently
// updated first) and retains the first 6, aggregating totals over the
// whole listing.
func (c *Client) Repos(ctx context.Context, username string) (*RepoSummary, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100", c.apiBase, username)

	var repos []Repo
	if err := c.getJSON(ctx, url, &repos); err != nil {
		return nil, fmt.Errorf("fetching repos for %s: %w", username, err)
	}

	summary := &RepoSummary{TotalRepos: len(repos)}
	for _, r := range repos {
		summary.TotalStars += r.Stars
		summary.TotalForks += r.Forks
	}

	if len(repos) > maxRepos {
		repos = repos[:maxRepos]
	}
	summary.Repos = repos

	return summary, nil
}

// contribResponse matches the jogruber v4 payload.
type contribResponse struct {
	Contributions []ContributionDay `json:"contributions"`
}

// Contributions fetches roughly the past year of daily contribution
// counts for the user.
func (c *Client) Contributions(ctx context.Context, username string) ([]ContributionDay, error) {
	url := fmt.Sprintf("%s/%s", c.contribBase, username)

	var resp contribResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetching contributions for %s: %w", username, err)
	}
	if len(resp.Contributions) == 0 {
		return nil, fmt.Errorf("contribution source returned no days for %s", username)
	}

	return resp.Contributions, nil
}

// Profile fetches the repository summary and contribution calendar
// together. Each half degrades independently: a nil summary or nil day
// list means that fetch failed, and the first error is returned for
// logging.
func (c *Client) Profile(ctx context.Context, username string) (*RepoSummary, []ContributionDay, error) {
	var (
		summary *RepoSummary
		days    []ContributionDay
		repoErr error
		dayErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, repoErr = c.Repos(gctx, username)
		return nil
	})
	g.Go(func() error {
		days, dayErr = c.Contributions(gctx, username)
		return nil
	})
	_ = g.Wait()

	err := repoErr
	if err == nil {
		err = dayErr
	}
	return summary, days, err
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

var usernamePattern = regexp.MustCompile(`github\.com/([^/?#]+)`)

// UsernameFromURL extracts the login from a github.com profile URL,
// returning fallback when the URL does not match.
func UsernameFromURL(url, fallback string) string {
	if m := usernamePattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return fallback
}
