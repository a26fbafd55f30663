// Package github fetches public profile summaries from the GitHub REST API
// for the dashboard and for enriching developer profiles.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skillsync-backend/config"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
)

const recentRepoLimit = 5

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: "https://api.github.com",
		token:   cfg.GithubToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type githubUser struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
}

type githubRepo struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	UpdatedAt       string `json:"updated_at"`
}

type commitWeek struct {
	Week  int64 `json:"week"`
	Total int   `json:"total"`
}

// FetchSummary builds a GitHubSummary for a public username: repo count,
// language usage across owned repos, the most recently updated repos and
// their combined commit activity.
func (c *Client) FetchSummary(ctx context.Context, username string) (*domain.GitHubSummary, error) {
	var user githubUser
	if err := c.getJSON(ctx, fmt.Sprintf("%s/users/%s", c.baseURL, username), &user); err != nil {
		return nil, err
	}

	var repos []githubRepo
	reposURL := fmt.Sprintf("%s/users/%s/repos?per_page=100&type=owner&sort=updated", c.baseURL, username)
	if err := c.getJSON(ctx, reposURL, &repos); err != nil {
		return nil, err
	}

	summary := &domain.GitHubSummary{
		PublicRepos:       user.PublicRepos,
		MostUsedLanguages: make(map[string]int),
		RecentRepos:       make([]domain.GitHubRepo, 0, recentRepoLimit),
	}

	for _, repo := range repos {
		if repo.Language != "" {
			summary.MostUsedLanguages[repo.Language]++
		}
	}

	recent := repos
	if len(recent) > recentRepoLimit {
		recent = recent[:recentRepoLimit]
	}
	for _, repo := range recent {
		summary.RecentRepos = append(summary.RecentRepos, domain.GitHubRepo{
			Name:        repo.Name,
			URL:         repo.HTMLURL,
			Language:    repo.Language,
			Stars:       repo.StargazersCount,
			LastUpdated: repo.UpdatedAt,
		})

		// Commit stats are best-effort: empty or freshly-forked repos 404
		// or return nothing, and that should not fail the whole summary.
		var weeks []commitWeek
		statsURL := fmt.Sprintf("%s/repos/%s/%s/stats/commit_activity", c.baseURL, username, repo.Name)
		if err := c.getJSON(ctx, statsURL, &weeks); err != nil {
			continue
		}
		for _, week := range weeks {
			summary.TotalCommits += week.Total
		}
	}

	return summary, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperror.ExternalService("Failed to build GitHub request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.ExternalService("GitHub request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperror.NotFound("GitHub user not found")
	}
	if resp.StatusCode != http.StatusOK {
		return apperror.ExternalService(fmt.Sprintf("GitHub returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.ExternalService("GitHub returned an unreadable response", err)
	}
	return nil
}
