// Package leetcode fetches public solve statistics via the community stats
// API and recent accepted submissions via LeetCode's GraphQL endpoint.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
)

const (
	statsAPIURL        = "https://leetcode-stats-api.herokuapp.com/%s"
	graphqlURL         = "https://leetcode.com/graphql"
	recentProblemLimit = 5
)

const recentSubmissionsQuery = `
query recentAcSubmissions($username: String!) {
  recentAcSubmissionList(username: $username, limit: 10) {
    id
    title
    titleSlug
    timestamp
  }
}`

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type statsResponse struct {
	Status      string `json:"status"`
	TotalSolved int    `json:"totalSolved"`
	Ranking     int    `json:"ranking"`
}

type graphqlResponse struct {
	Data struct {
		RecentAcSubmissionList []struct {
			Title     string `json:"title"`
			TitleSlug string `json:"titleSlug"`
			Timestamp string `json:"timestamp"`
		} `json:"recentAcSubmissionList"`
	} `json:"data"`
}

// FetchSummary builds a LeetCodeSummary for a public username. Stats are
// required; the recent-problems lookup is best-effort and a GraphQL failure
// just leaves the list empty.
func (c *Client) FetchSummary(ctx context.Context, username string) (*domain.LeetCodeSummary, error) {
	stats, err := c.fetchStats(ctx, username)
	if err != nil {
		return nil, err
	}

	summary := &domain.LeetCodeSummary{
		TotalSolved:    stats.TotalSolved,
		Ranking:        stats.Ranking,
		RecentProblems: []domain.LeetCodeProblem{},
	}
	summary.RecentProblems = c.fetchRecentProblems(ctx, username)
	return summary, nil
}

func (c *Client) fetchStats(ctx context.Context, username string) (*statsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(statsAPIURL, username), nil)
	if err != nil {
		return nil, apperror.ExternalService("Failed to build LeetCode request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ExternalService("LeetCode stats request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperror.NotFound("LeetCode user not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperror.ExternalService(fmt.Sprintf("LeetCode stats API returned status %d", resp.StatusCode), nil)
	}

	var stats statsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, apperror.ExternalService("LeetCode stats API returned an unreadable response", err)
	}
	if stats.Status == "error" {
		return nil, apperror.NotFound("LeetCode user not found")
	}
	return &stats, nil
}

func (c *Client) fetchRecentProblems(ctx context.Context, username string) []domain.LeetCodeProblem {
	payload, err := json.Marshal(map[string]any{
		"query":     recentSubmissionsQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return []domain.LeetCodeProblem{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return []domain.LeetCodeProblem{}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", fmt.Sprintf("https://leetcode.com/%s/", username))
	req.Header.Set("Origin", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return []domain.LeetCodeProblem{}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return []domain.LeetCodeProblem{}
	}

	var gql graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gql); err != nil {
		return []domain.LeetCodeProblem{}
	}

	submissions := gql.Data.RecentAcSubmissionList
	if len(submissions) > recentProblemLimit {
		submissions = submissions[:recentProblemLimit]
	}

	problems := make([]domain.LeetCodeProblem, 0, len(submissions))
	for _, sub := range submissions {
		problem := domain.LeetCodeProblem{
			Title: sub.Title,
			URL:   fmt.Sprintf("https://leetcode.com/problems/%s/", sub.TitleSlug),
		}
		if ts, err := strconv.ParseInt(sub.Timestamp, 10, 64); err == nil {
			problem.SolvedAt = time.Unix(ts, 0).UTC().Format(time.RFC3339)
		}
		problems = append(problems, problem)
	}
	return problems
}
