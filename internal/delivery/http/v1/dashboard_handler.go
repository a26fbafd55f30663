package v1

import (
	"context"
	"net/http"

	"skillsync-backend/internal/delivery/http/response"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// GithubFetcher summarizes a user's public GitHub activity.
type GithubFetcher interface {
	FetchSummary(ctx context.Context, username string) (*domain.GitHubSummary, error)
}

// LeetcodeFetcher summarizes a user's LeetCode activity.
type LeetcodeFetcher interface {
	FetchSummary(ctx context.Context, username string) (*domain.LeetCodeSummary, error)
}

type DashboardHandler struct {
	github   GithubFetcher
	leetcode LeetcodeFetcher
}

// NewDashboardHandler registers the coding-activity dashboard routes.
func NewDashboardHandler(r *gin.RouterGroup, github GithubFetcher, leetcode LeetcodeFetcher) {
	handler := &DashboardHandler{
		github:   github,
		leetcode: leetcode,
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/github/:username", handler.GetGithubStats)
		dashboard.GET("/leetcode/:username", handler.GetLeetcodeStats)
	}
}

// GetGithubStats godoc
// @Summary      Get GitHub activity summary
// @Tags         dashboard
// @Produce      json
// @Param        username  path      string  true  "GitHub username"
// @Success      200       {object}  response.Response{data=domain.GitHubSummary}
// @Failure      404       {object}  response.Response
// @Failure      502       {object}  response.Response
// @Router       /dashboard/github/{username} [get]
func (h *DashboardHandler) GetGithubStats(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.Error(apperror.Validation("Username is required"))
		return
	}

	summary, err := h.github.FetchSummary(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "GitHub stats", summary)
}

// GetLeetcodeStats godoc
// @Summary      Get LeetCode activity summary
// @Tags         dashboard
// @Produce      json
// @Param        username  path      string  true  "LeetCode username"
// @Success      200       {object}  response.Response{data=domain.LeetCodeSummary}
// @Failure      404       {object}  response.Response
// @Failure      502       {object}  response.Response
// @Router       /dashboard/leetcode/{username} [get]
func (h *DashboardHandler) GetLeetcodeStats(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.Error(apperror.Validation("Username is required"))
		return
	}

	summary, err := h.leetcode.FetchSummary(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "LeetCode stats", summary)
}
