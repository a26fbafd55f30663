package domain

import "context"

type CareerPath struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	RequiredSkills  []string `json:"required_skills"`
	Companies       []string `json:"companies"`
	Suitability     string   `json:"suitability"`
	AverageSalary   int      `json:"average_salary"`
	GrowthPotential string   `json:"growth_potential"`
	Difficulty      string   `json:"difficulty"`
}

// CareerSuggestionRequest is the developer profile the suggestion service
// works from: extracted resume facts plus optional coding-activity summaries.
// ExperienceYears is a pointer so a missing field can be told apart from a
// legitimate zero.
type CareerSuggestionRequest struct {
	Skills          []string         `json:"skills" validate:"required,min=1"`
	ExperienceYears *int             `json:"experience_years" validate:"required"`
	CurrentRole     string           `json:"current_role"`
	Interests       []string         `json:"interests"`
	Github          *GitHubSummary   `json:"github"`
	Leetcode        *LeetCodeSummary `json:"leetcode"`
}

type GitHubRepo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	LastUpdated string `json:"last_updated"`
}

// GitHubSummary is read-only context supplied by the caller (or the dashboard
// fetcher); the core never mutates it.
type GitHubSummary struct {
	PublicRepos       int            `json:"public_repos"`
	TotalCommits      int            `json:"total_commits"`
	MostUsedLanguages map[string]int `json:"most_used_languages"`
	RecentRepos       []GitHubRepo   `json:"recent_repos"`
}

type LeetCodeProblem struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	SolvedAt   string `json:"solved_at"`
	URL        string `json:"url"`
}

type LeetCodeSummary struct {
	TotalSolved    int               `json:"total_solved"`
	Ranking        int               `json:"ranking"`
	RecentProblems []LeetCodeProblem `json:"recent_problems"`
}

// AIClient performs one chat-completion call. It returns the raw response
// body and HTTP status without interpreting the content; a non-nil error
// means the request never produced a response (network failure, timeout).
type AIClient interface {
	ChatCompletion(ctx context.Context, systemPrompt, userPrompt string) (body []byte, status int, err error)
}

type CareerPathRepository interface {
	GetAll(ctx context.Context) ([]CareerPath, error)
	GetByID(ctx context.Context, id int) (*CareerPath, error)
}

type CareerUsecase interface {
	SuggestCareerPaths(ctx context.Context, req *CareerSuggestionRequest) ([]CareerPath, error)
	ListCareerPaths(ctx context.Context) ([]CareerPath, error)
	GetCareerPath(ctx context.Context, id int) (*CareerPath, error)
}
