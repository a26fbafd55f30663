package usecase

import (
	"fmt"
	"sort"
	"strings"

	"skillsync-backend/internal/domain"
)

// Worked example object included in every prompt to pin the response schema.
const promptExampleObject = `{"title":"Backend Developer","description":"Focus on server-side development and database management","required_skills":["Python","Node.js","PostgreSQL","Docker"],"companies":["Stripe","Shopify"],"suitability":"Good match for your server-side experience","average_salary":85000,"growth_potential":"High","difficulty":"Intermediate"}`

// BuildCareerPrompt renders the user prompt for the career suggestion call.
// Section order is fixed and every collection is rendered in a deterministic
// order, so equal profiles always produce byte-identical prompts.
func BuildCareerPrompt(req *domain.CareerSuggestionRequest) string {
	var b strings.Builder

	b.WriteString("Based on the following developer profile, suggest 3-4 specific career paths with detailed information:\n\n")

	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(req.Skills, ", "))
	years := 0
	if req.ExperienceYears != nil {
		years = *req.ExperienceYears
	}
	fmt.Fprintf(&b, "Years of Experience: %d\n", years)
	fmt.Fprintf(&b, "Current Role: %s\n", orNotSpecified(req.CurrentRole))
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Interests, ", "))
	} else {
		b.WriteString("Interests: Not specified\n")
	}

	if req.Github != nil {
		writeGithubSection(&b, req.Github)
	}
	if req.Leetcode != nil {
		writeLeetcodeSection(&b, req.Leetcode)
	}

	b.WriteString("\nRespond ONLY with a JSON array of objects and no other text. ")
	b.WriteString("Each object must have exactly these fields: ")
	b.WriteString(`"title", "description", "required_skills", "companies", "suitability", "average_salary", "growth_potential", "difficulty".` + "\n")
	b.WriteString("Use \"Low\", \"Medium\", \"High\" or \"Very High\" for growth_potential and \"Beginner\", \"Intermediate\" or \"Advanced\" for difficulty.\n\n")
	b.WriteString("Example object:\n")
	b.WriteString(promptExampleObject + "\n\n")
	b.WriteString("Focus on realistic career transitions and growth opportunities in software development, data science, and related fields.")

	return b.String()
}

func writeGithubSection(b *strings.Builder, gh *domain.GitHubSummary) {
	b.WriteString("\nGitHub Stats:\n")
	fmt.Fprintf(b, "- Public Repos: %d\n", gh.PublicRepos)
	fmt.Fprintf(b, "- Total Commits: %d\n", gh.TotalCommits)

	if len(gh.MostUsedLanguages) > 0 {
		fmt.Fprintf(b, "- Most Used Languages: %s\n", formatLanguageCounts(gh.MostUsedLanguages))
	}
	if len(gh.RecentRepos) > 0 {
		names := make([]string, 0, len(gh.RecentRepos))
		for _, repo := range gh.RecentRepos {
			names = append(names, repo.Name)
		}
		fmt.Fprintf(b, "- Recent Repos: %s\n", strings.Join(names, ", "))
	}
}

func writeLeetcodeSection(b *strings.Builder, lc *domain.LeetCodeSummary) {
	b.WriteString("\nLeetCode Stats:\n")
	fmt.Fprintf(b, "- Total Solved: %d\n", lc.TotalSolved)
	fmt.Fprintf(b, "- Ranking: %d\n", lc.Ranking)

	if len(lc.RecentProblems) > 0 {
		titles := make([]string, 0, len(lc.RecentProblems))
		for _, problem := range lc.RecentProblems {
			titles = append(titles, problem.Title)
		}
		fmt.Fprintf(b, "- Recent Problems: %s\n", strings.Join(titles, ", "))
	}
}

// formatLanguageCounts renders "language (count)" pairs sorted by count
// descending, ties broken by name, so map iteration order never leaks into
// the prompt.
func formatLanguageCounts(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s (%d)", name, counts[name]))
	}
	return strings.Join(pairs, ", ")
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
