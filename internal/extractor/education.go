package extractor

import (
	"regexp"
	"strings"
)

// Ordered pattern categories for education extraction. Degree phrasings come
// before bare institution names on purpose: candidates are collected in
// application order and truncated afterwards, so earlier categories win when
// both fire.
var educationPatterns = []*regexp.Regexp{
	// Bachelor's degree patterns
	regexp.MustCompile(`(?i)bachelor['’]?s?\s+(?:degree|of|in)\s+(?:science|arts|engineering|technology|computer|information|business|management)\s+(?:in\s+)?([^,\n]+)`),
	regexp.MustCompile(`(?i)b\.?s\.?\s+(?:in\s+)?([^,\n]+)`),
	regexp.MustCompile(`(?i)bachelor['’]?s?\s+([^,\n]+)`),

	// Master's degree patterns
	regexp.MustCompile(`(?i)master['’]?s?\s+(?:degree|of|in)\s+(?:science|arts|engineering|technology|computer|information|business|management)\s+(?:in\s+)?([^,\n]+)`),
	regexp.MustCompile(`(?i)m\.?s\.?\s+(?:in\s+)?([^,\n]+)`),
	regexp.MustCompile(`(?i)master['’]?s?\s+([^,\n]+)`),

	// PhD patterns
	regexp.MustCompile(`(?i)ph\.?d\.?\s+(?:in\s+)?([^,\n]+)`),
	regexp.MustCompile(`(?i)doctorate\s+(?:in\s+)?([^,\n]+)`),

	// University/College patterns with names
	regexp.MustCompile(`(?i)([a-zA-Z\s&]+(?:university|college|institute|school)[a-zA-Z\s&]*)`),
	regexp.MustCompile(`(?i)([a-zA-Z\s&]+(?:university|college|institute|school))`),

	// Degree with university context
	regexp.MustCompile(`(?i)([^,\n]+(?:university|college|institute)[^,\n]*)`),
}

var (
	eduFillerRe     = regexp.MustCompile(`(?i)\b(degree|in|of|the|and|or)\b`)
	eduWhitespaceRe = regexp.MustCompile(`\s+`)
)

// Cleaned candidates containing any of these substrings are noise from other
// resume sections, not education entries.
var eduDenylist = []string{"projects", "schools", "engineered", "simulator", "propagation"}

const maxEducationEntries = 3

// extractEducation applies every pattern category once over the full text,
// collects each capture group, then cleans and filters the candidates in
// first-seen order before truncating to the first 3.
func extractEducation(text string) []string {
	var candidates []string
	for _, pattern := range educationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			for _, group := range match[1:] {
				group = strings.TrimSpace(group)
				if len(group) > 2 {
					candidates = append(candidates, titleCase(group))
				}
			}
		}
	}

	accepted := make([]string, 0, maxEducationEntries)
	seen := make(map[string]struct{})
	for _, candidate := range candidates {
		cleaned := eduFillerRe.ReplaceAllString(candidate, "")
		cleaned = eduWhitespaceRe.ReplaceAllString(cleaned, " ")
		cleaned = strings.TrimSpace(cleaned)

		if len(cleaned) <= 3 {
			continue
		}
		lower := strings.ToLower(cleaned)
		if _, dup := seen[lower]; dup {
			continue
		}
		if strings.HasPrefix(cleaned, ":") || strings.HasPrefix(lower, "for") {
			continue
		}
		if containsAny(lower, eduDenylist) {
			continue
		}

		seen[lower] = struct{}{}
		accepted = append(accepted, cleaned)
		if len(accepted) == maxEducationEntries {
			break
		}
	}
	return accepted
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
