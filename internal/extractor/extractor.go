package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
)

// Engine is the resume extraction engine. It is stateless; all pattern and
// vocabulary tables are package-level and read-only, so a single Engine is
// safe for concurrent use.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

// Analyze lowercases the text once and runs the six extractors over it.
// Identical input always yields an identical record. An empty input is the
// only error path; absence of matches yields empty collections.
func (e *Engine) Analyze(text string) (*domain.ResumeAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.Extraction("No resume text to analyze")
	}

	normalized := normalize(text)

	return &domain.ResumeAnalysis{
		Skills:          extractKeywords(normalized, skillKeywords),
		JobTitles:       extractKeywords(normalized, jobTitleKeywords),
		Education:       extractEducation(normalized),
		ExperienceYears: extractExperienceYears(normalized),
		Languages:       extractLanguages(normalized),
		Certifications:  extractCertifications(normalized),
	}, nil
}

// normalize is the single shared preprocessing step; extractors never
// re-lowercase.
func normalize(text string) string {
	return strings.ToLower(text)
}

// extractKeywords flags a vocabulary entry as present if it occurs anywhere
// in the text as a substring. Word boundaries are intentionally not checked;
// short entries matching inside longer words is a known trade-off. Output is
// title-cased, deduplicated case-insensitively, in vocabulary order.
func extractKeywords(text string, vocabulary []string) []string {
	found := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	for _, keyword := range vocabulary {
		if !strings.Contains(text, keyword) {
			continue
		}
		value := titleCase(keyword)
		key := strings.ToLower(value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, value)
	}
	return found
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s+years?\s+of?\s+experience`),
	regexp.MustCompile(`(?i)experience:\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s+years?\s+in`),
}

// extractExperienceYears returns the integer captured by the first pattern
// that matches anywhere in the text; there is no aggregation across multiple
// numeric mentions. No match means 0.
func extractExperienceYears(text string) int {
	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			return years
		}
	}
	return 0
}

var languagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)languages?:\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)programming\s+languages?:\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)spoken\s+languages?:\s*([^.\n]+)`),
}

// extractLanguages scans for "label: value" lines and splits the captured
// segment on commas. Each pattern contributes at most its first match.
func extractLanguages(text string) []string {
	languages := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	for _, pattern := range languagePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, part := range strings.Split(m[1], ",") {
			value := strings.TrimSpace(part)
			if value == "" {
				continue
			}
			key := strings.ToLower(value)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			languages = append(languages, value)
		}
	}
	return languages
}

var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)certifications?:\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)certified\s+([^.\n]+)`),
	regexp.MustCompile(`(?i)aws\s+certified`),
	regexp.MustCompile(`(?i)microsoft\s+certified`),
	regexp.MustCompile(`(?i)google\s+certified`),
}

// extractCertifications collects every match of every pattern. Patterns with
// a capture group contribute the captured value segment; the bare vendor
// patterns contribute the whole match.
func extractCertifications(text string) []string {
	certifications := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	for _, pattern := range certificationPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			value := m[0]
			if pattern.NumSubexp() > 0 {
				value = m[1]
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			key := strings.ToLower(value)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			certifications = append(certifications, value)
		}
	}
	return certifications
}

// titleCase uppercases every letter that follows a non-letter, so compound
// tokens keep their punctuation: "node.js" -> "Node.Js", "ci/cd" -> "Ci/Cd".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
