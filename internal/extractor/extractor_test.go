package extractor_test

import (
	"strings"
	"testing"

	"skillsync-backend/internal/extractor"
	"skillsync-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSkillsAndTitles(t *testing.T) {
	engine := extractor.New()

	t.Run("Should match vocabulary entries regardless of input casing", func(t *testing.T) {
		analysis, err := engine.Analyze("Experienced in Python, React and Docker.")
		require.NoError(t, err)
		assert.Equal(t, []string{"Python", "React", "Docker"}, analysis.Skills)
	})

	t.Run("Should title-case and deduplicate", func(t *testing.T) {
		analysis, err := engine.Analyze("python PYTHON Python everywhere")
		require.NoError(t, err)
		assert.Equal(t, []string{"Python"}, analysis.Skills)

		seen := map[string]bool{}
		for _, s := range analysis.Skills {
			assert.False(t, seen[strings.ToLower(s)], "duplicate skill %q", s)
			seen[strings.ToLower(s)] = true
		}
	})

	t.Run("Substring matching flags tokens inside longer words", func(t *testing.T) {
		// "mongodb" contains "go"; matching is containment, not word-boundary
		analysis, err := engine.Analyze("we use mongodb in production")
		require.NoError(t, err)
		assert.Equal(t, []string{"Mongodb", "Go"}, analysis.Skills)
	})

	t.Run("Should extract job titles from their own vocabulary", func(t *testing.T) {
		analysis, err := engine.Analyze("Worked as a software engineer and later team lead.")
		require.NoError(t, err)
		assert.Equal(t, []string{"Software Engineer", "Team Lead"}, analysis.JobTitles)
	})

	t.Run("Compound tokens keep punctuation in title case", func(t *testing.T) {
		analysis, err := engine.Analyze("shipped node.js services with ci/cd pipelines")
		require.NoError(t, err)
		assert.Contains(t, analysis.Skills, "Node.Js")
		assert.Contains(t, analysis.Skills, "Ci/Cd")
	})
}

func TestAnalyzeEducation(t *testing.T) {
	engine := extractor.New()

	t.Run("Degree phrasing wins over bare institution names", func(t *testing.T) {
		text := "Bachelor of Science in Computer Science\nUniversity of Washington"
		analysis, err := engine.Analyze(text)
		require.NoError(t, err)
		require.NotEmpty(t, analysis.Education)
		assert.Equal(t, "Computer Science", analysis.Education[0])
	})

	t.Run("Output is always capped at three entries", func(t *testing.T) {
		text := "Bachelor of Science in Computer Science\n" +
			"Master of Science in Data Engineering\n" +
			"Stanford University\n" +
			"Harvard College\n" +
			"Georgia Institute"
		analysis, err := engine.Analyze(text)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(analysis.Education), 3)
	})

	t.Run("Rejects short and denylisted candidates", func(t *testing.T) {
		analysis, err := engine.Analyze("bachelor's ab\nprojects at simulator school of engineering")
		require.NoError(t, err)
		for _, edu := range analysis.Education {
			assert.Greater(t, len(edu), 3)
			lower := strings.ToLower(edu)
			for _, banned := range []string{"projects", "schools", "engineered", "simulator", "propagation"} {
				assert.NotContains(t, lower, banned)
			}
		}
	})
}

func TestAnalyzeExperienceYears(t *testing.T) {
	engine := extractor.New()

	cases := []struct {
		name string
		text string
		want int
	}{
		{"no numeric mention", "I am a developer.", 0},
		{"years of experience", "5 years of experience in backend development", 5},
		{"label form", "experience: 7 and counting", 7},
		{"first pattern wins over later mentions", "worked with fintech teams, 10 years of experience, 3 years in banking", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			analysis, err := engine.Analyze(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, analysis.ExperienceYears)
		})
	}
}

func TestAnalyzeLanguagesAndCertifications(t *testing.T) {
	engine := extractor.New()

	t.Run("Splits label lines on commas and deduplicates", func(t *testing.T) {
		text := "Programming Languages: Go, Python\nSpoken Languages: English, Spanish"
		analysis, err := engine.Analyze(text)
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "python", "english", "spanish"}, analysis.Languages)
	})

	t.Run("Collects certification label values and vendor mentions", func(t *testing.T) {
		text := "Certifications: AWS Certified Solutions Architect\nI am aws certified"
		analysis, err := engine.Analyze(text)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"aws certified solutions architect", "solutions architect", "aws certified"},
			analysis.Certifications)
	})

	t.Run("No matches yields empty collections, not an error", func(t *testing.T) {
		analysis, err := engine.Analyze("just some plain text")
		require.NoError(t, err)
		assert.Empty(t, analysis.Languages)
		assert.Empty(t, analysis.Certifications)
	})
}

func TestAnalyzeIsPure(t *testing.T) {
	engine := extractor.New()
	text := "Senior software engineer, 8 years of experience.\n" +
		"Skills: Python, Docker, Kubernetes\n" +
		"Bachelor of Science in Computer Science, MIT\n" +
		"Languages: English, German\nCertifications: CKA"

	first, err := engine.Analyze(text)
	require.NoError(t, err)
	second, err := engine.Analyze(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	engine := extractor.New()

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := engine.Analyze(text)
		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindExtraction))
	}
}
