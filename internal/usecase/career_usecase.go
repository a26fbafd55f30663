package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
	"skillsync-backend/pkg/groq"
	"skillsync-backend/pkg/logger"
	"skillsync-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type careerUsecase struct {
	aiClient domain.AIClient
	repo     domain.CareerPathRepository
	validate *validator.Validate
	// When true, ExternalService failures degrade into deterministic
	// rule-based suggestions instead of propagating. The two behaviors are
	// mutually exclusive per deployment.
	fallbackEnabled bool
}

func NewCareerUsecase(aiClient domain.AIClient, repo domain.CareerPathRepository, validate *validator.Validate, fallbackEnabled bool) domain.CareerUsecase {
	return &careerUsecase{
		aiClient:        aiClient,
		repo:            repo,
		validate:        validate,
		fallbackEnabled: fallbackEnabled,
	}
}

// SuggestCareerPaths runs BuildPrompt -> Call -> ParseOrFail with no retries
// on any transition. Validation happens before the external call and is never
// converted by fallback mode.
func (u *careerUsecase) SuggestCareerPaths(ctx context.Context, req *domain.CareerSuggestionRequest) ([]domain.CareerPath, error) {
	if req == nil {
		return nil, apperror.Validation("Request body is required")
	}
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	prompt := BuildCareerPrompt(req)

	body, status, err := u.aiClient.ChatCompletion(ctx, groq.SystemPrompt, prompt)
	if err != nil {
		return u.failOrFallback(req, apperror.ExternalService("Career suggestion call failed", err))
	}
	if status != http.StatusOK {
		return u.failOrFallback(req, apperror.ExternalService(fmt.Sprintf("AI provider returned status %d", status), nil))
	}

	var envelope groq.ChatCompletionResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return u.failOrFallback(req, apperror.ExternalService("AI provider returned an unreadable response", err))
	}
	if len(envelope.Choices) == 0 {
		return u.failOrFallback(req, apperror.ExternalService("AI response contained no choices", nil))
	}

	paths, err := NormalizeSuggestions(envelope.Choices[0].Message.Content)
	if err != nil {
		return u.failOrFallback(req, err)
	}
	return paths, nil
}

// failOrFallback converts an ExternalService failure into deterministic
// suggestions when fallback mode is on; otherwise the error propagates as-is.
func (u *careerUsecase) failOrFallback(req *domain.CareerSuggestionRequest, err error) ([]domain.CareerPath, error) {
	if !u.fallbackEnabled {
		return nil, err
	}
	logger.Log.Warn("AI suggestion failed, serving deterministic fallback", "error", err)
	return FallbackSuggestions(req), nil
}

func (u *careerUsecase) ListCareerPaths(ctx context.Context) ([]domain.CareerPath, error) {
	return u.repo.GetAll(ctx)
}

func (u *careerUsecase) GetCareerPath(ctx context.Context, id int) (*domain.CareerPath, error) {
	path, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, apperror.NotFound("Career path not found")
	}
	return path, nil
}

const maxFallbackSuggestions = 3

// FallbackSuggestions synthesizes career paths purely from the profile's
// skills and experience using fixed rules, capped to the first 3 rules that
// fire. Every path carries a fixed id and all fields populated.
func FallbackSuggestions(req *domain.CareerSuggestionRequest) []domain.CareerPath {
	years := 0
	if req.ExperienceYears != nil {
		years = *req.ExperienceYears
	}

	suggestions := make([]domain.CareerPath, 0, maxFallbackSuggestions)

	if hasAnySkill(req.Skills, "python", "java", "javascript") {
		if years >= 3 {
			suggestions = append(suggestions, domain.CareerPath{
				ID:              1,
				Title:           "Senior Backend Developer",
				Description:     "Lead backend development with advanced system design",
				RequiredSkills:  []string{"Python", "Node.js", "PostgreSQL", "Docker", "System Design"},
				Companies:       []string{"Stripe", "Shopify", "Datadog"},
				Suitability:     "Strong match given your backend stack and seniority",
				AverageSalary:   120000,
				GrowthPotential: "Very High",
				Difficulty:      "Advanced",
			})
		} else {
			suggestions = append(suggestions, domain.CareerPath{
				ID:              2,
				Title:           "Backend Developer",
				Description:     "Develop server-side applications and APIs",
				RequiredSkills:  []string{"Python", "Node.js", "PostgreSQL", "Docker"},
				Companies:       []string{"Atlassian", "GitLab", "Twilio"},
				Suitability:     "Good entry into server-side engineering with your current skills",
				AverageSalary:   85000,
				GrowthPotential: "High",
				Difficulty:      "Intermediate",
			})
		}
	}

	if hasAnySkill(req.Skills, "react", "angular", "vue", "javascript") {
		suggestions = append(suggestions, domain.CareerPath{
			ID:              3,
			Title:           "Frontend Developer",
			Description:     "Build user interfaces and interactive web applications",
			RequiredSkills:  []string{"JavaScript", "React", "CSS", "HTML", "TypeScript"},
			Companies:       []string{"Vercel", "Figma", "Canva"},
			Suitability:     "Matches your interface-building experience",
			AverageSalary:   75000,
			GrowthPotential: "High",
			Difficulty:      "Beginner",
		})
	}

	if hasAnySkill(req.Skills, "python", "tensorflow", "pytorch", "machine learning") {
		suggestions = append(suggestions, domain.CareerPath{
			ID:              4,
			Title:           "ML Engineer",
			Description:     "Develop machine learning models and AI systems",
			RequiredSkills:  []string{"Python", "TensorFlow", "Pandas", "Scikit-learn", "MLOps"},
			Companies:       []string{"OpenAI", "Hugging Face", "NVIDIA"},
			Suitability:     "Your toolset carries over to applied machine learning",
			AverageSalary:   110000,
			GrowthPotential: "Very High",
			Difficulty:      "Advanced",
		})
	}

	if len(req.Skills) >= 5 && years >= 2 {
		suggestions = append(suggestions, domain.CareerPath{
			ID:              5,
			Title:           "Full Stack Developer",
			Description:     "Handle both frontend and backend development",
			RequiredSkills:  []string{"JavaScript", "Python", "React", "Node.js", "PostgreSQL"},
			Companies:       []string{"Airbnb", "Booking.com", "Spotify"},
			Suitability:     "Your breadth of skills supports end-to-end ownership",
			AverageSalary:   95000,
			GrowthPotential: "Very High",
			Difficulty:      "Advanced",
		})
	}

	if len(suggestions) > maxFallbackSuggestions {
		suggestions = suggestions[:maxFallbackSuggestions]
	}
	return suggestions
}

func hasAnySkill(skills []string, wanted ...string) bool {
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, w := range wanted {
			if lower == w {
				return true
			}
		}
	}
	return false
}
