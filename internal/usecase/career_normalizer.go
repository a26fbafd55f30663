package usecase

import (
	"encoding/json"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
)

// rawSuggestion mirrors one element of the LLM's JSON array. The fields the
// model tends to omit or mistype are kept loose so they can be defaulted
// instead of failing the whole parse.
type rawSuggestion struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	RequiredSkills  []string        `json:"required_skills"`
	Companies       json.RawMessage `json:"companies"`
	Suitability     json.RawMessage `json:"suitability"`
	AverageSalary   int             `json:"average_salary"`
	GrowthPotential string          `json:"growth_potential"`
	Difficulty      string          `json:"difficulty"`
}

// NormalizeSuggestions parses the content string of a chat completion as a
// JSON array and coerces each element into a fully-populated CareerPath.
// There is no free-text fallback: content that is not a valid JSON array is
// an ExternalService failure. Elements are never dropped or reordered; ids
// are assigned sequentially from 1, never taken from the model.
func NormalizeSuggestions(content string) ([]domain.CareerPath, error) {
	var raws []rawSuggestion
	if err := json.Unmarshal([]byte(content), &raws); err != nil {
		return nil, apperror.ExternalService("AI response was not a valid JSON array of suggestions", err)
	}
	if raws == nil {
		// "null" decodes without error but is not an array
		return nil, apperror.ExternalService("AI response was not a valid JSON array of suggestions", nil)
	}

	paths := make([]domain.CareerPath, 0, len(raws))
	for i, raw := range raws {
		path := domain.CareerPath{
			ID:              i + 1,
			Title:           raw.Title,
			Description:     raw.Description,
			RequiredSkills:  raw.RequiredSkills,
			Companies:       []string{},
			Suitability:     "",
			AverageSalary:   raw.AverageSalary,
			GrowthPotential: raw.GrowthPotential,
			Difficulty:      raw.Difficulty,
		}
		if path.RequiredSkills == nil {
			path.RequiredSkills = []string{}
		}
		// companies must be a list, suitability a string; anything else
		// keeps the default
		if len(raw.Companies) > 0 {
			var companies []string
			if err := json.Unmarshal(raw.Companies, &companies); err == nil && companies != nil {
				path.Companies = companies
			}
		}
		if len(raw.Suitability) > 0 {
			var suitability string
			if err := json.Unmarshal(raw.Suitability, &suitability); err == nil {
				path.Suitability = suitability
			}
		}
		paths = append(paths, path)
	}
	return paths, nil
}
