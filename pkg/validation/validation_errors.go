package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the JSON names clients actually send
var FieldLabels = map[string]string{
	"Skills":          "skills",
	"ExperienceYears": "experience_years",
	"CurrentRole":     "current_role",
	"Interests":       "interests",
}

// FormatValidationErrors converts validator.ValidationErrors into one
// user-friendly message string
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return as-is
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return strings.Join(messages, "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must contain at least %s item(s)", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
