package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"gt":       "{field} must be greater than {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"eqfield":  "{field} must match {param}",
		"date":     "{field} must be a date in YYYY-MM-DD format",
		"clock":    "{field} must be a time in HH:MM format",

		"required_without": "{field} is required when {param} is not set",
		"excluded_with":    "{field} cannot be combined with {param}",
		"url":              "{field} must be a valid URL",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if messages[valErr.Tag()] != "" {
				return render(valErr)
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func fields(err error) map[string]string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return nil
	}

	out := make(map[string]string, len(valErrors))
	for _, valErr := range valErrors {
		if _, seen := out[valErr.Field()]; !seen {
			out[valErr.Field()] = render(valErr)
		}
	}

	return out
}
