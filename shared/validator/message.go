package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param} characters",
	"min":      "{field} must be at least {param} characters",
	"email":    "{field} must be a valid email address",
	"url":      "{field} must be a valid URL",
	"datetime": "{field} must match the layout {param}",
	"phone":    "{field} must be a phone number",
	"tavola":   "{field} is not a recognised value",
}

// message renders one sentence per failing field, in struct order.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		tmpl, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		replacer := strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param())
		parts = append(parts, replacer.Replace(tmpl))
	}

	return strings.Join(parts, messageSeparator)
}
