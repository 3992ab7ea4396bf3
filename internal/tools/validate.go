package tools

import (
	"fmt"
	"net/mail"

	"github.com/baalimago/dbai/internal/models"
)

// validateInputs checks input against the required fields of spec. All
// missing fields are gathered into one ValidationError, so that the model
// may correct the whole call in a single retry.
func validateInputs(spec models.Specification, input models.Input) error {
	if spec.Inputs == nil {
		return nil
	}
	fieldsMissing := make([]string, 0)
	for _, required := range spec.Inputs.Required {
		val, exists := input[required]
		if !exists {
			fieldsMissing = append(fieldsMissing, required)
			continue
		}
		str, isString := val.(string)
		if !isString || str == "" {
			fieldsMissing = append(fieldsMissing, required)
		}
	}
	if len(fieldsMissing) > 0 {
		return models.NewValidationError(fieldsMissing)
	}
	return nil
}

// emailField extracts and sanity-checks the email argument, which every
// customer tool uses as its lookup key
func emailField(input models.Input) (string, error) {
	email, isString := input["email"].(string)
	if !isString || email == "" {
		return "", models.NewValidationError([]string{"email"})
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", models.NewMalformedFieldError("email", fmt.Sprintf("'%v' is not a valid email address", email))
	}
	return email, nil
}

// optionalString returns the field as *string when present, nil when absent
func optionalString(input models.Input, field string) (*string, error) {
	val, exists := input[field]
	if !exists || val == nil {
		return nil, nil
	}
	str, isString := val.(string)
	if !isString {
		return nil, models.NewMalformedFieldError(field, "must be a string")
	}
	return &str, nil
}
