package tools

import (
	"context"
	"fmt"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/store"
)

var updateSpec = models.Specification{
	Name:        "update_customer",
	Description: "Update a customer's full name and/or bio, looked up by email address. Only the provided fields are changed.",
	Inputs: &models.InputSchema{
		Type: "object",
		Properties: map[string]models.ParameterObject{
			"email": {
				Type:        "string",
				Description: "The email address of the customer to update.",
			},
			"full_name": {
				Type:        "string",
				Description: "The new full name, if it should change.",
			},
			"bio": {
				Type:        "string",
				Description: "The new bio, if it should change.",
			},
		},
		Required: []string{"email"},
	},
}

type UpdateTool struct {
	store *store.Client
}

func NewUpdate(s *store.Client) UpdateTool {
	return UpdateTool{store: s}
}

func (t UpdateTool) Call(ctx context.Context, input models.Input) (string, error) {
	if err := validateInputs(updateSpec, input); err != nil {
		return "", err
	}
	email, err := emailField(input)
	if err != nil {
		return "", err
	}
	fullName, err := optionalString(input, "full_name")
	if err != nil {
		return "", err
	}
	bio, err := optionalString(input, "bio")
	if err != nil {
		return "", err
	}
	if fullName == nil && bio == nil {
		return "", models.NewValidationError([]string{"full_name or bio"})
	}
	updated, err := t.store.UpdateByEmail(ctx, email, fullName, bio)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("updated %v", updated), nil
}

func (t UpdateTool) Specification() models.Specification {
	return updateSpec
}
