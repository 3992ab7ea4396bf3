package tools

import (
	"context"
	"fmt"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/store"
)

var createSpec = models.Specification{
	Name:        "create_customer",
	Description: "Create a new customer record with email, full name and bio. Fails if the email is already taken.",
	Inputs: &models.InputSchema{
		Type: "object",
		Properties: map[string]models.ParameterObject{
			"email": {
				Type:        "string",
				Description: "The customer's email address. Must be unused.",
			},
			"full_name": {
				Type:        "string",
				Description: "The customer's full name.",
			},
			"bio": {
				Type:        "string",
				Description: "A short biography of the customer.",
			},
		},
		Required: []string{"email", "full_name", "bio"},
	},
}

type CreateTool struct {
	store *store.Client
}

func NewCreate(s *store.Client) CreateTool {
	return CreateTool{store: s}
}

func (t CreateTool) Call(ctx context.Context, input models.Input) (string, error) {
	if err := validateInputs(createSpec, input); err != nil {
		return "", err
	}
	email, err := emailField(input)
	if err != nil {
		return "", err
	}
	fullName := input["full_name"].(string)
	bio := input["bio"].(string)
	created, err := t.store.Create(ctx, email, fullName, bio)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("created %v", created), nil
}

func (t CreateTool) Specification() models.Specification {
	return createSpec
}
