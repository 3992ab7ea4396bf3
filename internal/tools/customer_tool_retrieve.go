package tools

import (
	"context"
	"fmt"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/store"
)

var retrieveSpec = models.Specification{
	Name:        "retrieve_customer",
	Description: "Look up a customer record by email address.",
	Inputs: &models.InputSchema{
		Type: "object",
		Properties: map[string]models.ParameterObject{
			"email": {
				Type:        "string",
				Description: "The email address of the customer to look up.",
			},
		},
		Required: []string{"email"},
	},
}

type RetrieveTool struct {
	store *store.Client
}

func NewRetrieve(s *store.Client) RetrieveTool {
	return RetrieveTool{store: s}
}

func (t RetrieveTool) Call(ctx context.Context, input models.Input) (string, error) {
	if err := validateInputs(retrieveSpec, input); err != nil {
		return "", err
	}
	email, err := emailField(input)
	if err != nil {
		return "", err
	}
	cust, found, err := t.store.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	// An absent record is a normal outcome for a lookup, not an error
	if !found {
		return fmt.Sprintf("no customer found with email: '%v'", email), nil
	}
	return fmt.Sprintf("found %v, created at: %v", cust, cust.CreatedAt), nil
}

func (t RetrieveTool) Specification() models.Specification {
	return retrieveSpec
}
