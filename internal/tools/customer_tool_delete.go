package tools

import (
	"context"
	"fmt"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/store"
)

var deleteSpec = models.Specification{
	Name:        "delete_customer",
	Description: "Delete a customer record, looked up by email address.",
	Inputs: &models.InputSchema{
		Type: "object",
		Properties: map[string]models.ParameterObject{
			"email": {
				Type:        "string",
				Description: "The email address of the customer to delete.",
			},
		},
		Required: []string{"email"},
	},
}

type DeleteTool struct {
	store *store.Client
}

func NewDelete(s *store.Client) DeleteTool {
	return DeleteTool{store: s}
}

func (t DeleteTool) Call(ctx context.Context, input models.Input) (string, error) {
	if err := validateInputs(deleteSpec, input); err != nil {
		return "", err
	}
	email, err := emailField(input)
	if err != nil {
		return "", err
	}
	removed, err := t.store.DeleteByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("deleted %v", removed), nil
}

func (t DeleteTool) Specification() models.Specification {
	return deleteSpec
}
