// Package tools holds the fixed CRUD toolset the agent may dispatch to.
// Each tool validates its own arguments against its specification before
// touching the data service, so that a malformed call surfaces as a
// recoverable models.ValidationError instead of a half-done operation.
package tools

import (
	"context"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/store"
)

// LLMTool is a named, schema-validated operation the agent may invoke in
// place of a natural-language reply.
type LLMTool interface {
	// Call the tool with the given Input. Returns human-readable output
	// describing the outcome, or an error. Validation failures are
	// models.ValidationError, business-rule violations are the store's
	// domain errors, anything else is a transport failure.
	Call(context.Context, models.Input) (string, error)

	// Specification returns the schema sent to the completions endpoint
	Specification() models.Specification
}

// All returns the full customer toolset bound to s
func All(s *store.Client) []LLMTool {
	return []LLMTool{
		NewCreate(s),
		NewRetrieve(s),
		NewUpdate(s),
		NewDelete(s),
	}
}
