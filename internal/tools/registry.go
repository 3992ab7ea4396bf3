package tools

import (
	"sync"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/store"
)

// Registry is a threadsafe storage for LLMTools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]LLMTool
}

// NewRegistry returns an empty tools registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]LLMTool)}
}

// NewCustomerRegistry returns a registry holding the full customer toolset
// bound to s.
func NewCustomerRegistry(s *store.Client) *Registry {
	r := NewRegistry()
	for _, t := range All(s) {
		r.Set(t.Specification().Name, t)
	}
	return r
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (LLMTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Set registers tool under the provided name.
func (r *Registry) Set(name string, t LLMTool) {
	r.mu.Lock()
	r.tools[name] = t
	r.mu.Unlock()
}

// All returns a copy of all registered tools keyed by name.
func (r *Registry) All() map[string]LLMTool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make(map[string]LLMTool, len(r.tools))
	for k, v := range r.tools {
		cp[k] = v
	}
	return cp
}

// Specifications of all registered tools, later on sent to the
// completions endpoint
func (r *Registry) Specifications() []models.Specification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]models.Specification, 0, len(r.tools))
	for _, t := range r.tools {
		specs = append(specs, t.Specification())
	}
	return specs
}

// Reset removes all registered tools. Primarily used for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.tools = make(map[string]LLMTool)
	r.mu.Unlock()
}
