package models

import (
	"strings"
	"testing"
)

func TestCallPatch(t *testing.T) {
	inputs := Input{"email": "a@x.com"}
	c := Call{ID: "id-0", Name: "retrieve_customer", Inputs: &inputs}
	c.Patch()
	if c.Type != "function" {
		t.Errorf("expected type 'function', got %q", c.Type)
	}
	if c.Function.Name != "retrieve_customer" {
		t.Errorf("expected function name propagated, got %q", c.Function.Name)
	}
	if c.Function.Arguments == "" {
		t.Error("expected arguments to be filled")
	}
}

func TestCallPatch_EmptyName(t *testing.T) {
	c := Call{}
	c.Patch()
	if c.Name != "EMPTY-STRING" {
		t.Errorf("expected placeholder name, got %q", c.Name)
	}
}

func TestCallPrettyPrint(t *testing.T) {
	inputs := Input{"email": "a@x.com"}
	c := Call{Name: "delete_customer", Inputs: &inputs}
	got := c.PrettyPrint()
	if !strings.Contains(got, "delete_customer") || !strings.Contains(got, "'email': 'a@x.com'") {
		t.Errorf("unexpected pretty print: %q", got)
	}
}

func TestInputSchemaPatch(t *testing.T) {
	is := InputSchema{}
	is.Patch()
	if is.Type != "object" {
		t.Errorf("expected type 'object', got %q", is.Type)
	}
	if is.Required == nil || is.Properties == nil {
		t.Error("expected required and properties to be initialized")
	}
}
