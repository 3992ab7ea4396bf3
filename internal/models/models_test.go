package models

import (
	"strings"
	"testing"
)

func TestFirstSystemMessage(t *testing.T) {
	chat := Chat{
		Messages: []Message{
			{Role: "user", Content: "hi"},
			{Role: "system", Content: "first"},
			{Role: "system", Content: "second"},
		},
	}
	msg, err := chat.FirstSystemMessage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != "first" {
		t.Errorf("expected 'first', got %q", msg.Content)
	}

	empty := Chat{}
	if _, err := empty.FirstSystemMessage(); err == nil {
		t.Error("expected error for chat without system message")
	}
}

func TestFirstUserMessage(t *testing.T) {
	chat := Chat{
		Messages: []Message{
			{Role: "system", Content: "sys"},
			{Role: "user", Content: "question"},
		},
	}
	msg, err := chat.FirstUserMessage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != "question" {
		t.Errorf("expected 'question', got %q", msg.Content)
	}
}

func TestLastOfRole(t *testing.T) {
	chat := Chat{
		Messages: []Message{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "reply"},
			{Role: "user", Content: "last"},
		},
	}
	msg, idx, err := chat.LastOfRole("user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != "last" || idx != 2 {
		t.Errorf("expected 'last' at index 2, got %q at %v", msg.Content, idx)
	}
	if _, _, err := chat.LastOfRole("tool"); err == nil {
		t.Error("expected error for missing role")
	}
}

func TestValidationError_DeterministicPrint(t *testing.T) {
	err := NewValidationError([]string{"full_name", "bio", "email"})
	want := "validation error, fields missing: [bio email full_name]"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestMalformedFieldError(t *testing.T) {
	err := NewMalformedFieldError("email", "'nope' is not a valid email address")
	if !strings.Contains(err.Error(), "email") || !strings.Contains(err.Error(), "nope") {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}
