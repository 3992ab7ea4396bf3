package openai

import "github.com/baalimago/dbai/internal/models"

type req struct {
	Model             string        `json:"model"`
	Messages          []wireMessage `json:"messages"`
	Temperature       *float64      `json:"temperature,omitempty"`
	TopP              *float64      `json:"top_p,omitempty"`
	MaxTokens         *int          `json:"max_tokens,omitempty"`
	Tools             []toolSuper   `json:"tools,omitempty"`
	ToolChoice        *string       `json:"tool_choice,omitempty"`
	ParallelToolCalls *bool         `json:"parallel_tool_calls,omitempty"`
}

// wireMessage is models.Message shaped the way the completions endpoint
// wants it, with tool calls nested under 'function'
type wireMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type wireToolCall struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Function wireFunc `json:"function"`
}

type wireFunc struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type toolSuper struct {
	Type     string `json:"type"`
	Function tool   `json:"function"`
}

type tool struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Inputs      models.InputSchema `json:"parameters"`
}

type chatCompletion struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int      `json:"created"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
}

type choice struct {
	Index        int         `json:"index"`
	Message      wireMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}
