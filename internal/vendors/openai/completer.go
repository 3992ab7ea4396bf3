// Package openai holds a chat completions client for OpenAI-compatible
// endpoints, with native function calling. Completions are not streamed:
// one turn is one blocking round trip, and the response is either
// assistant text or a single tool call.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
)

const ChatURL = "https://api.openai.com/v1/chat/completions"

type Completer struct {
	Model       string
	URL         string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int

	apiKey string
	client *http.Client
	tools  []toolSuper
	debug  bool
}

func New(apiKey, model string, debugEnabled bool) (*Completer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key not set")
	}
	return &Completer{
		Model:  model,
		URL:    ChatURL,
		apiKey: apiKey,
		client: &http.Client{},
		debug:  debugEnabled,
	}, nil
}

// RegisterTool adds spec to the tool schemas sent on every completion
func (c *Completer) RegisterTool(spec models.Specification) {
	inputs := models.InputSchema{}
	if spec.Inputs != nil {
		inputs = *spec.Inputs
	}
	inputs.Patch()
	c.tools = append(c.tools, toolSuper{
		Type: "function",
		Function: tool{
			Name:        spec.Name,
			Description: spec.Description,
			Inputs:      inputs,
		},
	})
}

// Complete runs one chat completion round trip. The returned message
// carries at most one tool call, since parallel calls are disabled.
func (c *Completer) Complete(ctx context.Context, chat models.Chat) (models.Message, error) {
	httpReq, err := c.createRequest(ctx, chat)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to create request: %w", err)
	}
	res, err := c.client.Do(httpReq)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to read response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return models.Message{}, fmt.Errorf("unexpected status code: %v, body: %v", res.Status, string(body))
	}

	var completion chatCompletion
	if err := json.Unmarshal(body, &completion); err != nil {
		return models.Message{}, fmt.Errorf("failed to unmarshal completion: %w", err)
	}
	if c.debug {
		ancli.Okf("completion: %v\n", debug.IndentedJsonFmt(completion))
	}
	if len(completion.Choices) == 0 {
		return models.Message{}, fmt.Errorf("completion holds no choices, body: %v", string(body))
	}
	return convertWireMessage(completion.Choices[0].Message), nil
}

func (c *Completer) createRequest(ctx context.Context, chat models.Chat) (*http.Request, error) {
	reqData := req{
		Model:       c.Model,
		Messages:    convertMessages(chat.Messages),
		Temperature: c.Temperature,
		TopP:        c.TopP,
		MaxTokens:   c.MaxTokens,
	}
	if len(c.tools) > 0 {
		toolChoice := "auto"
		parallel := false
		reqData.Tools = c.tools
		reqData.ToolChoice = &toolChoice
		// The toolset resolves to at most one operation per turn
		reqData.ParallelToolCalls = &parallel
	}
	if c.debug {
		ancli.Okf("completion request: %v\n", debug.IndentedJsonFmt(reqData))
	}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %v", c.apiKey))
	return httpReq, nil
}

func convertMessages(msgs []models.Message) []wireMessage {
	wire := make([]wireMessage, 0, len(msgs))
	for _, m := range msgs {
		wm := wireMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
		}
		for _, call := range m.ToolCalls {
			call.Patch()
			wm.ToolCalls = append(wm.ToolCalls, wireToolCall{
				ID:   call.ID,
				Type: call.Type,
				Function: wireFunc{
					Name:      call.Function.Name,
					Arguments: call.Function.Arguments,
				},
			})
		}
		wire = append(wire, wm)
	}
	return wire
}

// convertWireMessage into a models.Message, parsing the stringified JSON
// arguments of the first tool call, if any. Unparsable arguments yield a
// call with empty inputs, which the dispatcher's validation will bounce
// back to the model.
func convertWireMessage(wm wireMessage) models.Message {
	msg := models.Message{
		Role:    wm.Role,
		Content: wm.Content,
	}
	if len(wm.ToolCalls) == 0 {
		return msg
	}
	wc := wm.ToolCalls[0]
	input := models.Input{}
	// Arguments are sent as stringified json
	_ = json.Unmarshal([]byte(wc.Function.Arguments), &input)
	msg.ToolCalls = []models.Call{{
		ID:     wc.ID,
		Name:   wc.Function.Name,
		Type:   "function",
		Inputs: &input,
		Function: models.Specification{
			Name:      wc.Function.Name,
			Arguments: wc.Function.Arguments,
		},
	}}
	return msg
}
