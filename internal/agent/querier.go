// Package agent maps one natural-language instruction per turn to at most
// one executed CRUD operation, and phrases the outcome back in natural
// language.
package agent

import (
	"fmt"
	"io"
	"os"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/tools"
)

const systemPrompt = `You are a customer service agent for a tech company. Use the tools provided to assist with customer record management.

You have access to the following operations on customer records:
- create_customer: Create a new customer record with email, full_name and bio
- retrieve_customer: Look up a customer record by email address
- update_customer: Update a customer's full_name and/or bio using their email
- delete_customer: Delete a customer record by email address

Perform at most one operation per instruction. If no operation applies,
answer conversationally. Always be helpful and professional, and provide
clear feedback about what was accomplished.`

const defaultMaxArgRetries = 3

// Querier owns one conversational session. It is not safe for concurrent
// use: a turn is fully resolved before the next one is accepted.
type Querier struct {
	completer     models.Completer
	registry      *tools.Registry
	chat          models.Chat
	maxArgRetries int
	out           io.Writer
	debug         bool
}

type Option func(*Querier)

func New(completer models.Completer, registry *tools.Registry, options ...Option) *Querier {
	q := &Querier{
		completer:     completer,
		registry:      registry,
		maxArgRetries: defaultMaxArgRetries,
		out:           os.Stdout,
		chat: models.Chat{
			ID: "session",
			Messages: []models.Message{
				{Role: "system", Content: systemPrompt},
			},
		},
	}
	for _, o := range options {
		o(q)
	}
	return q
}

// WithMaxArgRetries sets how many malformed tool calls are bounced back to
// the model within one turn before the failure surfaces to the user
func WithMaxArgRetries(am int) Option {
	return func(q *Querier) {
		q.maxArgRetries = am
	}
}

func WithSystemPrompt(prompt string) Option {
	return func(q *Querier) {
		q.chat.Messages = []models.Message{{Role: "system", Content: prompt}}
	}
}

func WithOutput(out io.Writer) Option {
	return func(q *Querier) {
		q.out = out
	}
}

func WithDebug(debugEnabled bool) Option {
	return func(q *Querier) {
		q.debug = debugEnabled
	}
}

// Chat returns a copy of the running conversation
func (q *Querier) Chat() models.Chat {
	cpy := q.chat
	cpy.Messages = make([]models.Message, len(q.chat.Messages))
	copy(cpy.Messages, q.chat.Messages)
	return cpy
}

func (q *Querier) appendMessage(msg models.Message) {
	q.chat.Messages = append(q.chat.Messages, msg)
}

func (q *Querier) appendToolOutput(callID, content string) {
	// Chatgpt doesn't like tool responses which yield no output
	if content == "" {
		content = "<EMPTY-RESPONSE>"
	}
	q.appendMessage(models.Message{
		Role:       "tool",
		Content:    content,
		ToolCallID: callID,
	})
}

func errMsg(format string, args ...any) string {
	return fmt.Sprintf("ERROR: %v", fmt.Sprintf(format, args...))
}
