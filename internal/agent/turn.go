package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/baalimago/dbai/internal/models"
	"github.com/baalimago/dbai/internal/store"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
)

// Turn resolves one instruction: at most one executed operation, then a
// natural-language summary. Malformed tool arguments are bounced back to
// the model up to the retry bound. Domain errors flow back to the model
// verbatim so the reply can name the exact violation. Transport errors
// abort the turn with no partial mutation.
func (q *Querier) Turn(ctx context.Context, instruction string) (string, error) {
	q.appendMessage(models.Message{Role: "user", Content: instruction})

	argFailures := 0
	amToolCalls := 0
	// Hard bound on model round trips per turn, so that a misbehaving
	// model can't spin the loop forever
	maxLoops := q.maxArgRetries + 4
	for loops := 0; loops < maxLoops; loops++ {
		msg, err := q.completer.Complete(ctx, q.chat)
		if err != nil {
			return "", fmt.Errorf("failed to query chat model: %w", err)
		}
		if len(msg.ToolCalls) == 0 {
			q.appendMessage(msg)
			return msg.Content, nil
		}

		call := msg.ToolCalls[0]
		call.Patch()
		if q.debug {
			ancli.Okf("received tool call: %v\n", debug.IndentedJsonFmt(call))
		}
		fmt.Fprintf(q.out, "%v\n", ancli.ColoredMessage(ancli.MAGENTA, call.PrettyPrint()))
		q.appendMessage(models.Message{
			Role:      "assistant",
			Content:   call.PrettyPrint(),
			ToolCalls: []models.Call{call},
		})

		if amToolCalls >= 1 {
			// Soft block, one operation per instruction
			q.appendToolOutput(call.ID, errMsg("no more operations allowed for this instruction, summarize the outcome instead"))
			continue
		}

		out, err := q.invoke(ctx, call)
		switch {
		case err == nil:
			amToolCalls++
			q.appendToolOutput(call.ID, out)
		case isValidationError(err):
			argFailures++
			// Answer the call even when giving up, a dangling tool call
			// makes the chat unusable for any later turn
			q.appendToolOutput(call.ID, errMsg("%v", err))
			if argFailures > q.maxArgRetries {
				return "", fmt.Errorf("tool call retry bound (%v) exhausted: %w", q.maxArgRetries, err)
			}
		case isDomainError(err):
			// Executed against the store, business rule said no. The
			// model gets the verbatim violation to phrase the reply
			amToolCalls++
			q.appendToolOutput(call.ID, errMsg("%v", err))
		default:
			q.appendToolOutput(call.ID, errMsg("data service failure"))
			if q.debug {
				ancli.Warnf("data service failure: %v\n", err)
			}
			return "", turnFatalError{msg: "data service failure, please retry", cause: err}
		}
	}
	return "", fmt.Errorf("instruction not resolved within %v model round trips", maxLoops)
}

// turnFatalError aborts the turn with a presentable message. The raw
// underlying failure stays reachable through the error chain but never
// shows up in user-facing output.
type turnFatalError struct {
	msg   string
	cause error
}

func (e turnFatalError) Error() string {
	return e.msg
}

func (e turnFatalError) Unwrap() error {
	return e.cause
}

func (q *Querier) invoke(ctx context.Context, call models.Call) (string, error) {
	t, exists := q.registry.Get(call.Name)
	if !exists {
		return "", models.NewMalformedFieldError("tool", fmt.Sprintf("unknown tool: '%v'", call.Name))
	}
	inp := models.Input{}
	if call.Inputs != nil {
		inp = *call.Inputs
	}
	return t.Call(ctx, inp)
}

func isValidationError(err error) bool {
	var valErr models.ValidationError
	return errors.As(err, &valErr)
}

func isDomainError(err error) bool {
	var notFound store.NotFoundError
	var duplicate store.DuplicateError
	return errors.As(err, &notFound) || errors.As(err, &duplicate)
}
