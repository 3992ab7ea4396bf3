package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"slices"
	"strings"

	"github.com/baalimago/dbai/internal/agent"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

var quitters = []string{"exit", "quit", "q"}

// oneShot resolves a single instruction and prints the response
func oneShot(ctx context.Context, q *agent.Querier, instruction string) error {
	resp, err := q.Turn(ctx, instruction)
	if err != nil {
		return fmt.Errorf("failed to resolve instruction: %w", err)
	}
	printAgentResponse(resp)
	return nil
}

// interactive runs the conversational loop: one instruction in, one
// response out, until 'exit', 'quit', 'q' or end of input. A failed turn
// doesn't end the session, only configuration problems do that.
func interactive(ctx context.Context, q *agent.Querier) error {
	username := "user"
	currentUser, err := user.Current()
	if err == nil {
		username = currentUser.Username
	}
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%v(%v): ", ancli.ColoredMessage(ancli.CYAN, username), "'exit' or 'quit' to quit")
		userInput, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read user input: %w", err)
		}
		instruction := strings.TrimSpace(userInput)
		if slices.Contains(quitters, instruction) || ctx.Err() != nil {
			return nil
		}
		if instruction == "" {
			continue
		}
		resp, err := q.Turn(ctx, instruction)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			ancli.PrintErr(fmt.Sprintf("%v\n", err))
			continue
		}
		printAgentResponse(resp)
	}
}

func printAgentResponse(resp string) {
	fmt.Printf("%v: %v\n", ancli.ColoredMessage(ancli.BLUE, "dbai"), resp)
}
