package runner

import (
	"context"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Output presents one chat response to the user.
	Output(ctx context.Context, resp domain.Response) error

	// Input reads the next line from the user, without its line terminator.
	// It returns io.EOF once the source is exhausted and ctx.Err() when ctx ends first.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (e.g. a rejected input) that is
	// not part of the conversation.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms a response into terminal text.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(domain.Response) (string, error)
