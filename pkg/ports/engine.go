package ports

import (
	"context"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// Navigator is a stateful cursor over the node hierarchy.
type Navigator interface {
	// Select follows label from the current node.
	Select(ctx context.Context, label string) (domain.Node, domain.Render, error)

	// Current returns the node under the cursor.
	Current() domain.Node

	// Reset moves the cursor back to the root.
	Reset()
}

// Responder turns raw user text into the next message of the conversation.
type Responder interface {
	Respond(ctx context.Context, text string) domain.Response
}
