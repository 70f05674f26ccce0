package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ic1618/chat-bot/internal/logging"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/ports"
)

// Fixed messages of the conversation.
const (
	WelcomeMessage     = "Hello! Welcome to LSEG. I am here to help you."
	UnavailableMessage = "Sorry, this option is not available. Please try again."
	FailureMessage     = "Sorry, we encountered an issue. Please try again later."
)

// Chat wraps one navigator and remembers whether the user has been greeted.
type Chat struct {
	mu      sync.Mutex
	nav     ports.Navigator
	greeted bool
	logger  *slog.Logger
}

// Option configures the Chat.
type Option func(*Chat)

// WithLogger configures a logger for the Chat.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chat) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChat creates a chat session over nav.
func NewChat(nav ports.Navigator, opts ...Option) *Chat {
	c := &Chat{
		nav:    nav,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Respond produces the next message for text.
//
// The first call ignores text and returns the welcome message with the root
// menu. Afterwards text is a selection: an unknown label re-shows the current
// menu behind an "unavailable" note, an internal failure returns only the
// failure message, and a valid label returns the new node's menu.
func (c *Chat) Respond(ctx context.Context, text string) domain.Response {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.greeted {
		c.greeted = true
		view := c.nav.Current().Render()
		return domain.Response{Outcome: domain.OutcomeGreeted, Preamble: WelcomeMessage, View: &view}
	}

	_, view, err := c.nav.Select(ctx, text)
	if err == nil {
		return domain.Response{Outcome: domain.OutcomeMoved, View: &view}
	}

	var selErr *domain.SelectionError
	if errors.As(err, &selErr) {
		c.logger.Info("option not available", "label", text, "node_id", selErr.Node)
		current := c.nav.Current().Render()
		return domain.Response{Outcome: domain.OutcomeRejected, Preamble: UnavailableMessage, View: &current}
	}

	c.logger.Error("failed to process selection", "label", text, "err", err)
	return domain.Response{Outcome: domain.OutcomeFailed, Failure: FailureMessage}
}

// View returns the current menu without consuming a turn.
func (c *Chat) View() domain.Render {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nav.Current().Render()
}

// Greeted reports whether the welcome message has been sent.
func (c *Chat) Greeted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.greeted
}

// Reset starts the conversation over: the next turn greets again from the root.
func (c *Chat) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.greeted = false
	c.nav.Reset()
}

// WithLock runs fn while holding the session lock, so that fn observes no
// concurrent turn. fn must not call back into the Chat.
func (c *Chat) WithLock(fn func(nav ports.Navigator)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.nav)
}
