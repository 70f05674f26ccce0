package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/ic1618/chat-bot/internal/logging"
	"github.com/ic1618/chat-bot/pkg/domain"
)

// Engine is the navigation state machine.
// It holds the hierarchy root and a cursor to the current node.
// An Engine is not safe for concurrent use; callers serialise access.
type Engine struct {
	hierarchy *domain.Hierarchy
	state     *domain.State
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	now       func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine positioned at the root of h.
func NewEngine(h *domain.Hierarchy, opts ...EngineOption) *Engine {
	e := &Engine{
		hierarchy: h,
		state:     domain.NewState(h.RootID()),
		logger:    logging.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Hierarchy returns the hierarchy the engine navigates.
func (e *Engine) Hierarchy() *domain.Hierarchy {
	return e.hierarchy
}

// Current returns the node under the cursor.
func (e *Engine) Current() domain.Node {
	node, err := e.hierarchy.Node(e.state.Current)
	if err != nil {
		// The cursor only ever holds ids resolved through the hierarchy.
		return e.hierarchy.Root()
	}
	return node
}

// State returns a copy of the traversal state.
func (e *Engine) State() *domain.State {
	return e.state.Snapshot()
}

// Render renders the current node without moving.
func (e *Engine) Render(ctx context.Context) domain.Render {
	return e.Current().Render()
}

// Reset moves the cursor back to the root and clears the history.
// Shortcuts already bound on nodes are kept.
func (e *Engine) Reset() {
	e.state = domain.NewState(e.hierarchy.RootID())
}
