package chatbot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ic1618/chat-bot/internal/compiler"
	"github.com/ic1618/chat-bot/internal/logging"
	"github.com/ic1618/chat-bot/internal/presentation/graph"
	"github.com/ic1618/chat-bot/internal/runtime"
	"github.com/ic1618/chat-bot/internal/validator"
	"github.com/ic1618/chat-bot/pkg/adapters/file"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/ports"
	"github.com/ic1618/chat-bot/pkg/session"
)

// Bot is the high-level entry point of the library.
// It wires a catalog loader, the navigation engine and a chat session, and is
// safe for concurrent use: every turn goes through the session lock.
type Bot struct {
	chat      *session.Chat
	engine    *runtime.Engine
	hierarchy *domain.Hierarchy
	loader    ports.CatalogLoader
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Bot.
type Option func(*Bot)

// WithLoader injects a custom CatalogLoader, bypassing the default file loader.
func WithLoader(l ports.CatalogLoader) Option {
	return func(b *Bot) {
		b.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine and the session.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bot) {
		b.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(b *Bot) {
		b.hooks = hooks
	}
}

// New loads the catalog and builds a ready-to-chat Bot.
// By default, it reads the JSON or YAML file at dataPath (data/stock-data.json
// when empty). If WithLoader option is provided, dataPath is ignored.
// A malformed catalog fails with an error wrapping *domain.ParseError.
func New(ctx context.Context, dataPath string, opts ...Option) (*Bot, error) {
	b := &Bot{}
	for _, opt := range opts {
		opt(b)
	}

	if b.loader == nil {
		b.loader = file.New(dataPath)
	}
	if b.logger == nil {
		b.logger = logging.NewNop()
	}

	records, err := b.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	h, err := compiler.Build(records)
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog: %w", err)
	}

	b.hierarchy = h
	b.engine = runtime.NewEngine(h,
		runtime.WithLogger(b.logger),
		runtime.WithLifecycleHooks(b.hooks),
	)
	b.chat = session.NewChat(b.engine, session.WithLogger(b.logger))

	b.logger.Debug("catalog compiled", "nodes", h.Len())
	return b, nil
}

// Respond answers one turn of the conversation.
func (b *Bot) Respond(ctx context.Context, text string) domain.Response {
	return b.chat.Respond(ctx, text)
}

// View returns the current menu without consuming a turn.
func (b *Bot) View() domain.Render {
	return b.chat.View()
}

// Greeted reports whether the welcome message has been sent.
func (b *Bot) Greeted() bool {
	return b.chat.Greeted()
}

// Reset starts the conversation over from the root.
func (b *Bot) Reset() {
	b.chat.Reset()
}

// State returns a copy of the traversal state.
func (b *Bot) State() *domain.State {
	var state *domain.State
	b.chat.WithLock(func(ports.Navigator) {
		state = b.engine.State()
	})
	return state
}

// Graph returns a Mermaid diagram of the hierarchy with the current path
// highlighted and the shortcuts bound so far.
func (b *Bot) Graph() string {
	var out string
	b.chat.WithLock(func(ports.Navigator) {
		state := b.engine.State()
		out = graph.GenerateMermaid(b.hierarchy, &graph.GraphOverlay{
			VisitedNodes: state.Visited,
			CurrentNode:  state.Current,
		})
	})
	return out
}

// Validate checks the structure of the hierarchy and returns its counts.
func (b *Bot) Validate() (validator.Stats, error) {
	var (
		stats validator.Stats
		err   error
	)
	b.chat.WithLock(func(ports.Navigator) {
		stats, err = validator.ValidateHierarchy(b.hierarchy)
	})
	return stats, err
}

// Hierarchy returns the compiled node hierarchy.
// Shortcut slots change while the conversation runs; read them through Graph
// or Validate when a turn may be in flight.
func (b *Bot) Hierarchy() *domain.Hierarchy {
	return b.hierarchy
}

// Loader returns the CatalogLoader the bot was built from.
func (b *Bot) Loader() ports.CatalogLoader {
	return b.loader
}
