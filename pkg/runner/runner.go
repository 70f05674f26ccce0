package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/ic1618/chat-bot/internal/logging"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/ports"
)

// Commands understood by the runner itself. A command is only taken as such
// when the current menu does not offer an option with the same label.
const (
	CommandExit  = "exit"
	CommandQuit  = "quit"
	CommandReset = "/reset"
)

// Resetter is implemented by responders that can start the conversation over.
type Resetter interface {
	Reset()
}

// Viewer is implemented by responders that can show the current menu.
type Viewer interface {
	View() domain.Render
}

// Runner drives one conversation over an IOHandler.
// It greets first, then feeds every checked line to the Responder until
// the input ends, the user exits or the context is cancelled.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Input/Output is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Sanitizer checks every line before it is answered.
	Sanitizer *Sanitizer

	Input    io.Reader
	Output   io.Writer
	Renderer ContentRenderer
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithRenderer configures the content renderer of the default TextHandler.
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithMaxInputSize limits the size of a single line.
func WithMaxInputSize(size int) Option {
	return func(r *Runner) {
		r.Sanitizer = NewSanitizer(size)
	}
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Input:     os.Stdin,
		Output:    os.Stdout,
		Logger:    logging.NewNop(),
		Sanitizer: &Sanitizer{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the conversation loop. Reaching the end of the input, typing
// "exit" and an interrupt all end the loop without error.
func (r *Runner) Run(ctx context.Context, bot ports.Responder) error {
	handler := r.resolveHandler()
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	signals := NewSignalManager(ctx)
	defer signals.Stop()
	ctx = signals.Context()

	if err := handler.Output(ctx, bot.Respond(ctx, "")); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	for {
		line, err := handler.Input(ctx)
		if err != nil {
			signals.CheckRace()
			if ctx.Err() != nil {
				logger.Debug("runner interrupted", "err", ctx.Err())
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		text, err := r.Sanitizer.Clean(line)
		if err != nil {
			logger.Warn("input rejected", "err", err)
			if err := handler.SystemOutput(ctx, fmt.Sprintf("Error: %v. Please try again.", err)); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		command := text
		if offered(bot, text) {
			command = ""
		}

		switch command {
		case CommandExit, CommandQuit:
			return nil
		case CommandReset:
			resetter, ok := bot.(Resetter)
			if !ok {
				if err := handler.SystemOutput(ctx, "reset is not supported"); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				continue
			}
			resetter.Reset()
			logger.Debug("conversation reset")
		}

		resp := bot.Respond(ctx, text)
		logger.Debug("turn answered", "input", text, "outcome", resp.Outcome)
		if err := handler.Output(ctx, resp); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}

// offered reports whether the current menu of bot lists label.
func offered(bot ports.Responder, label string) bool {
	v, ok := bot.(Viewer)
	if !ok {
		return false
	}
	view := v.View()
	if slices.Contains(view.Choices, label) {
		return true
	}
	return view.Shortcuts != nil && slices.Contains(view.Shortcuts.Labels, label)
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	if r.Sanitizer == nil {
		r.Sanitizer = &Sanitizer{}
	}
	var opts []TextHandlerOption
	if r.Renderer != nil {
		opts = append(opts, WithTextHandlerRenderer(r.Renderer))
	}
	// Memoize so that repeated Run calls share the same input pump
	r.Handler = NewTextHandler(r.Input, r.Output, opts...)
	return r.Handler
}
