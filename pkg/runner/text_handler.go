package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer
	Prompt   string

	lines *linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithPrompt replaces the "> " input prompt. An empty prompt prints nothing.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		Prompt: "> ",
		lines:  newLinePump(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, resp domain.Response) error {
	if h.Renderer != nil {
		if rendered, err := h.Renderer(resp); err == nil {
			_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(rendered))
			return err
		}
	}
	_, err := io.WriteString(h.Writer, PlainText(resp))
	return err
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	if h.Prompt != "" && ctx.Err() == nil {
		fmt.Fprint(h.Writer, h.Prompt)
	}
	return h.lines.next(ctx)
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}

// PlainText prints a response one message per line, list entries indented
// with a dash.
func PlainText(resp domain.Response) string {
	var sb strings.Builder
	for _, msg := range resp.Messages() {
		switch m := msg.(type) {
		case string:
			sb.WriteString(m)
			sb.WriteString("\n")
		case []string:
			for _, label := range m {
				fmt.Fprintf(&sb, "  - %s\n", label)
			}
		}
	}
	return sb.String()
}
