package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ic1618/chat-bot/pkg/domain"
)

// Markdown formats a response as a markdown document: notes as paragraphs,
// choices as a bullet list, the shortcut block as a quoted note and list.
func Markdown(resp domain.Response) string {
	var sb strings.Builder
	if resp.Outcome == domain.OutcomeFailed {
		fmt.Fprintf(&sb, "**%s**\n", resp.Failure)
		return sb.String()
	}
	if resp.Preamble != "" {
		fmt.Fprintf(&sb, "%s\n\n", resp.Preamble)
	}
	if resp.View == nil {
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s\n\n", resp.View.Prompt)
	for _, c := range resp.View.Choices {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	if len(resp.View.Choices) > 0 {
		sb.WriteString("\n")
	}
	if s := resp.View.Shortcuts; s != nil {
		fmt.Fprintf(&sb, "> %s\n\n", s.Disclaimer)
		for _, l := range s.Labels {
			fmt.Fprintf(&sb, "- *%s*\n", l)
		}
	}
	return sb.String()
}

// NewRenderer returns a function that renders responses using glamour.
// It falls back to the raw markdown if the terminal renderer cannot be built.
func NewRenderer() func(domain.Response) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(resp domain.Response) (string, error) {
		md := Markdown(resp)
		if err != nil {
			return md, nil
		}
		return r.Render(md)
	}
}
