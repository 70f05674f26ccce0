package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chatbot "github.com/ic1618/chat-bot"
	"github.com/ic1618/chat-bot/internal/logging"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// GraphURI is the resource exposing the Mermaid diagram of the menu.
const GraphURI = "chatbot://graph"

// TurnResponse is the structured result of the respond tool.
type TurnResponse struct {
	Outcome  domain.Outcome `json:"outcome" jsonschema_description:"greeted, moved, rejected or failed"`
	Messages []any          `json:"messages" jsonschema_description:"The reply in wire form: notes as strings, option lists as arrays"`
	Options  []string       `json:"options,omitempty" jsonschema_description:"Every label that can be sent next"`
}

// Bot is the chat surface exposed over MCP.
type Bot interface {
	Respond(ctx context.Context, text string) domain.Response
	View() domain.Render
	Graph() string
	Greeted() bool
	Reset()
}

// Server wraps a Bot and exposes it as an MCP Server.
type Server struct {
	bot       Bot
	logger    *slog.Logger
	sanitizer *runner.Sanitizer
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxInputSize limits the size of the text argument.
func WithMaxInputSize(size int) Option {
	return func(s *Server) {
		s.sanitizer = runner.NewSanitizer(size)
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(bot Bot, opts ...Option) *Server {
	s := &Server{
		bot:       bot,
		logger:    logging.NewNop(),
		sanitizer: &runner.Sanitizer{},
		mcpServer: server.NewMCPServer("chatbot-mcp", strings.TrimSpace(chatbot.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on addr using SSE and stops when ctx ends.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: respond
	respondTool := mcp.NewTool("respond",
		mcp.WithDescription("Send the user's text to the stock chatbot and get its reply. The first call of a conversation always returns the welcome message and the list of stock exchanges; afterwards the text must be one of the offered options."),
		mcp.WithString("text", mcp.Required(), mcp.Description("An option label, e.g. an exchange name, a stock name, \"Menu\" or \"Go back\"")),
		mcp.WithOutputSchema[TurnResponse](),
	)
	s.mcpServer.AddTool(respondTool, mcp.NewStructuredToolHandler(s.handleRespond))

	// TOOL: current_view
	s.mcpServer.AddTool(mcp.NewTool("current_view",
		mcp.WithDescription("Show the current menu without sending anything."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.bot.View())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: reset
	s.mcpServer.AddTool(mcp.NewTool("reset",
		mcp.WithDescription("Start the conversation over; the next respond call greets again."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.bot.Reset()
		return mcp.NewToolResultText("conversation reset"), nil
	})
}

func (s *Server) handleRespond(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (TurnResponse, error) {
	text, _ := args["text"].(string)

	if s.bot.Greeted() {
		if _, err := s.sanitizer.Clean(text); err != nil {
			s.logger.Warn("MCP Respond: Input rejected", "err", err, "size", len(text))
			return TurnResponse{}, fmt.Errorf("input rejected: %w", err)
		}
	}

	resp := s.bot.Respond(ctx, text)
	out := TurnResponse{
		Outcome:  resp.Outcome,
		Messages: resp.Messages(),
	}
	if resp.View != nil {
		out.Options = append(append([]string{}, resp.View.Choices...), shortcutLabels(resp.View)...)
	}
	return out, nil
}

func shortcutLabels(r *domain.Render) []string {
	if r.Shortcuts == nil {
		return nil
	}
	return r.Shortcuts.Labels
}

func (s *Server) registerResources() {
	// EXPOSE: chatbot://graph
	s.mcpServer.AddResource(mcp.NewResource(GraphURI, "Menu Graph",
		mcp.WithResourceDescription("Mermaid diagram of the menu with the current position highlighted"),
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GraphURI,
				MIMEType: "text/plain",
				Text:     s.bot.Graph(),
			},
		}, nil
	})
}
