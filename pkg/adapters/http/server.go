package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ic1618/chat-bot/internal/logging"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// FieldMessage is the form field carrying the user's text on POST /get.
const FieldMessage = "msg"

//go:embed index.html
var indexHTML []byte

// Bot is the chat surface served over HTTP.
type Bot interface {
	Respond(ctx context.Context, text string) domain.Response
	View() domain.Render
	Graph() string
	Greeted() bool
}

// Server serves one shared conversation.
type Server struct {
	Bot       Bot
	Logger    *slog.Logger
	Gatherer  prometheus.Gatherer
	Sanitizer *runner.Sanitizer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithMaxInputSize limits the size of the msg field.
func WithMaxInputSize(size int) Option {
	return func(s *Server) {
		s.Sanitizer = runner.NewSanitizer(size)
	}
}

// NewHandler creates a new HTTP handler for the bot.
func NewHandler(bot Bot, opts ...Option) http.Handler {
	server := &Server{
		Bot:       bot,
		Logger:    logging.NewNop(),
		Sanitizer: &runner.Sanitizer{},
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", server.Index)
	r.Post("/get", server.Chat)
	r.Get("/view", server.View)
	r.Get("/graph", server.GetGraph)
	r.Get("/health", server.GetHealth)
	if server.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Index serves the chat page.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// Chat handles POST /get: one conversation turn for the form field "msg".
// The body is the response in its wire form, a JSON array.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		s.Logger.Warn("Chat: Invalid form body", "err", err)
		return
	}
	if _, ok := r.PostForm[FieldMessage]; !ok {
		http.Error(w, "Missing form field \"msg\"", http.StatusBadRequest)
		s.Logger.Warn("Chat: Missing form field", "field", FieldMessage)
		return
	}

	// The first turn greets whatever the text is, so it is not checked.
	text := r.PostForm.Get(FieldMessage)
	if s.Bot.Greeted() {
		var err error
		if text, err = s.Sanitizer.Clean(text); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			s.Logger.Warn("Chat: Input rejected", "err", err)
			return
		}
	}

	resp := s.Bot.Respond(r.Context(), text)
	s.Logger.Debug("Chat: Turn answered", "input", text, "outcome", resp.Outcome)
	s.writeJSON(w, resp.Messages())
}

// View handles GET /view: the current menu without consuming a turn.
func (s *Server) View(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.Bot.View())
}

// GetGraph handles GET /graph: the Mermaid diagram of the hierarchy.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(s.Bot.Graph()))
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
