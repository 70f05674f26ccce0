package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	chatbot "github.com/ic1618/chat-bot"
	"github.com/ic1618/chat-bot/pkg/adapters/memory"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBot(t *testing.T, opts ...chatbot.Option) *chatbot.Bot {
	t.Helper()
	loader := memory.NewFromDescriptors(domain.ExchangeDescriptor{
		Name:      "NYSE",
		TopStocks: []domain.StockDescriptor{{Name: "AAPL", Price: 150}},
	})
	bot, err := chatbot.New(context.Background(), "", append([]chatbot.Option{chatbot.WithLoader(loader)}, opts...)...)
	require.NoError(t, err)
	return bot
}

func post(t *testing.T, h http.Handler, msg string) (*httptest.ResponseRecorder, []any) {
	t.Helper()
	form := url.Values{FieldMessage: {msg}}
	req := httptest.NewRequest("POST", "/get", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body []any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestChat_Scenario(t *testing.T) {
	h := NewHandler(newBot(t))
	shortcuts := []any{"Menu", "Go back"}

	steps := []struct {
		msg  string
		want []any
	}{
		{"anything", []any{"Hello! Welcome to LSEG. I am here to help you.", "Please select a stock exchange:", []any{"NYSE"}}},
		{"NYSE", []any{"You selected NYSE. Please select a stock:", []any{"AAPL"}, "If you do not wish to proceed, then please select one of the following:", shortcuts}},
		{"AAPL", []any{"Stock price of AAPL is 150.0", "Please choose one of the following:", shortcuts}},
		{"Go back", []any{"You selected NYSE. Please select a stock:", []any{"AAPL"}, "If you do not wish to proceed, then please select one of the following:", shortcuts}},
		{"bogus", []any{"Sorry, this option is not available. Please try again.", "You selected NYSE. Please select a stock:", []any{"AAPL"}, "If you do not wish to proceed, then please select one of the following:", shortcuts}},
	}

	for _, step := range steps {
		w, body := post(t, h, step.msg)
		require.Equal(t, http.StatusOK, w.Code, "msg %q", step.msg)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, step.want, body, "msg %q", step.msg)
	}
}

func TestChat_BadRequests(t *testing.T) {
	h := NewHandler(newBot(t), WithMaxInputSize(8))

	t.Run("Missing Field", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/get", strings.NewReader("other=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Too Large", func(t *testing.T) {
		_, greeting := post(t, h, "")
		require.NotEmpty(t, greeting)

		w, _ := post(t, h, strings.Repeat("x", 9))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "exceeds maximum allowed size")
	})

	t.Run("Wrong Method", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/get", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestChat_FirstMessageIsNotChecked(t *testing.T) {
	h := NewHandler(newBot(t), WithMaxInputSize(8))

	w, body := post(t, h, strings.Repeat("x", 20))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello! Welcome to LSEG. I am here to help you.", body[0])

	w, _ = post(t, h, "\xff\xfe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_ExactLabels(t *testing.T) {
	loader := memory.NewFromDescriptors(domain.ExchangeDescriptor{
		Name:      "NYSE",
		TopStocks: []domain.StockDescriptor{{Name: "BRK B ", Price: 420}},
	})
	bot, err := chatbot.New(context.Background(), "", chatbot.WithLoader(loader))
	require.NoError(t, err)
	h := NewHandler(bot)
	post(t, h, "")

	tests := []struct {
		msg  string
		want string
	}{
		{"  NYSE\t", "Sorry, this option is not available. Please try again."},
		{"NYSE", "You selected NYSE. Please select a stock:"},
		{"BRK B", "Sorry, this option is not available. Please try again."},
		{"BRK B ", "Stock price of BRK B  is 420.0"},
	}
	for _, tt := range tests {
		w, body := post(t, h, tt.msg)
		require.Equal(t, http.StatusOK, w.Code, "msg %q", tt.msg)
		assert.Equal(t, tt.want, body[0], "msg %q", tt.msg)
	}
}

func TestReadOnlyRoutes(t *testing.T) {
	bot := newBot(t)
	h := NewHandler(bot)
	post(t, h, "")
	post(t, h, "NYSE")

	t.Run("View", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/view", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var view domain.Render
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "You selected NYSE. Please select a stock:", view.Prompt)
		assert.Equal(t, []string{"AAPL"}, view.Choices)
	})

	t.Run("Graph", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/graph", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "graph TD\n"))
	})

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Index", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Contains(t, w.Body.String(), `fetch("/get"`)
	})

	t.Run("CORS Preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/get", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("No Metrics By Default", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMetricsRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	h := NewHandler(newBot(t, chatbot.WithLifecycleHooks(metrics.Hooks())), WithMetrics(reg))

	post(t, h, "")
	post(t, h, "NYSE")
	post(t, h, "nope")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `chatbot_node_visits_total{kind="category",name="NYSE"} 1`)
	assert.Contains(t, w.Body.String(), `chatbot_selections_rejected_total{kind="category"} 1`)
}
