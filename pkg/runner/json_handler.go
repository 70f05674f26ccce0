package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Every response is written as one JSON array, the same wire form the HTTP
// adapter returns. Input lines may be JSON strings or plain text.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	lines *linePump
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		lines:   newLinePump(r),
	}
}

func (h *JSONHandler) Output(ctx context.Context, resp domain.Response) error {
	return h.Encoder.Encode(resp.Messages())
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	text, err := h.lines.next(ctx)
	if err != nil {
		return "", err
	}
	// A JSON string is unquoted; anything else is taken verbatim.
	var val string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &val); err == nil {
		return val, nil
	}
	return text, nil
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(map[string]string{"system": msg})
}
