package domain

// Outcome classifies how a chat turn ended.
type Outcome string

const (
	OutcomeGreeted  Outcome = "greeted"  // First contact: welcome plus the root view
	OutcomeMoved    Outcome = "moved"    // The cursor moved to a new node
	OutcomeRejected Outcome = "rejected" // The label was not offered; cursor unchanged
	OutcomeFailed   Outcome = "failed"   // Internal failure; no view is shown
)

// Response is one message of the conversation.
type Response struct {
	Outcome  Outcome `json:"outcome"`
	Preamble string  `json:"preamble,omitempty"`
	View     *Render `json:"view,omitempty"`
	Failure  string  `json:"failure,omitempty"`
}

// Messages flattens the response into its wire form: the preamble (if any)
// followed by the view's tiers. A failure is a single-element list.
func (r Response) Messages() []any {
	if r.Outcome == OutcomeFailed {
		return []any{r.Failure}
	}
	var out []any
	if r.Preamble != "" {
		out = append(out, r.Preamble)
	}
	if r.View != nil {
		out = append(out, r.View.Messages()...)
	}
	return out
}
