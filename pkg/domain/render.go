package domain

// Prompt and disclaimer texts shown to the user.
const (
	PromptRoot     = "Please select a stock exchange:"
	PromptCategory = "You selected %s. Please select a stock:"
	PromptLeaf     = "Stock price of %s is %s"

	DisclaimerCategory = "If you do not wish to proceed, then please select one of the following:"
	DisclaimerLeaf     = "Please choose one of the following:"
)

// ShortcutBlock is the secondary tier of a render: a note plus the shortcut labels.
type ShortcutBlock struct {
	Disclaimer string   `json:"disclaimer"`
	Labels     []string `json:"labels"`
}

// Render is the three-tier view of a node:
// a prompt, the primary choices (possibly none) and an optional shortcut block.
type Render struct {
	Prompt    string         `json:"prompt"`
	Choices   []string       `json:"choices,omitempty"`
	Shortcuts *ShortcutBlock `json:"shortcuts,omitempty"`
}

// Messages flattens the render into its wire form:
//
//	[prompt, [choices...], disclaimer, [shortcuts...]]
//
// The choices entry is left out when empty, the last two when there is no block.
func (r Render) Messages() []any {
	out := []any{r.Prompt}
	if len(r.Choices) > 0 {
		out = append(out, r.Choices)
	}
	if r.Shortcuts != nil {
		out = append(out, r.Shortcuts.Disclaimer, r.Shortcuts.Labels)
	}
	return out
}
