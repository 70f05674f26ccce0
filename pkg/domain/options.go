package domain

// Reserved shortcut labels added to every non-root node on its first visit.
const (
	LabelMenu   = "Menu"
	LabelGoBack = "Go back"
)

// ShortcutLabels returns the reserved labels in display order.
// A fresh slice is returned on every call.
func ShortcutLabels() []string {
	return []string{LabelMenu, LabelGoBack}
}

// IsShortcut reports whether label is one of the reserved shortcut labels.
func IsShortcut(label string) bool {
	return label == LabelMenu || label == LabelGoBack
}

// Options is an ordered mapping from label to target node.
// Each node owns its own Options; nothing is shared between nodes.
type Options struct {
	labels   []string
	targets  map[string]NodeID
	bindable bool
}

func newOptions() *Options {
	return &Options{targets: make(map[string]NodeID)}
}

// add appends a label. It returns false when the label already exists.
func (o *Options) add(label string, target NodeID) bool {
	if _, exists := o.targets[label]; exists {
		return false
	}
	o.labels = append(o.labels, label)
	o.targets[label] = target
	return true
}

// clone copies the mapping into a new, independently mutable Options.
func (o *Options) clone() *Options {
	c := &Options{
		labels:  make([]string, len(o.labels)),
		targets: make(map[string]NodeID, len(o.targets)),
	}
	copy(c.labels, o.labels)
	for k, v := range o.targets {
		c.targets[k] = v
	}
	return c
}

// withShortcutSlots adds both reserved labels pointing nowhere and makes them bindable.
func (o *Options) withShortcutSlots() *Options {
	for _, label := range ShortcutLabels() {
		o.add(label, NoNode)
	}
	o.bindable = true
	return o
}

// Labels returns the labels in insertion order.
func (o *Options) Labels() []string {
	out := make([]string, len(o.labels))
	copy(out, o.labels)
	return out
}

// Len returns the number of labels.
func (o *Options) Len() int {
	return len(o.labels)
}

// Has reports whether label is selectable. Matching is exact and case-sensitive.
func (o *Options) Has(label string) bool {
	_, ok := o.targets[label]
	return ok
}

// Lookup returns the target of label, or a *NotFoundError.
// A present but unbound shortcut slot returns NoNode without error.
func (o *Options) Lookup(label string) (NodeID, error) {
	target, ok := o.targets[label]
	if !ok {
		return NoNode, &NotFoundError{Label: label}
	}
	return target, nil
}

// Bind points a reserved shortcut label at target.
// It is the only mutation allowed after construction and is reserved for the navigation engine.
func (o *Options) Bind(label string, target NodeID) error {
	if !o.bindable || !IsShortcut(label) {
		return ErrNotShortcut
	}
	o.targets[label] = target
	return nil
}

// ShortcutsBound reports whether "Menu" already points to a node.
func (o *Options) ShortcutsBound() bool {
	target, ok := o.targets[LabelMenu]
	return ok && target.Valid()
}
