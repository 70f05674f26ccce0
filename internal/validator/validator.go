package validator

import (
	"fmt"
	"strings"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// Stats summarises a hierarchy.
type Stats struct {
	Exchanges int
	Stocks    int
	Bound     int // Nodes whose shortcuts have been bound
}

// ValidateHierarchy crawls the tree from the root and checks its invariants:
// every node is reached exactly once through tree edges, no option points at
// its own node, the root carries no shortcuts and bound "Menu" slots point at
// the root.
func ValidateHierarchy(h *domain.Hierarchy) (Stats, error) {
	var stats Stats
	var errors []string

	visited := make(map[domain.NodeID]int)
	queue := []domain.NodeID{h.RootID()}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		visited[id]++
		if visited[id] > 1 {
			errors = append(errors, fmt.Sprintf("node %d reached by more than one path", id))
			continue
		}

		node, err := h.Node(id)
		if err != nil {
			errors = append(errors, fmt.Sprintf("missing node: %v", err))
			continue
		}

		errors = append(errors, checkOptions(h, node)...)

		switch n := node.(type) {
		case *domain.Root:
			queue = append(queue, targets(n.Options())...)
		case *domain.Category:
			stats.Exchanges++
			queue = append(queue, targets(n.MainOptions())...)
		case *domain.Leaf:
			stats.Stocks++
		}
		if node.Options().ShortcutsBound() {
			stats.Bound++
		}
	}

	if len(visited) != h.Len() {
		errors = append(errors, fmt.Sprintf("%d of %d nodes are unreachable from the root", h.Len()-len(visited), h.Len()))
	}

	if len(errors) > 0 {
		return stats, fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return stats, nil
}

func checkOptions(h *domain.Hierarchy, node domain.Node) []string {
	var errors []string
	opts := node.Options()

	for _, label := range opts.Labels() {
		target, err := opts.Lookup(label)
		if err != nil {
			errors = append(errors, err.Error())
			continue
		}
		if target == node.ID() {
			errors = append(errors, fmt.Sprintf("option %q of node %d points to itself", label, node.ID()))
		}
		if target.Valid() {
			if _, err := h.Node(target); err != nil {
				errors = append(errors, fmt.Sprintf("option %q of node %d: %v", label, node.ID(), err))
			}
		}
	}

	if node.Kind() == domain.KindRoot {
		for _, label := range domain.ShortcutLabels() {
			if opts.Has(label) {
				errors = append(errors, fmt.Sprintf("root must not offer %q", label))
			}
		}
		return errors
	}

	for _, label := range domain.ShortcutLabels() {
		if !opts.Has(label) {
			errors = append(errors, fmt.Sprintf("node %d is missing the %q slot", node.ID(), label))
		}
	}
	if menu, _ := opts.Lookup(domain.LabelMenu); menu.Valid() && menu != h.RootID() {
		errors = append(errors, fmt.Sprintf("%q of node %d points to node %d instead of the root", domain.LabelMenu, node.ID(), menu))
	}
	return errors
}

// targets lists the valid node ids an Options points to, in label order.
func targets(opts *domain.Options) []domain.NodeID {
	var ids []domain.NodeID
	for _, label := range opts.Labels() {
		if id, err := opts.Lookup(label); err == nil && id.Valid() {
			ids = append(ids, id)
		}
	}
	return ids
}
