package graph

import (
	"fmt"
	"strings"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []domain.NodeID
	CurrentNode  domain.NodeID
}

// GenerateMermaid produces a Mermaid flowchart of the hierarchy.
// It applies semantic styling:
// - Root: ((Circle))
// - Category: [/Parallelogram/]
// - Leaf: [Rectangle], labelled with its price
// Tree edges are solid. Shortcuts bound so far are drawn dotted.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(h *domain.Hierarchy, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range h.Nodes() {
		safeID := mermaidID(node.ID())

		opener, closer := "[", "]"
		label := node.Name()
		switch n := node.(type) {
		case *domain.Root:
			opener, closer = "((", "))"
			label = "start"
		case *domain.Category:
			opener, closer = "[/", "/]"
		case *domain.Leaf:
			label = fmt.Sprintf("%s <br/> %s", n.Name(), domain.FormatPrice(n.Price()))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))

		// Tree edges
		for _, target := range treeTargets(node) {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, mermaidID(target)))
		}

		// Bound shortcuts
		opts := node.Options()
		if node.Kind() == domain.KindRoot || !opts.ShortcutsBound() {
			continue
		}
		for _, shortcut := range domain.ShortcutLabels() {
			target, err := opts.Lookup(shortcut)
			if err != nil || !target.Valid() {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", safeID, shortcut, mermaidID(target)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[domain.NodeID]bool)
		for _, id := range overlay.VisitedNodes {
			if visitedSet[id] || !id.Valid() {
				continue
			}
			visitedSet[id] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", mermaidID(id)))
		}

		if overlay.CurrentNode.Valid() {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", mermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func treeTargets(node domain.Node) []domain.NodeID {
	var opts *domain.Options
	switch n := node.(type) {
	case *domain.Root:
		opts = n.Options()
	case *domain.Category:
		opts = n.MainOptions()
	default:
		return nil
	}

	var ids []domain.NodeID
	for _, label := range opts.Labels() {
		if id, err := opts.Lookup(label); err == nil && id.Valid() {
			ids = append(ids, id)
		}
	}
	return ids
}

func mermaidID(id domain.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
