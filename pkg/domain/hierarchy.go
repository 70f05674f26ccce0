package domain

import "fmt"

// Hierarchy owns every node of the menu tree.
// Its shape is fixed at construction; afterwards only shortcut slots change.
type Hierarchy struct {
	nodes []Node
}

// Root returns the entry node.
func (h *Hierarchy) Root() *Root {
	return h.nodes[0].(*Root)
}

// RootID returns the identifier of the entry node.
func (h *Hierarchy) RootID() NodeID {
	return 0
}

// Node resolves id, failing with ErrNodeNotFound for ids outside the hierarchy.
func (h *Hierarchy) Node(id NodeID) (Node, error) {
	if !id.Valid() || int(id) >= len(h.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return h.nodes[id], nil
}

// Nodes returns every node in construction order:
// the root first, then each category followed by its stocks.
func (h *Hierarchy) Nodes() []Node {
	out := make([]Node, len(h.nodes))
	copy(out, h.nodes)
	return out
}

// Len returns the number of nodes including the root.
func (h *Hierarchy) Len() int {
	return len(h.nodes)
}

// Builder assembles a Hierarchy one exchange and one stock at a time.
// It rejects duplicate siblings but knows nothing about the input format.
type Builder struct {
	nodes []Node
	built bool
}

// NewBuilder returns a builder holding only the root.
func NewBuilder() *Builder {
	root := &Root{base: base{id: 0, options: newOptions()}}
	return &Builder{nodes: []Node{root}}
}

// AddCategory registers an exchange under the root.
func (b *Builder) AddCategory(name string) (NodeID, error) {
	id := NodeID(len(b.nodes))
	cat := &Category{
		base:        base{id: id},
		name:        name,
		mainOptions: newOptions(),
	}
	if !b.nodes[0].Options().add(name, id) {
		return NoNode, fmt.Errorf("%w: exchange %q", ErrDuplicateLabel, name)
	}
	b.nodes = append(b.nodes, cat)
	return id, nil
}

// AddLeaf registers a stock under the given exchange.
func (b *Builder) AddLeaf(category NodeID, name string, price float64) (NodeID, error) {
	if !category.Valid() || int(category) >= len(b.nodes) {
		return NoNode, fmt.Errorf("%w: %d", ErrNodeNotFound, category)
	}
	cat, ok := b.nodes[category].(*Category)
	if !ok {
		return NoNode, fmt.Errorf("node %d is a %s, not a category", category, b.nodes[category].Kind())
	}
	if IsShortcut(name) {
		return NoNode, fmt.Errorf("%w: stock %q", ErrReservedLabel, name)
	}

	id := NodeID(len(b.nodes))
	if !cat.mainOptions.add(name, id) {
		return NoNode, fmt.Errorf("%w: stock %q in %q", ErrDuplicateLabel, name, cat.name)
	}
	leaf := &Leaf{
		base:  base{id: id, options: newOptions().withShortcutSlots()},
		name:  name,
		price: price,
	}
	b.nodes = append(b.nodes, leaf)
	return id, nil
}

// Build seals the hierarchy. Category options become a copy of their stocks
// plus the two unbound shortcut slots. The builder must not be reused.
func (b *Builder) Build() *Hierarchy {
	if !b.built {
		for _, n := range b.nodes {
			if cat, ok := n.(*Category); ok {
				cat.options = cat.mainOptions.clone().withShortcutSlots()
			}
		}
		b.built = true
	}
	return &Hierarchy{nodes: b.nodes}
}
