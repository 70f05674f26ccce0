package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies one of the fixed node variants of the hierarchy.
type Kind string

const (
	// KindRoot is the single entry node listing the stock exchanges.
	KindRoot Kind = "root"
	// KindCategory is a stock exchange listing its stocks.
	KindCategory Kind = "category"
	// KindLeaf is a single stock showing its price.
	KindLeaf Kind = "leaf"
)

// NodeID indexes a node inside its Hierarchy.
// It is a non-owning reference: the Hierarchy owns every node.
type NodeID int

// NoNode marks an option slot that does not point anywhere yet.
const NoNode NodeID = -1

// Valid reports whether id can reference a node.
func (id NodeID) Valid() bool {
	return id >= 0
}

// Node is the capability every variant of the hierarchy exposes.
// The set of implementations is closed: Root, Category and Leaf.
type Node interface {
	ID() NodeID
	Kind() Kind
	Name() string

	// Options returns the labels selectable from this node.
	Options() *Options

	// Render produces the prompt and the choices offered by this node.
	Render() Render

	// Metadata exposes variant specific attributes (name, price) as strings.
	Metadata() map[string]string

	node()
}

type base struct {
	id      NodeID
	options *Options
}

func (b *base) ID() NodeID        { return b.id }
func (b *base) Options() *Options { return b.options }
func (b *base) node()             {}

// Root lists the stock exchanges. It never receives shortcuts.
type Root struct {
	base
}

func (r *Root) Kind() Kind   { return KindRoot }
func (r *Root) Name() string { return "" }

func (r *Root) Render() Render {
	return Render{
		Prompt:  PromptRoot,
		Choices: r.options.Labels(),
	}
}

func (r *Root) Metadata() map[string]string {
	return map[string]string{}
}

// Category is a stock exchange.
// MainOptions holds the stock labels only, Options adds the shortcuts on top.
type Category struct {
	base
	name        string
	mainOptions *Options
}

func (c *Category) Kind() Kind   { return KindCategory }
func (c *Category) Name() string { return c.name }

// MainOptions returns the stocks of the exchange without the navigation shortcuts.
func (c *Category) MainOptions() *Options {
	return c.mainOptions
}

func (c *Category) Render() Render {
	return Render{
		Prompt:    fmt.Sprintf(PromptCategory, c.name),
		Choices:   c.mainOptions.Labels(),
		Shortcuts: &ShortcutBlock{Disclaimer: DisclaimerCategory, Labels: ShortcutLabels()},
	}
}

func (c *Category) Metadata() map[string]string {
	return map[string]string{"name": c.name}
}

// Leaf is a single stock quote.
type Leaf struct {
	base
	name  string
	price float64
}

func (l *Leaf) Kind() Kind   { return KindLeaf }
func (l *Leaf) Name() string { return l.name }

// Price returns the numeric quote of the stock.
func (l *Leaf) Price() float64 {
	return l.price
}

func (l *Leaf) Render() Render {
	return Render{
		Prompt:    fmt.Sprintf(PromptLeaf, l.name, FormatPrice(l.price)),
		Shortcuts: &ShortcutBlock{Disclaimer: DisclaimerLeaf, Labels: ShortcutLabels()},
	}
}

func (l *Leaf) Metadata() map[string]string {
	return map[string]string{
		"name":  l.name,
		"value": FormatPrice(l.price),
	}
}

// FormatPrice prints a quote the way users expect it: integral values keep a ".0".
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
