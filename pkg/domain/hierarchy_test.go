package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) *Hierarchy {
	t.Helper()
	b := NewBuilder()
	nyse, err := b.AddCategory("NYSE")
	require.NoError(t, err)
	_, err = b.AddLeaf(nyse, "AAPL", 150)
	require.NoError(t, err)
	_, err = b.AddLeaf(nyse, "IBM", 120.5)
	require.NoError(t, err)
	lse, err := b.AddCategory("LSE")
	require.NoError(t, err)
	_, err = b.AddLeaf(lse, "BP", 4.2)
	require.NoError(t, err)
	return b.Build()
}

func TestBuilder_Shape(t *testing.T) {
	h := buildSample(t)

	assert.Equal(t, 6, h.Len())
	assert.Equal(t, NodeID(0), h.RootID())
	assert.Equal(t, []string{"NYSE", "LSE"}, h.Root().Options().Labels())

	node, err := h.Node(1)
	require.NoError(t, err)
	cat, ok := node.(*Category)
	require.True(t, ok)
	assert.Equal(t, []string{"AAPL", "IBM"}, cat.MainOptions().Labels())
	assert.Equal(t, []string{"AAPL", "IBM", LabelMenu, LabelGoBack}, cat.Options().Labels())

	node, err = h.Node(2)
	require.NoError(t, err)
	leaf, ok := node.(*Leaf)
	require.True(t, ok)
	assert.Equal(t, []string{LabelMenu, LabelGoBack}, leaf.Options().Labels())
	assert.Equal(t, 150.0, leaf.Price())

	_, err = h.Node(42)
	assert.ErrorIs(t, err, ErrNodeNotFound)
	_, err = h.Node(NoNode)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestBuilder_Rejects(t *testing.T) {
	b := NewBuilder()
	nyse, err := b.AddCategory("NYSE")
	require.NoError(t, err)

	_, err = b.AddCategory("NYSE")
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	_, err = b.AddLeaf(nyse, "AAPL", 1)
	require.NoError(t, err)
	_, err = b.AddLeaf(nyse, "AAPL", 2)
	assert.ErrorIs(t, err, ErrDuplicateLabel)

	for _, label := range ShortcutLabels() {
		_, err = b.AddLeaf(nyse, label, 1)
		assert.ErrorIs(t, err, ErrReservedLabel, label)
	}

	_, err = b.AddLeaf(0, "X", 1)
	assert.Error(t, err, "root is not a category")
	_, err = b.AddLeaf(99, "X", 1)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestBuilder_SameStockInTwoExchanges(t *testing.T) {
	b := NewBuilder()
	a, _ := b.AddCategory("A")
	c, _ := b.AddCategory("B")
	first, err := b.AddLeaf(a, "SHARED", 1)
	require.NoError(t, err)
	second, err := b.AddLeaf(c, "SHARED", 2)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestOptions_LookupAndBind(t *testing.T) {
	h := buildSample(t)
	node, _ := h.Node(1)
	opts := node.Options()

	target, err := opts.Lookup("AAPL")
	require.NoError(t, err)
	assert.Equal(t, NodeID(2), target)

	target, err = opts.Lookup(LabelMenu)
	require.NoError(t, err)
	assert.Equal(t, NoNode, target)
	assert.False(t, opts.ShortcutsBound())

	_, err = opts.Lookup("aapl")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "aapl", nf.Label)

	require.NoError(t, opts.Bind(LabelMenu, 0))
	require.NoError(t, opts.Bind(LabelGoBack, 0))
	assert.True(t, opts.ShortcutsBound())

	assert.ErrorIs(t, opts.Bind("AAPL", 0), ErrNotShortcut)
	assert.ErrorIs(t, h.Root().Options().Bind(LabelMenu, 1), ErrNotShortcut)

	cat := node.(*Category)
	assert.False(t, cat.MainOptions().Has(LabelMenu), "main options never carry shortcuts")
}

func TestOptions_NotShared(t *testing.T) {
	h := buildSample(t)
	first, _ := h.Node(2)
	second, _ := h.Node(3)

	require.NoError(t, first.Options().Bind(LabelGoBack, 1))
	target, err := second.Options().Lookup(LabelGoBack)
	require.NoError(t, err)
	assert.Equal(t, NoNode, target)
}

func TestShortcutLabels_FreshSlice(t *testing.T) {
	labels := ShortcutLabels()
	labels[0] = "changed"
	assert.Equal(t, LabelMenu, ShortcutLabels()[0])
}
