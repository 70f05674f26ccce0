package runtime

import (
	"context"
	"errors"
	"testing"

	"github.com/ic1618/chat-bot/internal/compiler"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHierarchy(t *testing.T) *domain.Hierarchy {
	t.Helper()
	h, err := compiler.Compile([]domain.ExchangeDescriptor{
		{Name: "NYSE", TopStocks: []domain.StockDescriptor{{Name: "AAPL", Price: 150}, {Name: "IBM", Price: 120.5}}},
		{Name: "LSE", TopStocks: []domain.StockDescriptor{{Name: "BP", Price: 4.2}}},
	})
	require.NoError(t, err)
	return h
}

func lookup(t *testing.T, n domain.Node, label string) domain.NodeID {
	t.Helper()
	id, err := n.Options().Lookup(label)
	require.NoError(t, err)
	return id
}

func TestEngine_Scenario(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newHierarchy(t))

	assert.Equal(t, domain.KindRoot, e.Current().Kind())
	assert.Equal(t, domain.PromptRoot, e.Render(ctx).Prompt)

	nyse, render, err := e.Select(ctx, "NYSE")
	require.NoError(t, err)
	assert.Equal(t, "You selected NYSE. Please select a stock:", render.Prompt)
	assert.Equal(t, domain.NodeID(0), lookup(t, nyse, domain.LabelMenu))
	assert.Equal(t, domain.NodeID(0), lookup(t, nyse, domain.LabelGoBack))

	aapl, render, err := e.Select(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Stock price of AAPL is 150.0", render.Prompt)
	assert.Equal(t, nyse.ID(), lookup(t, aapl, domain.LabelGoBack))

	back, _, err := e.Select(ctx, domain.LabelGoBack)
	require.NoError(t, err)
	assert.Equal(t, nyse.ID(), back.ID())

	root, render, err := e.Select(ctx, domain.LabelMenu)
	require.NoError(t, err)
	assert.Equal(t, domain.KindRoot, root.Kind())
	assert.Nil(t, render.Shortcuts)

	assert.Equal(t, []domain.NodeID{0, 1, 2}, e.State().Visited)
	assert.Equal(t, 4, e.State().Moves)
}

func TestEngine_GoBackIsBoundOnce(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newHierarchy(t))

	_, _, err := e.Select(ctx, "NYSE")
	require.NoError(t, err)
	aapl, _, err := e.Select(ctx, "AAPL")
	require.NoError(t, err)
	_, _, err = e.Select(ctx, domain.LabelMenu)
	require.NoError(t, err)

	// Reach AAPL a second time through the same exchange; its back target stays.
	_, _, err = e.Select(ctx, "NYSE")
	require.NoError(t, err)
	again, _, err := e.Select(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, aapl.ID(), again.ID())
	assert.Equal(t, domain.NodeID(1), lookup(t, again, domain.LabelGoBack))

	// Entering NYSE via Go back from AAPL keeps NYSE's original back target.
	nyse, _, err := e.Select(ctx, domain.LabelGoBack)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(0), lookup(t, nyse, domain.LabelGoBack))
}

func TestEngine_SelectionError(t *testing.T) {
	ctx := context.Background()
	var rejected []string
	e := NewEngine(newHierarchy(t), WithLifecycleHooks(domain.LifecycleHooks{
		OnSelectionRejected: func(_ context.Context, ev *domain.SelectionEvent) {
			rejected = append(rejected, ev.Label)
		},
	}))

	tests := []string{"nyse", "", domain.LabelMenu, domain.LabelGoBack, "AAPL"}
	for _, label := range tests {
		_, _, err := e.Select(ctx, label)
		var selErr *domain.SelectionError
		require.True(t, errors.As(err, &selErr), "label %q", label)
		assert.Equal(t, label, selErr.Label)
		assert.Equal(t, domain.NodeID(0), selErr.Node)
	}
	assert.Equal(t, tests, rejected)
	assert.Equal(t, []domain.NodeID{0}, e.State().Visited)
}

func TestEngine_TraversalError(t *testing.T) {
	ctx := context.Background()
	h := newHierarchy(t)
	e := NewEngine(h)

	// A category reached without the engine has unbound shortcut slots.
	nyse, err := h.Node(1)
	require.NoError(t, err)
	e.state = domain.NewState(nyse.ID())

	_, _, err = e.Select(ctx, domain.LabelMenu)
	var travErr *domain.TraversalError
	require.True(t, errors.As(err, &travErr))
	assert.Equal(t, domain.LabelMenu, travErr.Label)
	assert.ErrorIs(t, err, errEmptySlot)
	assert.Equal(t, nyse.ID(), e.Current().ID())
}

func TestEngine_RejectsSelfLoop(t *testing.T) {
	ctx := context.Background()
	h := newHierarchy(t)
	e := NewEngine(h)

	leaf, err := h.Node(2)
	require.NoError(t, err)
	require.NoError(t, leaf.Options().Bind(domain.LabelMenu, 0))
	require.NoError(t, leaf.Options().Bind(domain.LabelGoBack, leaf.ID()))
	e.state = domain.NewState(leaf.ID())

	_, _, err = e.Select(ctx, domain.LabelGoBack)
	var travErr *domain.TraversalError
	assert.True(t, errors.As(err, &travErr))
}

func TestEngine_Hooks(t *testing.T) {
	ctx := context.Background()
	var events []string
	e := NewEngine(newHierarchy(t), WithLifecycleHooks(domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, ev *domain.NodeEvent) {
			events = append(events, "enter:"+ev.Name)
		},
		OnNodeLeave: func(_ context.Context, ev *domain.NodeEvent) {
			events = append(events, "leave:"+string(ev.Kind))
		},
		OnShortcutsBound: func(_ context.Context, ev *domain.ShortcutEvent) {
			events = append(events, "bound:"+string(ev.Kind))
		},
	}))

	_, _, err := e.Select(ctx, "LSE")
	require.NoError(t, err)
	_, _, err = e.Select(ctx, domain.LabelGoBack)
	require.NoError(t, err)
	_, _, err = e.Select(ctx, "LSE")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"leave:root", "bound:category", "enter:LSE",
		"leave:category", "enter:",
		"leave:root", "enter:LSE",
	}, events)
}

func TestEngine_Reset(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newHierarchy(t))

	nyse, _, err := e.Select(ctx, "NYSE")
	require.NoError(t, err)
	e.Reset()

	assert.Equal(t, domain.KindRoot, e.Current().Kind())
	assert.Equal(t, []domain.NodeID{0}, e.State().Visited)
	assert.True(t, nyse.Options().ShortcutsBound(), "bindings survive a reset")
}

func TestEngine_StateIsACopy(t *testing.T) {
	e := NewEngine(newHierarchy(t))
	s := e.State()
	s.Current = 3
	s.Visited[0] = 3
	assert.Equal(t, domain.NodeID(0), e.State().Current)
	assert.Equal(t, domain.NodeID(0), e.State().Visited[0])
}

func TestEngine_StateStaysBounded(t *testing.T) {
	ctx := context.Background()
	h := newHierarchy(t)
	e := NewEngine(h)

	_, _, err := e.Select(ctx, "NYSE")
	require.NoError(t, err)
	for i := 0; i < 10000; i++ {
		_, _, err = e.Select(ctx, "AAPL")
		require.NoError(t, err)
		_, _, err = e.Select(ctx, domain.LabelGoBack)
		require.NoError(t, err)
	}

	state := e.State()
	assert.Equal(t, 20001, state.Moves)
	assert.Equal(t, []domain.NodeID{0, 1, 2}, state.Visited)
	assert.LessOrEqual(t, len(state.Visited), h.Len())
}
