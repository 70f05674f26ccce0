package observability

import (
	"context"
	"testing"

	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnNodeEnter(ctx, &domain.NodeEvent{Kind: domain.KindCategory, Name: "NYSE"})
	hooks.OnNodeEnter(ctx, &domain.NodeEvent{Kind: domain.KindCategory, Name: "NYSE"})
	hooks.OnSelectionRejected(ctx, &domain.SelectionEvent{Kind: domain.KindRoot, Label: "x"})
	hooks.OnShortcutsBound(ctx, &domain.ShortcutEvent{Kind: domain.KindLeaf})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.NodeVisits.WithLabelValues("category", "NYSE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SelectionsRejected.WithLabelValues("root")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShortcutsBound.WithLabelValues("leaf")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestMetrics_Unregistered(t *testing.T) {
	m := NewMetrics(nil)
	m.Hooks().OnNodeEnter(context.Background(), &domain.NodeEvent{Kind: domain.KindRoot})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodeVisits.WithLabelValues("root", "")))
}

func TestChain(t *testing.T) {
	var calls []string
	first := domain.LifecycleHooks{
		OnNodeEnter: func(context.Context, *domain.NodeEvent) { calls = append(calls, "first") },
	}
	second := domain.LifecycleHooks{
		OnNodeEnter: func(context.Context, *domain.NodeEvent) { calls = append(calls, "second") },
		OnNodeLeave: func(context.Context, *domain.NodeEvent) { calls = append(calls, "leave") },
	}

	chained := Chain(first, domain.LifecycleHooks{}, second)
	chained.OnNodeEnter(context.Background(), &domain.NodeEvent{})
	chained.OnNodeLeave(context.Background(), &domain.NodeEvent{})

	assert.Equal(t, []string{"first", "second", "leave"}, calls)
	assert.Nil(t, chained.OnShortcutsBound)
	assert.Nil(t, chained.OnSelectionRejected)
}
