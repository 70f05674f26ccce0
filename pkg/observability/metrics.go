package observability

import (
	"context"

	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the navigation engine.
type Metrics struct {
	NodeVisits         *prometheus.CounterVec
	SelectionsRejected *prometheus.CounterVec
	ShortcutsBound     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_node_visits_total",
				Help: "Total number of node visits",
			},
			[]string{"kind", "name"},
		),
		SelectionsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_selections_rejected_total",
				Help: "Selections that did not match an offered option",
			},
			[]string{"kind"},
		),
		ShortcutsBound: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chatbot_shortcuts_bound_total",
				Help: "Nodes that received their Menu and Go back targets",
			},
			[]string{"kind"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.NodeVisits, m.SelectionsRejected, m.ShortcutsBound)
	}
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			m.NodeVisits.WithLabelValues(string(e.Kind), e.Name).Inc()
		},
		OnSelectionRejected: func(ctx context.Context, e *domain.SelectionEvent) {
			m.SelectionsRejected.WithLabelValues(string(e.Kind)).Inc()
		},
		OnShortcutsBound: func(ctx context.Context, e *domain.ShortcutEvent) {
			m.ShortcutsBound.WithLabelValues(string(e.Kind)).Inc()
		},
	}
}

// Chain merges several hook sets; each callback runs in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		h := h
		if h.OnNodeEnter != nil {
			prev := out.OnNodeEnter
			out.OnNodeEnter = func(ctx context.Context, e *domain.NodeEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnNodeEnter(ctx, e)
			}
		}
		if h.OnNodeLeave != nil {
			prev := out.OnNodeLeave
			out.OnNodeLeave = func(ctx context.Context, e *domain.NodeEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnNodeLeave(ctx, e)
			}
		}
		if h.OnShortcutsBound != nil {
			prev := out.OnShortcutsBound
			out.OnShortcutsBound = func(ctx context.Context, e *domain.ShortcutEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnShortcutsBound(ctx, e)
			}
		}
		if h.OnSelectionRejected != nil {
			prev := out.OnSelectionRejected
			out.OnSelectionRejected = func(ctx context.Context, e *domain.SelectionEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnSelectionRejected(ctx, e)
			}
		}
	}
	return out
}
