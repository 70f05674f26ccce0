package runtime

import (
	"context"

	"github.com/ic1618/chat-bot/pkg/domain"
)

func (e *Engine) emitNodeEnter(ctx context.Context, node domain.Node, label string) {
	if e.hooks.OnNodeEnter == nil {
		return
	}
	e.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventNodeEnter},
		NodeID:    node.ID(),
		Kind:      node.Kind(),
		Name:      node.Name(),
		Label:     label,
	})
}

func (e *Engine) emitNodeLeave(ctx context.Context, node domain.Node, label string) {
	if e.hooks.OnNodeLeave == nil {
		return
	}
	e.hooks.OnNodeLeave(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventNodeLeave},
		NodeID:    node.ID(),
		Kind:      node.Kind(),
		Name:      node.Name(),
		Label:     label,
	})
}

func (e *Engine) emitShortcutsBound(ctx context.Context, node domain.Node, menu, goBack domain.NodeID) {
	if e.hooks.OnShortcutsBound == nil {
		return
	}
	e.hooks.OnShortcutsBound(ctx, &domain.ShortcutEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventShortcutsBound},
		NodeID:    node.ID(),
		Kind:      node.Kind(),
		Menu:      menu,
		GoBack:    goBack,
	})
}

func (e *Engine) emitSelectionRejected(ctx context.Context, node domain.Node, label string) {
	if e.hooks.OnSelectionRejected == nil {
		return
	}
	e.hooks.OnSelectionRejected(ctx, &domain.SelectionEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventSelectionRejected},
		NodeID:    node.ID(),
		Kind:      node.Kind(),
		Label:     label,
	})
}
