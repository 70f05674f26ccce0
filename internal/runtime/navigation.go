package runtime

import (
	"context"
	"errors"

	"github.com/ic1618/chat-bot/pkg/domain"
)

var errEmptySlot = errors.New("option points to no node")

// Select follows label from the current node.
//
// An unknown label returns a *domain.SelectionError; a label that passes
// validation but cannot be followed returns a *domain.TraversalError. In both
// cases the cursor is left where it was.
//
// On success the cursor moves and, unless the target is the root or already has
// them, the target's shortcuts are bound: "Menu" to the root and "Go back" to
// the node the user came from. Later visits never rebind them.
func (e *Engine) Select(ctx context.Context, label string) (domain.Node, domain.Render, error) {
	previous := e.Current()

	if !previous.Options().Has(label) {
		e.logger.Debug("selection rejected", "label", label, "node_id", previous.ID())
		e.emitSelectionRejected(ctx, previous, label)
		return nil, domain.Render{}, &domain.SelectionError{Label: label, Node: previous.ID()}
	}

	target, err := e.resolve(previous, label)
	if err != nil {
		e.logger.Error("traversal failed", "label", label, "node_id", previous.ID(), "err", err)
		return nil, domain.Render{}, &domain.TraversalError{Label: label, Node: previous.ID(), Err: err}
	}

	e.emitNodeLeave(ctx, previous, label)
	e.state.Enter(target.ID())
	e.bindShortcuts(ctx, target, previous)
	e.emitNodeEnter(ctx, target, label)

	e.logger.Debug("node entered", "label", label, "node_id", target.ID(), "kind", target.Kind())
	return target, target.Render(), nil
}

// resolve looks label up on from and returns the node it points to.
func (e *Engine) resolve(from domain.Node, label string) (domain.Node, error) {
	id, err := from.Options().Lookup(label)
	if err != nil {
		return nil, err
	}
	if !id.Valid() {
		return nil, errEmptySlot
	}
	if id == from.ID() {
		return nil, errors.New("option points back to its own node")
	}
	return e.hierarchy.Node(id)
}

// bindShortcuts gives target its "Menu" and "Go back" targets on first visit.
func (e *Engine) bindShortcuts(ctx context.Context, target, previous domain.Node) {
	if target.Kind() == domain.KindRoot || target.Options().ShortcutsBound() {
		return
	}

	root := e.hierarchy.RootID()
	opts := target.Options()
	if err := opts.Bind(domain.LabelMenu, root); err != nil {
		e.logger.Warn("failed to bind shortcut", "label", domain.LabelMenu, "node_id", target.ID(), "err", err)
		return
	}
	if err := opts.Bind(domain.LabelGoBack, previous.ID()); err != nil {
		e.logger.Warn("failed to bind shortcut", "label", domain.LabelGoBack, "node_id", target.ID(), "err", err)
		return
	}
	e.emitShortcutsBound(ctx, target, root, previous.ID())
}
