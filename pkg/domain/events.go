package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter         EventType = "node_enter"
	EventNodeLeave         EventType = "node_leave"
	EventShortcutsBound    EventType = "shortcuts_bound"
	EventSelectionRejected EventType = "selection_rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NodeEvent represents entry into or exit from a node.
type NodeEvent struct {
	EventBase
	NodeID NodeID `json:"node_id"`
	Kind   Kind   `json:"kind"`
	Name   string `json:"name,omitempty"`
	Label  string `json:"label,omitempty"` // The selection that caused the move
}

// ShortcutEvent is emitted when a node receives its "Menu" and "Go back" targets.
type ShortcutEvent struct {
	EventBase
	NodeID NodeID `json:"node_id"`
	Kind   Kind   `json:"kind"`
	Menu   NodeID `json:"menu"`
	GoBack NodeID `json:"go_back"`
}

// SelectionEvent is emitted when a label is not offered by the current node.
type SelectionEvent struct {
	EventBase
	NodeID NodeID `json:"node_id"`
	Kind   Kind   `json:"kind"`
	Label  string `json:"label"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnNodeEnter         func(context.Context, *NodeEvent)
	OnNodeLeave         func(context.Context, *NodeEvent)
	OnShortcutsBound    func(context.Context, *ShortcutEvent)
	OnSelectionRejected func(context.Context, *SelectionEvent)
}
