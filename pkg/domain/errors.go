package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is wrapped by a ParseError when a required field is absent or empty.
	ErrMissingField = errors.New("missing required field")

	// ErrDuplicateLabel is wrapped by a ParseError when two siblings share a name.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrReservedLabel is wrapped by a ParseError when a stock uses a shortcut label.
	ErrReservedLabel = errors.New("label is reserved for navigation")

	// ErrNotShortcut is returned by Options.Bind for anything but a shortcut slot.
	ErrNotShortcut = errors.New("only shortcut slots of non-root nodes can be bound")

	// ErrCatalogNotFound is returned by loaders whose source holds no catalog.
	ErrCatalogNotFound = errors.New("catalog not found")

	// ErrNodeNotFound is returned when a NodeID does not belong to the hierarchy.
	ErrNodeNotFound = errors.New("node not found")
)

// ParseError reports a malformed catalog. No hierarchy is built when it occurs.
type ParseError struct {
	Path  string // Location of the offending record, e.g. "[0].topStocks[2]"
	Field string // Field name, e.g. "price"
	Err   error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse error: field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parse error at %s: field %q: %v", e.Path, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError is returned by an option lookup for an unknown label.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("option %q not found", e.Label)
}

// SelectionError means the label is not offered by the current node.
// The traversal state is left untouched.
type SelectionError struct {
	Label string
	Node  NodeID
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selected option %q does not exist", e.Label)
}

// TraversalError is an internal inconsistency found while following a valid label.
// It is fatal for the request but leaves the traversal state untouched.
type TraversalError struct {
	Label string
	Node  NodeID
	Err   error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("traversal failed on %q from node %d: %v", e.Label, e.Node, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }
