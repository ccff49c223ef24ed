package entity

import (
	"fmt"

	"github.com/bnema/tilepane/internal/domain/event"
	"github.com/bnema/tilepane/internal/domain/result"
)

// EventKind names a pane notification.
type EventKind string

const (
	EventSplit   EventKind = "split"   // Children were added
	EventUnsplit EventKind = "unsplit" // The pane went back to a leaf (or the root emptied)
	EventClose   EventKind = "close"   // The pane was removed
	EventResize  EventKind = "resize"  // Size or unit changed
)

// EventKinds lists every kind in a stable order.
var EventKinds = []EventKind{EventSplit, EventUnsplit, EventClose, EventResize}

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	switch k {
	case EventSplit, EventUnsplit, EventClose, EventResize:
		return true
	}
	return false
}

// PaneEvent is delivered to listeners. The layout already reflects the change.
type PaneEvent struct {
	Kind   EventKind
	PaneID PaneID
}

// Scope selects a listener registry: the root sentinel or a regular pane.
type Scope struct {
	id   PaneID
	root bool
}

// RootScope addresses the root pane's listeners.
var RootScope = Scope{id: RootID, root: true}

// PaneScope addresses a regular pane's listeners. PaneScope(RootID) is not
// the root: use RootScope for that.
func PaneScope(id PaneID) Scope {
	return Scope{id: id}
}

// IsRoot reports whether s is the root sentinel.
func (s Scope) IsRoot() bool {
	return s.root
}

// PaneID returns the pane s points at.
func (s Scope) PaneID() PaneID {
	return s.id
}

func (s Scope) String() string {
	if s.root {
		return "root"
	}
	return fmt.Sprintf("pane #%d", s.id)
}

func (l *Layout) resolve(kind EventKind, s Scope) (*paneRecord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownEvent)
	}
	if s.root {
		return l.panes[RootID], nil
	}
	return l.lookup(s.id)
}

// Subscribe registers fn for kind events in scope and returns the listener id.
// The root scope only emits split and unsplit.
func (l *Layout) Subscribe(kind EventKind, s Scope, fn func(PaneEvent)) result.Result[event.ListenerID] {
	rec, err := l.resolve(kind, s)
	if err != nil {
		return result.Err[event.ListenerID](err)
	}
	if s.root {
		switch kind {
		case EventClose:
			return result.Err[event.ListenerID](ErrRootNotClosable)
		case EventResize:
			return result.Err[event.ListenerID](ErrRootNotResizable)
		}
	}
	return result.Ok(rec.hub.Subscribe(kind, fn))
}

// Unsubscribe removes a listener previously returned by Subscribe.
func (l *Layout) Unsubscribe(kind EventKind, s Scope, id event.ListenerID) result.Result[result.Unit] {
	rec, err := l.resolve(kind, s)
	if err != nil {
		return result.Err[result.Unit](err)
	}
	if rec.hub.Unsubscribe(kind, id).IsErr() {
		return result.Err[result.Unit](fmt.Errorf("'%s' listener #%d in %s: %w", kind, id, s, ErrListenerNotFound))
	}
	return result.Done()
}

// ListenerIDs returns the listener ids registered for kind in scope, ascending.
func (l *Layout) ListenerIDs(kind EventKind, s Scope) result.Result[[]event.ListenerID] {
	rec, err := l.resolve(kind, s)
	if err != nil {
		return result.Err[[]event.ListenerID](err)
	}
	return result.Ok(rec.hub.IDs(kind))
}
