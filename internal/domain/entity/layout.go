package entity

import (
	"slices"

	"github.com/bnema/tilepane/internal/domain/event"
	"github.com/bnema/tilepane/internal/domain/idgen"
	"github.com/bnema/tilepane/internal/domain/result"
)

const (
	defaultPaneSize = 100
	firstPaneSize   = 1
	defaultPaneUnit = UnitWeight
)

// paneRecord is an arena slot: the pane's current shape and its listener scope.
type paneRecord struct {
	pane Pane
	hub  *event.Hub[EventKind, PaneEvent]
}

// Layout is a tree of panes stored as an arena keyed by PaneID. Parent and
// child links are ids, never pointers.
//
// A Layout has a single owner and is not safe for concurrent use. Listeners
// run synchronously on the caller's stack after the mutation is committed;
// they must not mutate the same Layout while a notification is in flight.
type Layout struct {
	panes       map[PaneID]*paneRecord
	defaultSize float64
	defaultUnit Unit
}

// LayoutOption configures a Layout.
type LayoutOption func(*Layout)

// WithDefaultPaneSize sets the size and unit given to panes created by split
// and insert. Invalid values are ignored.
func WithDefaultPaneSize(size float64, unit Unit) LayoutOption {
	return func(l *Layout) {
		if validSize(size) && size > 0 {
			l.defaultSize = size
		}
		if unit.Valid() {
			l.defaultUnit = unit
		}
	}
}

// NewLayout creates a layout holding only the root pane.
func NewLayout(opts ...LayoutOption) *Layout {
	l := &Layout{
		panes:       make(map[PaneID]*paneRecord),
		defaultSize: defaultPaneSize,
		defaultUnit: defaultPaneUnit,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.panes[RootID] = newRecord(RootPane{})
	return l
}

func newRecord(p Pane) *paneRecord {
	return &paneRecord{pane: p, hub: event.NewHub[EventKind, PaneEvent]()}
}

// GetPane returns a snapshot of a regular pane. The root is not addressable here.
func (l *Layout) GetPane(id PaneID) result.Result[Pane] {
	rec, err := l.lookup(id)
	if err != nil {
		return result.Err[Pane](err)
	}
	return result.Ok(clonePane(rec.pane))
}

// Root returns the root pane.
func (l *Layout) Root() RootPane {
	return l.panes[RootID].pane.(RootPane)
}

// IDs returns the ids of all regular panes in ascending order.
func (l *Layout) IDs() []PaneID {
	ids := make([]PaneID, 0, len(l.panes)-1)
	for id := range l.panes {
		if id != RootID {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of regular panes.
func (l *Layout) Len() int {
	return len(l.panes) - 1
}

// Walk visits the panes depth-first in child order, starting at the first
// pane. Returning false from fn skips the pane's children.
func (l *Layout) Walk(fn func(id PaneID, pane Pane, depth int) bool) {
	if _, ok := l.panes[FirstPaneID]; !ok {
		return
	}
	l.walk(FirstPaneID, 0, fn)
}

func (l *Layout) walk(id PaneID, depth int, fn func(PaneID, Pane, int) bool) {
	rec, ok := l.panes[id]
	if !ok {
		return
	}
	if !fn(id, clonePane(rec.pane), depth) {
		return
	}
	if c, ok := rec.pane.(ContainerPane); ok {
		for _, child := range c.ChildrenID {
			l.walk(child, depth+1, fn)
		}
	}
}

// lookup resolves a regular pane. The root id is treated as absent.
func (l *Layout) lookup(id PaneID) (*paneRecord, error) {
	if id == RootID {
		return nil, paneNotFound(id)
	}
	rec, ok := l.panes[id]
	if !ok {
		return nil, paneNotFound(id)
	}
	return rec, nil
}

func (l *Layout) newLeaf(parent PaneID) PaneID {
	id := idgen.Next(l.panes)
	l.panes[id] = newRecord(LeafPane{Size: l.defaultSize, Unit: l.defaultUnit, ParentID: parent})
	return id
}
