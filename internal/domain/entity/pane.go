// Package entity contains the pane layout domain: the pane tree, its
// mutation algorithms and the per-pane event scopes built on top of it.
// These are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"slices"
)

// PaneID identifies a pane within a Layout.
type PaneID int

const (
	// RootID is the synthetic root pane. It always exists and is never closed.
	RootID PaneID = 0
	// FirstPaneID is the root's only child, when present.
	FirstPaneID PaneID = 1
)

// Unit tells how a pane's Size is interpreted.
type Unit string

const (
	UnitUnchanged Unit = ""       // Resize only: keep the current unit
	UnitWeight    Unit = "weight" // Proportional share of the parent
	UnitExact     Unit = "exact"  // Fixed size
)

// Valid reports whether u names a concrete unit.
func (u Unit) Valid() bool {
	return u == UnitWeight || u == UnitExact
}

// ParseUnit converts a string into a Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if !u.Valid() {
		return "", fmt.Errorf("unit %q: %w", s, ErrInvalidState)
	}
	return u, nil
}

// Direction is the axis along which a container lays out its children.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Horizontal || d == Vertical
}

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("direction %q: %w", s, ErrInvalidState)
	}
	return d, nil
}

// Order selects where a new child is inserted into a container.
type Order string

const (
	Append  Order = "append"
	Prepend Order = "prepend"
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o == Append || o == Prepend
}

// Pane is one of RootPane, LeafPane or ContainerPane.
type Pane interface {
	isPane()
}

// RootPane is the layout's outermost boundary. Split is true while the first pane exists.
type RootPane struct {
	Split bool
}

// LeafPane is a regular pane without children.
type LeafPane struct {
	Size     float64
	Unit     Unit
	ParentID PaneID
}

// ContainerPane is a regular pane split into ordered children.
type ContainerPane struct {
	Size       float64
	Unit       Unit
	ParentID   PaneID
	Direction  Direction
	ChildrenID []PaneID
}

func (RootPane) isPane()      {}
func (LeafPane) isPane()      {}
func (ContainerPane) isPane() {}

// parentOf returns the parent of a regular pane. The root has none.
func parentOf(p Pane) (PaneID, bool) {
	switch p := p.(type) {
	case LeafPane:
		return p.ParentID, true
	case ContainerPane:
		return p.ParentID, true
	case RootPane:
		return 0, false
	default:
		panic(fmt.Sprintf("entity: unknown pane type %T", p))
	}
}

// clonePane returns a copy that shares no memory with p.
func clonePane(p Pane) Pane {
	if c, ok := p.(ContainerPane); ok {
		c.ChildrenID = slices.Clone(c.ChildrenID)
		return c
	}
	return p
}
