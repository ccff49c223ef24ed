package entity

import (
	"fmt"
	"math"

	"github.com/bnema/tilepane/internal/domain/result"
)

func validSize(size float64) bool {
	return !math.IsNaN(size) && !math.IsInf(size, 0) && size >= 0
}

// ResizePane sets a pane's size and, unless unit is UnitUnchanged, its unit.
// Neither the root nor the first pane, which fills it, can be resized.
func (l *Layout) ResizePane(id PaneID, size float64, unit Unit) result.Result[result.Unit] {
	if id == RootID {
		return result.Err[result.Unit](ErrRootNotResizable)
	}
	rec, err := l.lookup(id)
	if err != nil {
		return result.Err[result.Unit](err)
	}
	if id == FirstPaneID {
		return result.Err[result.Unit](fmt.Errorf("pane #%d fills the root and cannot be resized: %w", id, ErrInvalidState))
	}
	if !validSize(size) {
		return result.Err[result.Unit](fmt.Errorf("pane #%d: size %v: %w", id, size, ErrInvalidSize))
	}
	if unit != UnitUnchanged && !unit.Valid() {
		return result.Err[result.Unit](fmt.Errorf("pane #%d: unit %q: %w", id, unit, ErrInvalidSize))
	}

	switch p := rec.pane.(type) {
	case LeafPane:
		p.Size = size
		if unit != UnitUnchanged {
			p.Unit = unit
		}
		rec.pane = p
	case ContainerPane:
		p.Size = size
		if unit != UnitUnchanged {
			p.Unit = unit
		}
		rec.pane = p
	case RootPane:
		return result.Err[result.Unit](corrupted("pane #%d holds the root shape", id))
	}

	rec.hub.Notify(EventResize, PaneEvent{Kind: EventResize, PaneID: id})
	return result.Done()
}
