package entity

import (
	"fmt"

	"github.com/bnema/tilepane/internal/domain/result"
)

// CreateConfig is one of CreateRoot, SplitConfig or InsertConfig.
type CreateConfig interface {
	isCreateConfig()
}

// CreateRoot creates the first pane as the root's only child.
type CreateRoot struct{}

// SplitConfig turns a leaf into a container with two fresh leaves.
type SplitConfig struct {
	ParentID  PaneID
	Direction Direction
}

// InsertConfig adds one fresh leaf to an existing container.
type InsertConfig struct {
	ParentID PaneID
	Order    Order
}

func (CreateRoot) isCreateConfig()   {}
func (SplitConfig) isCreateConfig()  {}
func (InsertConfig) isCreateConfig() {}

// CreatePane applies cfg and notifies the split listeners of the pane that
// received the new children.
func (l *Layout) CreatePane(cfg CreateConfig) result.Result[result.Unit] {
	switch c := cfg.(type) {
	case CreateRoot:
		return l.createRoot()
	case SplitConfig:
		return l.split(c)
	case InsertConfig:
		return l.insert(c)
	default:
		return result.Err[result.Unit](fmt.Errorf("unsupported create config %T: %w", cfg, ErrInvalidState))
	}
}

// CreateRoot is shorthand for CreatePane(CreateRoot{}).
func (l *Layout) CreateRoot() result.Result[result.Unit] {
	return l.CreatePane(CreateRoot{})
}

// Split is shorthand for CreatePane(SplitConfig{...}).
func (l *Layout) Split(parent PaneID, dir Direction) result.Result[result.Unit] {
	return l.CreatePane(SplitConfig{ParentID: parent, Direction: dir})
}

// Insert is shorthand for CreatePane(InsertConfig{...}).
func (l *Layout) Insert(parent PaneID, order Order) result.Result[result.Unit] {
	return l.CreatePane(InsertConfig{ParentID: parent, Order: order})
}

func (l *Layout) createRoot() result.Result[result.Unit] {
	if _, ok := l.panes[FirstPaneID]; ok {
		return result.Err[result.Unit](fmt.Errorf("first pane: %w", ErrAlreadyExists))
	}

	root := l.panes[RootID]
	l.panes[FirstPaneID] = newRecord(LeafPane{Size: firstPaneSize, Unit: UnitWeight, ParentID: RootID})
	root.pane = RootPane{Split: true}

	root.hub.Notify(EventSplit, PaneEvent{Kind: EventSplit, PaneID: RootID})
	return result.Done()
}

func (l *Layout) split(c SplitConfig) result.Result[result.Unit] {
	if !c.Direction.Valid() {
		return result.Err[result.Unit](fmt.Errorf("direction %q: %w", c.Direction, ErrInvalidState))
	}
	rec, err := l.lookup(c.ParentID)
	if err != nil {
		return result.Err[result.Unit](err)
	}

	var leaf LeafPane
	switch p := rec.pane.(type) {
	case LeafPane:
		leaf = p
	case ContainerPane:
		return result.Err[result.Unit](fmt.Errorf(
			"pane #%d is already split, insert with an order instead: %w", c.ParentID, ErrInvalidState))
	case RootPane:
		return result.Err[result.Unit](corrupted("pane #%d holds the root shape", c.ParentID))
	}

	if err := l.checkAlternation(c.ParentID, leaf.ParentID, c.Direction); err != nil {
		return result.Err[result.Unit](err)
	}

	first := l.newLeaf(c.ParentID)
	second := l.newLeaf(c.ParentID)
	rec.pane = ContainerPane{
		Size:       leaf.Size,
		Unit:       leaf.Unit,
		ParentID:   leaf.ParentID,
		Direction:  c.Direction,
		ChildrenID: []PaneID{first, second},
	}

	rec.hub.Notify(EventSplit, PaneEvent{Kind: EventSplit, PaneID: c.ParentID})
	return result.Done()
}

// checkAlternation rejects a split whose direction matches the container
// holding the pane being split. The root imposes no constraint.
func (l *Layout) checkAlternation(id, parentID PaneID, dir Direction) error {
	parent, ok := l.panes[parentID]
	if !ok {
		return corrupted("parent #%d of pane #%d does not exist", parentID, id)
	}
	switch p := parent.pane.(type) {
	case RootPane:
		return nil
	case ContainerPane:
		if p.Direction == dir {
			return fmt.Errorf("pane #%d: split direction %s must differ from its parent #%d: %w",
				id, dir, parentID, ErrInvariantViolation)
		}
		return nil
	case LeafPane:
		return corrupted("parent #%d of pane #%d is not split", parentID, id)
	}
	return nil
}

func (l *Layout) insert(c InsertConfig) result.Result[result.Unit] {
	if !c.Order.Valid() {
		return result.Err[result.Unit](fmt.Errorf("order %q: %w", c.Order, ErrInvalidState))
	}
	rec, err := l.lookup(c.ParentID)
	if err != nil {
		return result.Err[result.Unit](err)
	}

	var container ContainerPane
	switch p := rec.pane.(type) {
	case ContainerPane:
		container = p
	case LeafPane:
		return result.Err[result.Unit](fmt.Errorf(
			"pane #%d has not been split yet, split with a direction instead: %w", c.ParentID, ErrInvalidState))
	case RootPane:
		return result.Err[result.Unit](corrupted("pane #%d holds the root shape", c.ParentID))
	}

	id := l.newLeaf(c.ParentID)
	children := make([]PaneID, 0, len(container.ChildrenID)+1)
	if c.Order == Prepend {
		children = append(children, id)
		children = append(children, container.ChildrenID...)
	} else {
		children = append(children, container.ChildrenID...)
		children = append(children, id)
	}
	container.ChildrenID = children
	rec.pane = container

	rec.hub.Notify(EventSplit, PaneEvent{Kind: EventSplit, PaneID: c.ParentID})
	return result.Done()
}
