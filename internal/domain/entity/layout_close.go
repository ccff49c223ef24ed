package entity

import (
	"slices"

	"github.com/bnema/tilepane/internal/domain/event"
	"github.com/bnema/tilepane/internal/domain/result"
)

// closePlan is everything ClosePane will change, computed before any mutation.
type closePlan struct {
	parentID PaneID
	// doomed lists the panes to delete, descendants before their ancestors.
	doomed    []PaneID
	remaining []PaneID
	collapse  bool
}

type pendingNotice struct {
	hub   *event.Hub[EventKind, PaneEvent]
	ev    PaneEvent
	clear bool
}

// ClosePane removes a pane and all of its descendants.
//
// When the parent container is left with a single child, that child's subtree
// is closed too and the parent turns back into a leaf. Closing the first pane
// empties the root. The whole operation is validated before anything changes.
//
// Notifications fire once the new tree is in place: close for every removed
// pane (children before parents, the closed pane's subtree before the merged
// sibling's), then unsplit on the parent when it collapsed.
func (l *Layout) ClosePane(id PaneID) result.Result[result.Unit] {
	if _, err := l.lookup(id); err != nil {
		return result.Err[result.Unit](err)
	}

	plan, err := l.planClose(id)
	if err != nil {
		return result.Err[result.Unit](err)
	}

	notices := l.applyClose(plan)
	for _, n := range notices {
		n.hub.Notify(n.ev.Kind, n.ev)
		if n.clear {
			n.hub.Clear()
		}
	}
	return result.Done()
}

func (l *Layout) planClose(id PaneID) (*closePlan, error) {
	parentID, _ := parentOf(l.panes[id].pane)
	parent, ok := l.panes[parentID]
	if !ok {
		return nil, corrupted("parent #%d of pane #%d does not exist", parentID, id)
	}

	plan := &closePlan{parentID: parentID}
	var sibling PaneID
	hasSibling := false

	switch p := parent.pane.(type) {
	case RootPane:
		if id != FirstPaneID || !p.Split {
			return nil, corrupted("pane #%d is not the root's child", id)
		}
		plan.collapse = true
	case ContainerPane:
		idx := slices.Index(p.ChildrenID, id)
		if idx < 0 {
			return nil, corrupted("pane #%d is not listed as a child of pane #%d", id, parentID)
		}
		plan.remaining = slices.Delete(slices.Clone(p.ChildrenID), idx, idx+1)
		if len(plan.remaining) == 1 {
			plan.collapse = true
			sibling, hasSibling = plan.remaining[0], true
			plan.remaining = nil
		}
	case LeafPane:
		return nil, corrupted("parent #%d of pane #%d is not split", parentID, id)
	}

	seen := make(map[PaneID]bool)
	if err := l.collectSubtree(id, seen, &plan.doomed); err != nil {
		return nil, err
	}
	if hasSibling {
		if err := l.collectSubtree(sibling, seen, &plan.doomed); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

// collectSubtree appends id's subtree in post-order, checking every parent link.
func (l *Layout) collectSubtree(id PaneID, seen map[PaneID]bool, out *[]PaneID) error {
	if seen[id] {
		return corrupted("pane #%d is reachable twice", id)
	}
	seen[id] = true

	rec, ok := l.panes[id]
	if !ok || id == RootID {
		return corrupted("child pane #%d does not exist", id)
	}
	if c, ok := rec.pane.(ContainerPane); ok {
		for _, child := range c.ChildrenID {
			childRec, ok := l.panes[child]
			if !ok {
				return corrupted("child pane #%d of pane #%d does not exist", child, id)
			}
			if pid, _ := parentOf(childRec.pane); pid != id {
				return corrupted("pane #%d is listed by pane #%d but points to #%d", child, id, pid)
			}
			if err := l.collectSubtree(child, seen, out); err != nil {
				return err
			}
		}
	}
	*out = append(*out, id)
	return nil
}

func (l *Layout) applyClose(plan *closePlan) []pendingNotice {
	parent := l.panes[plan.parentID]
	switch p := parent.pane.(type) {
	case RootPane:
		parent.pane = RootPane{Split: false}
	case ContainerPane:
		if plan.collapse {
			parent.pane = LeafPane{Size: p.Size, Unit: p.Unit, ParentID: p.ParentID}
		} else {
			p.ChildrenID = plan.remaining
			parent.pane = p
		}
	}

	notices := make([]pendingNotice, 0, len(plan.doomed)+1)
	for _, id := range plan.doomed {
		notices = append(notices, pendingNotice{
			hub:   l.panes[id].hub,
			ev:    PaneEvent{Kind: EventClose, PaneID: id},
			clear: true,
		})
		delete(l.panes, id)
	}
	if plan.collapse {
		notices = append(notices, pendingNotice{
			hub: parent.hub,
			ev:  PaneEvent{Kind: EventUnsplit, PaneID: plan.parentID},
		})
	}
	return notices
}
