package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/tilepane/internal/domain/entity"
	"github.com/bnema/tilepane/internal/logging"
)

// ManagePanesUseCase handles pane tree operations on a single layout.
// Like the layout itself it has one owner and is not safe for concurrent use.
type ManagePanesUseCase struct {
	layout *entity.Layout
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(layout *entity.Layout) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		layout: layout,
	}
}

// Layout returns the layout the use case operates on.
func (uc *ManagePanesUseCase) Layout() *entity.Layout {
	return uc.layout
}

// CreateRoot creates the first pane.
func (uc *ManagePanesUseCase) CreateRoot(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := uc.layout.CreateRoot().Error(); err != nil {
		log.Debug().Err(err).Msg("create first pane failed")
		return err
	}

	log.Info().Int("pane_id", int(entity.FirstPaneID)).Msg("first pane created")
	return nil
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	ParentID  entity.PaneID
	Direction entity.Direction
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPaneIDs []entity.PaneID // In child order
}

// Split turns a leaf into a container with two new panes.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Int("parent_id", int(input.ParentID)).
		Str("direction", string(input.Direction)).
		Msg("splitting pane")

	if err := uc.layout.Split(input.ParentID, input.Direction).Error(); err != nil {
		return nil, err
	}

	c, err := uc.container(input.ParentID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("parent_id", int(input.ParentID)).
		Ints("children", paneIDsToInts(c.ChildrenID)).
		Msg("pane split completed")

	return &SplitPaneOutput{NewPaneIDs: c.ChildrenID}, nil
}

// InsertPaneInput contains parameters for adding a pane to a container.
type InsertPaneInput struct {
	ParentID entity.PaneID
	Order    entity.Order
}

// InsertPaneOutput contains the result of an insert operation.
type InsertPaneOutput struct {
	NewPaneID entity.PaneID
}

// Insert adds a new pane at either end of an existing container.
func (uc *ManagePanesUseCase) Insert(ctx context.Context, input InsertPaneInput) (*InsertPaneOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Int("parent_id", int(input.ParentID)).
		Str("order", string(input.Order)).
		Msg("inserting pane")

	if err := uc.layout.Insert(input.ParentID, input.Order).Error(); err != nil {
		return nil, err
	}

	c, err := uc.container(input.ParentID)
	if err != nil {
		return nil, err
	}

	newID := c.ChildrenID[len(c.ChildrenID)-1]
	if input.Order == entity.Prepend {
		newID = c.ChildrenID[0]
	}

	log.Info().
		Int("parent_id", int(input.ParentID)).
		Int("new_pane_id", int(newID)).
		Msg("pane inserted")

	return &InsertPaneOutput{NewPaneID: newID}, nil
}

// ClosePaneOutput contains the result of a close operation.
type ClosePaneOutput struct {
	ClosedIDs []entity.PaneID // Ascending
	ParentID  entity.PaneID
	Collapsed bool // The parent went back to a leaf, or the root emptied
}

// Close removes a pane, its descendants and, when the parent collapses, the merged sibling.
func (uc *ManagePanesUseCase) Close(ctx context.Context, id entity.PaneID) (*ClosePaneOutput, error) {
	ctx = logging.WithPaneID(ctx, int(id))
	log := logging.FromContext(ctx)
	log.Debug().Msg("closing pane")

	pane, err := uc.layout.GetPane(id).Get()
	if err != nil {
		return nil, err
	}
	parentID := paneParent(pane)
	before := uc.layout.IDs()

	if err := uc.layout.ClosePane(id).Error(); err != nil {
		log.Warn().Err(err).Msg("close rejected")
		return nil, err
	}

	after := uc.layout.IDs()
	out := &ClosePaneOutput{ParentID: parentID}
	for _, pid := range before {
		if !slices.Contains(after, pid) {
			out.ClosedIDs = append(out.ClosedIDs, pid)
		}
	}
	if parentID == entity.RootID {
		out.Collapsed = !uc.layout.Root().Split
	} else if p, err := uc.layout.GetPane(parentID).Get(); err == nil {
		_, out.Collapsed = p.(entity.LeafPane)
	}

	log.Info().
		Ints("closed", paneIDsToInts(out.ClosedIDs)).
		Bool("collapsed", out.Collapsed).
		Msg("pane closed")

	return out, nil
}

// ResizePaneInput contains parameters for resizing a pane.
type ResizePaneInput struct {
	PaneID entity.PaneID
	Size   float64
	Unit   entity.Unit // UnitUnchanged keeps the current unit
}

// Resize sets a pane's size and optionally its unit.
func (uc *ManagePanesUseCase) Resize(ctx context.Context, input ResizePaneInput) error {
	ctx = logging.WithPaneID(ctx, int(input.PaneID))
	log := logging.FromContext(ctx)

	if err := uc.layout.ResizePane(input.PaneID, input.Size, input.Unit).Error(); err != nil {
		log.Debug().Err(err).Msg("resize rejected")
		return err
	}

	log.Debug().
		Float64("size", input.Size).
		Str("unit", string(input.Unit)).
		Msg("pane resized")

	return nil
}

// CountPanes returns the number of regular panes.
func (uc *ManagePanesUseCase) CountPanes() int {
	return uc.layout.Len()
}

func (uc *ManagePanesUseCase) container(id entity.PaneID) (entity.ContainerPane, error) {
	pane, err := uc.layout.GetPane(id).Get()
	if err != nil {
		return entity.ContainerPane{}, err
	}
	c, ok := pane.(entity.ContainerPane)
	if !ok {
		return entity.ContainerPane{}, fmt.Errorf("pane #%d is not split after a split: %w", id, entity.ErrInvariantViolation)
	}
	return c, nil
}

func paneParent(p entity.Pane) entity.PaneID {
	switch p := p.(type) {
	case entity.LeafPane:
		return p.ParentID
	case entity.ContainerPane:
		return p.ParentID
	default:
		return entity.RootID
	}
}

func paneIDsToInts(ids []entity.PaneID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}
