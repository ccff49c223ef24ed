package entity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tilepane/internal/domain/entity"
	"github.com/bnema/tilepane/internal/domain/event"
)

func newLayout(t *testing.T) *entity.Layout {
	t.Helper()
	l := entity.NewLayout()
	require.True(t, l.CreateRoot().IsOk())
	return l
}

func container(t *testing.T, l *entity.Layout, id entity.PaneID) entity.ContainerPane {
	t.Helper()
	pane, err := l.GetPane(id).Get()
	require.NoError(t, err)
	c, ok := pane.(entity.ContainerPane)
	require.Truef(t, ok, "pane #%d is %T, want container", id, pane)
	return c
}

func leaf(t *testing.T, l *entity.Layout, id entity.PaneID) entity.LeafPane {
	t.Helper()
	pane, err := l.GetPane(id).Get()
	require.NoError(t, err)
	lp, ok := pane.(entity.LeafPane)
	require.Truef(t, ok, "pane #%d is %T, want leaf", id, pane)
	return lp
}

func TestNewLayout_OnlyRoot(t *testing.T) {
	l := entity.NewLayout()

	assert.Equal(t, entity.RootPane{Split: false}, l.Root())
	assert.Zero(t, l.Len())
	assert.Empty(t, l.IDs())
}

func TestGetPane(t *testing.T) {
	l := entity.NewLayout()

	assert.ErrorIs(t, l.GetPane(1).Error(), entity.ErrNotFound)
	assert.ErrorIs(t, l.GetPane(entity.RootID).Error(), entity.ErrNotFound)

	require.True(t, l.CreateRoot().IsOk())
	assert.True(t, l.GetPane(1).IsOk())
	assert.ErrorIs(t, l.GetPane(entity.RootID).Error(), entity.ErrNotFound)
}

func TestGetPane_ReturnsSnapshot(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	snap := container(t, l, 1)
	snap.ChildrenID[0] = 42

	assert.Equal(t, []entity.PaneID{2, 3}, container(t, l, 1).ChildrenID)
}

func TestCreateRoot(t *testing.T) {
	l := newLayout(t)

	assert.Equal(t, entity.LeafPane{Size: 1, Unit: entity.UnitWeight, ParentID: entity.RootID}, leaf(t, l, 1))
	assert.True(t, l.Root().Split)
}

func TestCreateRoot_OnlyFirstCallSucceeds(t *testing.T) {
	l := newLayout(t)
	notified := 0
	l.Subscribe(entity.EventSplit, entity.RootScope, func(entity.PaneEvent) { notified++ })

	for range 3 {
		res := l.CreateRoot()
		assert.ErrorIs(t, res.Error(), entity.ErrAlreadyExists)
	}

	assert.Equal(t, []entity.PaneID{1}, l.IDs())
	assert.Zero(t, notified)
}

func TestSplit_CreatesTwoChildren(t *testing.T) {
	l := newLayout(t)

	require.True(t, l.CreatePane(entity.SplitConfig{ParentID: 1, Direction: entity.Vertical}).IsOk())

	c := container(t, l, 1)
	assert.Equal(t, entity.Vertical, c.Direction)
	assert.Equal(t, []entity.PaneID{2, 3}, c.ChildrenID)
	assert.Equal(t, entity.RootID, c.ParentID)
	assert.Equal(t, 1.0, c.Size)

	for _, id := range []entity.PaneID{2, 3} {
		assert.Equal(t, entity.LeafPane{Size: 100, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, l, id))
	}
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(l *entity.Layout)
		config entity.SplitConfig
		want   error
	}{
		{
			name:   "root pane id",
			config: entity.SplitConfig{ParentID: entity.RootID, Direction: entity.Horizontal},
			want:   entity.ErrNotFound,
		},
		{
			name:   "missing pane",
			config: entity.SplitConfig{ParentID: 7, Direction: entity.Horizontal},
			want:   entity.ErrNotFound,
		},
		{
			name:   "already split",
			setup:  func(l *entity.Layout) { l.Split(1, entity.Horizontal) },
			config: entity.SplitConfig{ParentID: 1, Direction: entity.Vertical},
			want:   entity.ErrInvalidState,
		},
		{
			name:   "unknown direction",
			config: entity.SplitConfig{ParentID: 1, Direction: "diagonal"},
			want:   entity.ErrInvalidState,
		},
		{
			name:   "same direction as parent container",
			setup:  func(l *entity.Layout) { l.Split(1, entity.Vertical) },
			config: entity.SplitConfig{ParentID: 2, Direction: entity.Vertical},
			want:   entity.ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLayout(t)
			if tt.setup != nil {
				tt.setup(l)
			}
			before := l.IDs()

			res := l.CreatePane(tt.config)

			assert.ErrorIs(t, res.Error(), tt.want)
			assert.Equal(t, before, l.IDs())
		})
	}
}

func TestSplit_BeforeFirstPane(t *testing.T) {
	l := entity.NewLayout()
	assert.ErrorIs(t, l.Split(1, entity.Horizontal).Error(), entity.ErrNotFound)
}

func TestSplit_DirectionAlternation(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Horizontal).IsOk())

	assert.True(t, l.Split(2, entity.Vertical).IsOk())
	assert.ErrorIs(t, l.Split(3, entity.Horizontal).Error(), entity.ErrInvariantViolation)
	assert.True(t, l.Split(3, entity.Vertical).IsOk())

	// two-level rule: pane 4 sits under vertical pane 2, so horizontal is allowed again
	assert.True(t, l.Split(4, entity.Horizontal).IsOk())
}

func TestInsert_AppendAndPrepend(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	require.True(t, l.Insert(1, entity.Append).IsOk())
	assert.Equal(t, []entity.PaneID{2, 3, 4}, container(t, l, 1).ChildrenID)

	l = newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	require.True(t, l.CreatePane(entity.InsertConfig{ParentID: 1, Order: entity.Prepend}).IsOk())
	assert.Equal(t, []entity.PaneID{4, 2, 3}, container(t, l, 1).ChildrenID)

	require.True(t, l.Insert(1, entity.Append).IsOk())
	assert.Equal(t, []entity.PaneID{4, 2, 3, 5}, container(t, l, 1).ChildrenID)
	assert.Equal(t, entity.LeafPane{Size: 100, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, l, 5))
}

func TestInsert_Errors(t *testing.T) {
	l := newLayout(t)

	assert.ErrorIs(t, l.Insert(1, entity.Append).Error(), entity.ErrInvalidState)
	assert.ErrorIs(t, l.Insert(9, entity.Append).Error(), entity.ErrNotFound)
	assert.ErrorIs(t, l.Insert(entity.RootID, entity.Prepend).Error(), entity.ErrNotFound)

	require.True(t, l.Split(1, entity.Vertical).IsOk())
	assert.ErrorIs(t, l.Insert(1, "middle").Error(), entity.ErrInvalidState)
	assert.Equal(t, []entity.PaneID{1, 2, 3}, l.IDs())
}

func TestCreatePane_NilConfig(t *testing.T) {
	l := newLayout(t)
	assert.ErrorIs(t, l.CreatePane(nil).Error(), entity.ErrInvalidState)
}

func TestCreatePane_NotifiesTheSplitPane(t *testing.T) {
	l := entity.NewLayout()
	var got []entity.PaneEvent
	record := func(ev entity.PaneEvent) { got = append(got, ev) }

	l.Subscribe(entity.EventSplit, entity.RootScope, record)
	require.True(t, l.CreateRoot().IsOk())
	require.Equal(t, []entity.PaneEvent{{Kind: entity.EventSplit, PaneID: entity.RootID}}, got)

	require.True(t, l.Split(1, entity.Vertical).IsOk())

	got = nil
	l.Subscribe(entity.EventSplit, entity.PaneScope(2), record)
	require.True(t, l.Split(2, entity.Horizontal).IsOk())
	assert.Equal(t, []entity.PaneEvent{{Kind: entity.EventSplit, PaneID: 2}}, got)

	got = nil
	l.Subscribe(entity.EventSplit, entity.PaneScope(5), record)
	require.True(t, l.Split(5, entity.Vertical).IsOk())
	assert.Equal(t, []entity.PaneEvent{{Kind: entity.EventSplit, PaneID: 5}}, got)

	got = nil
	require.True(t, l.Insert(2, entity.Append).IsOk())
	assert.Equal(t, []entity.PaneEvent{{Kind: entity.EventSplit, PaneID: 2}}, got)
}

func TestCreatePane_ListenerSeesCommittedState(t *testing.T) {
	l := newLayout(t)
	var children []entity.PaneID
	l.Subscribe(entity.EventSplit, entity.PaneScope(1), func(entity.PaneEvent) {
		children = container(t, l, 1).ChildrenID
	})

	require.True(t, l.Split(1, entity.Horizontal).IsOk())

	assert.Equal(t, []entity.PaneID{2, 3}, children)
}

func TestWithDefaultPaneSize(t *testing.T) {
	l := entity.NewLayout(entity.WithDefaultPaneSize(50, entity.UnitExact))
	require.True(t, l.CreateRoot().IsOk())
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	assert.Equal(t, entity.LeafPane{Size: 50, Unit: entity.UnitExact, ParentID: 1}, leaf(t, l, 2))
	// the first pane keeps its own size
	assert.Equal(t, 1.0, container(t, l, 1).Size)

	ignored := entity.NewLayout(entity.WithDefaultPaneSize(math.NaN(), "bogus"))
	require.True(t, ignored.CreateRoot().IsOk())
	require.True(t, ignored.Split(1, entity.Vertical).IsOk())
	assert.Equal(t, entity.LeafPane{Size: 100, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, ignored, 2))
}

func TestClosePane_CollapsesParent(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	require.True(t, l.ClosePane(3).IsOk())

	assert.Equal(t, entity.LeafPane{Size: 1, Unit: entity.UnitWeight, ParentID: entity.RootID}, leaf(t, l, 1))
	assert.ErrorIs(t, l.GetPane(2).Error(), entity.ErrNotFound)
	assert.ErrorIs(t, l.GetPane(3).Error(), entity.ErrNotFound)
	assert.Equal(t, []entity.PaneID{1}, l.IDs())
}

func TestClosePane_KeepsContainerWithSeveralChildren(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	require.True(t, l.Insert(1, entity.Append).IsOk())
	unsplit := 0
	l.Subscribe(entity.EventUnsplit, entity.PaneScope(1), func(entity.PaneEvent) { unsplit++ })

	require.True(t, l.ClosePane(3).IsOk())

	assert.Equal(t, []entity.PaneID{2, 4}, container(t, l, 1).ChildrenID)
	assert.Equal(t, []entity.PaneID{1, 2, 4}, l.IDs())
	assert.Zero(t, unsplit)
}

func TestClosePane_FirstPaneEmptiesRoot(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Horizontal).IsOk())
	require.True(t, l.Split(2, entity.Vertical).IsOk())
	var events []entity.PaneEvent
	l.Subscribe(entity.EventUnsplit, entity.RootScope, func(ev entity.PaneEvent) { events = append(events, ev) })

	require.True(t, l.ClosePane(1).IsOk())

	assert.False(t, l.Root().Split)
	assert.Zero(t, l.Len())
	assert.Equal(t, []entity.PaneEvent{{Kind: entity.EventUnsplit, PaneID: entity.RootID}}, events)

	require.True(t, l.CreateRoot().IsOk())
	assert.Equal(t, []entity.PaneID{1}, l.IDs())
}

func TestClosePane_Errors(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	assert.ErrorIs(t, l.ClosePane(entity.RootID).Error(), entity.ErrNotFound)
	assert.ErrorIs(t, l.ClosePane(12).Error(), entity.ErrNotFound)
	assert.Equal(t, []entity.PaneID{1, 2, 3}, l.IDs())
}

func TestClosePane_NotCallableTwice(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	require.True(t, l.Insert(1, entity.Append).IsOk())

	require.True(t, l.ClosePane(4).IsOk())
	assert.ErrorIs(t, l.ClosePane(4).Error(), entity.ErrNotFound)
}

func TestClosePane_ReusesIDs(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	require.True(t, l.Insert(1, entity.Append).IsOk())

	require.True(t, l.ClosePane(2).IsOk())
	require.True(t, l.Insert(1, entity.Prepend).IsOk())

	assert.Equal(t, []entity.PaneID{2, 3, 4}, container(t, l, 1).ChildrenID)
}

func TestClosePane_NotificationOrder(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Horizontal).IsOk()) // 1 -> [2, 3]
	require.True(t, l.Split(2, entity.Vertical).IsOk())   // 2 -> [4, 5]
	require.True(t, l.Split(3, entity.Vertical).IsOk())   // 3 -> [6, 7]

	var order []entity.PaneEvent
	record := func(ev entity.PaneEvent) { order = append(order, ev) }
	for _, id := range l.IDs() {
		l.Subscribe(entity.EventClose, entity.PaneScope(id), record)
		l.Subscribe(entity.EventUnsplit, entity.PaneScope(id), record)
	}

	require.True(t, l.ClosePane(2).IsOk())

	assert.Equal(t, []entity.PaneEvent{
		{Kind: entity.EventClose, PaneID: 4},
		{Kind: entity.EventClose, PaneID: 5},
		{Kind: entity.EventClose, PaneID: 2},
		{Kind: entity.EventClose, PaneID: 6},
		{Kind: entity.EventClose, PaneID: 7},
		{Kind: entity.EventClose, PaneID: 3},
		{Kind: entity.EventUnsplit, PaneID: 1},
	}, order)
	assert.Equal(t, []entity.PaneID{1}, l.IDs())
}

func TestClosePane_ListenersSeeFinalState(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	var seen []int
	l.Subscribe(entity.EventClose, entity.PaneScope(2), func(entity.PaneEvent) {
		seen = append(seen, l.Len())
		assert.True(t, l.GetPane(2).IsErr())
	})

	require.True(t, l.ClosePane(3).IsOk())

	assert.Equal(t, []int{1}, seen)
}

func TestClosePane_DropsListeners(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	require.True(t, l.Insert(1, entity.Append).IsOk())
	calls := 0
	l.Subscribe(entity.EventResize, entity.PaneScope(4), func(entity.PaneEvent) { calls++ })

	require.True(t, l.ClosePane(4).IsOk())
	require.True(t, l.Insert(1, entity.Append).IsOk()) // reuses id 4

	ids, err := l.ListenerIDs(entity.EventResize, entity.PaneScope(4)).Get()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.True(t, l.ResizePane(4, 20, entity.UnitUnchanged).IsOk())
	assert.Zero(t, calls)
}

func TestResizePane(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	var seen entity.LeafPane
	l.Subscribe(entity.EventResize, entity.PaneScope(2), func(ev entity.PaneEvent) {
		seen = leaf(t, l, ev.PaneID)
	})

	require.True(t, l.ResizePane(2, 50, entity.UnitUnchanged).IsOk())
	assert.Equal(t, entity.LeafPane{Size: 50, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, l, 2))
	assert.Equal(t, leaf(t, l, 2), seen)

	require.True(t, l.ResizePane(2, 320, entity.UnitExact).IsOk())
	assert.Equal(t, entity.LeafPane{Size: 320, Unit: entity.UnitExact, ParentID: 1}, leaf(t, l, 2))
	assert.Equal(t, leaf(t, l, 2), seen)
}

func TestResizePane_Container(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	require.True(t, l.Split(2, entity.Horizontal).IsOk())

	require.True(t, l.ResizePane(2, 30, entity.UnitExact).IsOk())

	c := container(t, l, 2)
	assert.Equal(t, 30.0, c.Size)
	assert.Equal(t, entity.UnitExact, c.Unit)
	assert.Equal(t, []entity.PaneID{4, 5}, c.ChildrenID)
}

func TestResizePane_Errors(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	rootErr := l.ResizePane(entity.RootID, 10, entity.UnitUnchanged).Error()
	assert.ErrorIs(t, rootErr, entity.ErrRootNotResizable)
	assert.ErrorIs(t, rootErr, entity.ErrInvalidState)
	assert.NotErrorIs(t, rootErr, entity.ErrNotFound)
	assert.ErrorIs(t, l.ResizePane(1, 10, entity.UnitUnchanged).Error(), entity.ErrInvalidState)
	assert.ErrorIs(t, l.ResizePane(8, 10, entity.UnitUnchanged).Error(), entity.ErrNotFound)
	assert.ErrorIs(t, l.ResizePane(2, -1, entity.UnitUnchanged).Error(), entity.ErrInvalidSize)
	assert.ErrorIs(t, l.ResizePane(2, math.Inf(1), entity.UnitUnchanged).Error(), entity.ErrInvalidSize)
	assert.ErrorIs(t, l.ResizePane(2, 10, "pixels").Error(), entity.ErrInvalidState)

	assert.Equal(t, entity.LeafPane{Size: 100, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, l, 2))
}

func TestSubscribe_PerPaneAndKind(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Horizontal).IsOk())

	assertIDs := func(kind entity.EventKind, id entity.PaneID, want ...event.ListenerID) {
		t.Helper()
		got, err := l.ListenerIDs(kind, entity.PaneScope(id)).Get()
		require.NoError(t, err)
		if len(want) == 0 {
			assert.Empty(t, got)
			return
		}
		assert.Equal(t, want, got)
	}

	assertIDs(entity.EventSplit, 2)
	assertIDs(entity.EventClose, 3)

	l.Subscribe(entity.EventSplit, entity.PaneScope(2), func(entity.PaneEvent) {})
	assertIDs(entity.EventSplit, 2, 0)
	assertIDs(entity.EventClose, 3)

	l.Subscribe(entity.EventClose, entity.PaneScope(3), func(entity.PaneEvent) {})
	assertIDs(entity.EventSplit, 2, 0)
	assertIDs(entity.EventClose, 3, 0)
}

func TestSubscribe_ListenerIDReuse(t *testing.T) {
	l := newLayout(t)
	scope := entity.PaneScope(1)

	for want := range 5 {
		assert.Equal(t, event.ListenerID(want), l.Subscribe(entity.EventSplit, scope, func(entity.PaneEvent) {}).Unwrap())
	}

	require.True(t, l.Unsubscribe(entity.EventSplit, scope, 1).IsOk())
	require.True(t, l.Unsubscribe(entity.EventSplit, scope, 3).IsOk())
	assert.Equal(t, []event.ListenerID{0, 2, 4}, l.ListenerIDs(entity.EventSplit, scope).Unwrap())

	assert.Equal(t, event.ListenerID(1), l.Subscribe(entity.EventSplit, scope, func(entity.PaneEvent) {}).Unwrap())
	assert.Equal(t, event.ListenerID(3), l.Subscribe(entity.EventSplit, scope, func(entity.PaneEvent) {}).Unwrap())
	assert.Equal(t, event.ListenerID(5), l.Subscribe(entity.EventSplit, scope, func(entity.PaneEvent) {}).Unwrap())
}

func TestSubscribe_Errors(t *testing.T) {
	l := entity.NewLayout()
	noop := func(entity.PaneEvent) {}

	assert.ErrorIs(t, l.Subscribe(entity.EventSplit, entity.PaneScope(1), noop).Error(), entity.ErrNotFound)
	assert.ErrorIs(t, l.Subscribe(entity.EventSplit, entity.PaneScope(entity.RootID), noop).Error(), entity.ErrNotFound)
	assert.ErrorIs(t, l.Subscribe("move", entity.RootScope, noop).Error(), entity.ErrUnknownEvent)
}

func TestSubscribe_RootScope(t *testing.T) {
	l := entity.NewLayout()
	noop := func(entity.PaneEvent) {}

	assert.True(t, l.Subscribe(entity.EventSplit, entity.RootScope, noop).IsOk())
	assert.True(t, l.Subscribe(entity.EventUnsplit, entity.RootScope, noop).IsOk())

	closeRes := l.Subscribe(entity.EventClose, entity.RootScope, noop)
	assert.ErrorIs(t, closeRes.Error(), entity.ErrRootNotClosable)
	assert.ErrorIs(t, closeRes.Error(), entity.ErrInvalidState)
	assert.ErrorIs(t, l.Subscribe(entity.EventResize, entity.RootScope, noop).Error(), entity.ErrRootNotResizable)

	require.True(t, l.CreateRoot().IsOk())
	assert.ErrorIs(t, l.Subscribe(entity.EventClose, entity.RootScope, noop).Error(), entity.ErrRootNotClosable)
}

func TestUnsubscribe(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Vertical).IsOk())
	noop := func(entity.PaneEvent) {}
	l.Subscribe(entity.EventClose, entity.PaneScope(2), noop)
	l.Subscribe(entity.EventClose, entity.PaneScope(2), noop)
	l.Subscribe(entity.EventSplit, entity.PaneScope(3), noop)
	l.Subscribe(entity.EventSplit, entity.PaneScope(3), noop)

	require.True(t, l.Unsubscribe(entity.EventClose, entity.PaneScope(2), 0).IsOk())
	require.True(t, l.Unsubscribe(entity.EventSplit, entity.PaneScope(3), 1).IsOk())
	assert.Equal(t, []event.ListenerID{1}, l.ListenerIDs(entity.EventClose, entity.PaneScope(2)).Unwrap())
	assert.Equal(t, []event.ListenerID{0}, l.ListenerIDs(entity.EventSplit, entity.PaneScope(3)).Unwrap())

	require.True(t, l.Unsubscribe(entity.EventClose, entity.PaneScope(2), 1).IsOk())
	require.True(t, l.Unsubscribe(entity.EventSplit, entity.PaneScope(3), 0).IsOk())
	assert.Empty(t, l.ListenerIDs(entity.EventClose, entity.PaneScope(2)).Unwrap())
	assert.Empty(t, l.ListenerIDs(entity.EventSplit, entity.PaneScope(3)).Unwrap())
}

func TestUnsubscribe_Errors(t *testing.T) {
	l := entity.NewLayout()
	assert.ErrorIs(t, l.Unsubscribe(entity.EventSplit, entity.PaneScope(1), 0).Error(), entity.ErrNotFound)

	require.True(t, l.CreateRoot().IsOk())
	require.True(t, l.Split(1, entity.Horizontal).IsOk())
	l.Subscribe(entity.EventClose, entity.PaneScope(1), func(entity.PaneEvent) {})

	missing := l.Unsubscribe(entity.EventClose, entity.PaneScope(1), 1).Error()
	assert.ErrorIs(t, missing, entity.ErrListenerNotFound)
	assert.ErrorIs(t, missing, entity.ErrNotFound)
	assert.ErrorIs(t, missing, event.ErrListenerNotFound)
	assert.True(t, l.Unsubscribe(entity.EventClose, entity.PaneScope(1), 0).IsOk())
	res := l.Unsubscribe(entity.EventClose, entity.PaneScope(1), 0)
	assert.ErrorIs(t, res.Error(), entity.ErrListenerNotFound)
	assert.ErrorIs(t, res.Error(), entity.ErrNotFound)
}

func TestUnsubscribe_RootScope(t *testing.T) {
	l := entity.NewLayout()
	l.Subscribe(entity.EventSplit, entity.RootScope, func(entity.PaneEvent) {})
	l.Subscribe(entity.EventUnsplit, entity.RootScope, func(entity.PaneEvent) {})

	assert.ErrorIs(t, l.Unsubscribe(entity.EventSplit, entity.PaneScope(entity.RootID), 0).Error(), entity.ErrNotFound)

	require.True(t, l.Unsubscribe(entity.EventSplit, entity.RootScope, 0).IsOk())
	assert.Empty(t, l.ListenerIDs(entity.EventSplit, entity.RootScope).Unwrap())
	assert.Equal(t, []event.ListenerID{0}, l.ListenerIDs(entity.EventUnsplit, entity.RootScope).Unwrap())

	require.True(t, l.Unsubscribe(entity.EventUnsplit, entity.RootScope, 0).IsOk())
	assert.Empty(t, l.ListenerIDs(entity.EventUnsplit, entity.RootScope).Unwrap())
}

func TestWalk(t *testing.T) {
	l := newLayout(t)
	require.True(t, l.Split(1, entity.Horizontal).IsOk())
	require.True(t, l.Split(2, entity.Vertical).IsOk())
	require.True(t, l.Insert(1, entity.Prepend).IsOk())

	type visit struct {
		id    entity.PaneID
		depth int
	}
	var visits []visit
	l.Walk(func(id entity.PaneID, _ entity.Pane, depth int) bool {
		visits = append(visits, visit{id, depth})
		return true
	})

	assert.Equal(t, []visit{{1, 0}, {6, 1}, {2, 1}, {4, 2}, {5, 2}, {3, 1}}, visits)

	visits = nil
	l.Walk(func(id entity.PaneID, _ entity.Pane, depth int) bool {
		visits = append(visits, visit{id, depth})
		return id != 2
	})
	assert.Equal(t, []visit{{1, 0}, {6, 1}, {2, 1}, {3, 1}}, visits)
}

func TestScenario_EndToEnd(t *testing.T) {
	l := entity.NewLayout()

	require.True(t, l.CreateRoot().IsOk())
	require.True(t, l.Split(1, entity.Vertical).IsOk())

	assert.Equal(t, entity.ContainerPane{
		Size: 1, Unit: entity.UnitWeight, ParentID: entity.RootID,
		Direction: entity.Vertical, ChildrenID: []entity.PaneID{2, 3},
	}, container(t, l, 1))
	assert.Equal(t, entity.LeafPane{Size: 100, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, l, 2))
	assert.Equal(t, entity.LeafPane{Size: 100, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, l, 3))

	require.True(t, l.ResizePane(2, 50, entity.UnitUnchanged).IsOk())
	assert.Equal(t, entity.LeafPane{Size: 50, Unit: entity.UnitWeight, ParentID: 1}, leaf(t, l, 2))

	require.True(t, l.ClosePane(3).IsOk())
	assert.Equal(t, entity.LeafPane{Size: 1, Unit: entity.UnitWeight, ParentID: entity.RootID}, leaf(t, l, 1))
	assert.Equal(t, []entity.PaneID{1}, l.IDs())
	assert.True(t, l.Root().Split)
}
