package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/tilepane/internal/application/usecase"
	"github.com/bnema/tilepane/internal/domain/entity"
)

// LayoutRenderer renders pane layouts, event traces and script results.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new LayoutRenderer.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderLayout draws the pane tree under a "root" node.
func (r *LayoutRenderer) RenderLayout(layout *entity.Layout) string {
	root := tree.Root(r.theme.Title.Render("root")).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(r.theme.Enumerator)

	if !layout.Root().Split {
		return root.Child(r.theme.Subtle.Render("(empty)")).String()
	}

	// Walk is pre-order, so a node's parent is always built before the node.
	nodes := map[entity.PaneID]*tree.Tree{entity.RootID: root}
	layout.Walk(func(id entity.PaneID, pane entity.Pane, _ int) bool {
		switch p := pane.(type) {
		case entity.ContainerPane:
			node := tree.Root(r.paneLabel(id, pane)).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(r.theme.Enumerator)
			nodes[id] = node
			if parent, ok := nodes[p.ParentID]; ok {
				parent.Child(node)
			}
		case entity.LeafPane:
			if parent, ok := nodes[p.ParentID]; ok {
				parent.Child(r.paneLabel(id, pane))
			}
		}
		return true
	})

	return root.String()
}

func (r *LayoutRenderer) paneLabel(id entity.PaneID, pane entity.Pane) string {
	switch p := pane.(type) {
	case entity.ContainerPane:
		return fmt.Sprintf("%s %s %s %s",
			r.theme.PaneID.Render("#"+strconv.Itoa(int(id))),
			r.theme.Container.Render("container"),
			r.theme.Normal.Render(string(p.Direction)),
			r.theme.Subtle.Render(FormatSize(p.Size, p.Unit)))
	case entity.LeafPane:
		return fmt.Sprintf("%s %s %s",
			r.theme.PaneID.Render("#"+strconv.Itoa(int(id))),
			r.theme.Leaf.Render("leaf"),
			r.theme.Subtle.Render(FormatSize(p.Size, p.Unit)))
	}
	return r.theme.PaneID.Render("#" + strconv.Itoa(int(id)))
}

// FormatSize prints a size without trailing zeros, followed by its unit.
func FormatSize(size float64, unit entity.Unit) string {
	return strconv.FormatFloat(size, 'f', -1, 64) + " " + string(unit)
}

// RenderEvent renders one traced pane event.
func (r *LayoutRenderer) RenderEvent(ev entity.PaneEvent) string {
	target := "root"
	if ev.PaneID != entity.RootID {
		target = "#" + strconv.Itoa(int(ev.PaneID))
	}
	return r.theme.EventKind.Render(string(ev.Kind)) + r.theme.Normal.Render(target)
}

// RenderScriptErrors renders the failed lines of a script run.
func (r *LayoutRenderer) RenderScriptErrors(errs []*usecase.ScriptLineError) string {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.theme.ErrorStyle.Render(fmt.Sprintf("line %d:", e.Line)),
			r.theme.Subtle.Render(e.Text),
			r.theme.ErrorStyle.Render(e.Err.Error())))
	}
	return strings.Join(lines, "\n")
}

// RenderSummary renders the applied and failed line counts.
func (r *LayoutRenderer) RenderSummary(out *usecase.RunScriptOutput) string {
	applied := r.theme.SuccessStyle.Render(fmt.Sprintf("%d applied", out.Applied))
	if len(out.Errors) == 0 {
		return applied
	}
	return applied + r.theme.Subtle.Render(", ") +
		r.theme.ErrorStyle.Render(fmt.Sprintf("%d failed", len(out.Errors)))
}

// RenderError renders a standalone error message.
func (r *LayoutRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("error: " + err.Error())
}
