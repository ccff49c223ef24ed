// Package port defines the boundaries between use cases and their collaborators.
package port

import (
	"context"

	"github.com/bnema/tilepane/internal/domain/entity"
)

// LayoutEventSink receives pane events forwarded by the script runner.
type LayoutEventSink interface {
	Record(ctx context.Context, ev entity.PaneEvent)
}
