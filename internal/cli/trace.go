package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/tilepane/internal/cli/styles"
	"github.com/bnema/tilepane/internal/domain/entity"
	"github.com/bnema/tilepane/internal/logging"
)

// TraceSink prints every pane event it receives, one per line.
type TraceSink struct {
	w        io.Writer
	renderer *styles.LayoutRenderer
	count    int
}

// NewTraceSink creates a sink writing to w.
func NewTraceSink(w io.Writer, renderer *styles.LayoutRenderer) *TraceSink {
	return &TraceSink{w: w, renderer: renderer}
}

// Record implements port.LayoutEventSink.
func (s *TraceSink) Record(ctx context.Context, ev entity.PaneEvent) {
	s.count++
	if _, err := fmt.Fprintln(s.w, s.renderer.RenderEvent(ev)); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("write trace line")
	}
}

// Count returns the number of events recorded so far.
func (s *TraceSink) Count() int {
	return s.count
}
