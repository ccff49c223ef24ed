package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/tilepane/internal/application/port"
	"github.com/bnema/tilepane/internal/domain/entity"
	"github.com/bnema/tilepane/internal/domain/event"
	"github.com/bnema/tilepane/internal/logging"
)

// ErrScriptSyntax is returned for lines the script parser cannot read.
var ErrScriptSyntax = errors.New("script syntax error")

// ScriptOp names a layout script instruction.
type ScriptOp string

const (
	OpRoot    ScriptOp = "root"
	OpSplit   ScriptOp = "split"
	OpAppend  ScriptOp = "append"
	OpPrepend ScriptOp = "prepend"
	OpResize  ScriptOp = "resize"
	OpClose   ScriptOp = "close"
)

// ScriptCommand is one parsed script line.
type ScriptCommand struct {
	Op        ScriptOp
	PaneID    entity.PaneID
	Direction entity.Direction
	Size      float64
	Unit      entity.Unit
}

// ParseScriptLine parses a single line. ok is false for blank lines and comments.
func ParseScriptLine(line string) (cmd ScriptCommand, ok bool, err error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ScriptCommand{}, false, nil
	}

	cmd.Op = ScriptOp(strings.ToLower(fields[0]))
	args := fields[1:]

	switch cmd.Op {
	case OpRoot:
		err = wantArgs(cmd.Op, args, 0, 0)
	case OpSplit:
		if err = wantArgs(cmd.Op, args, 2, 2); err != nil {
			break
		}
		if cmd.PaneID, err = parsePaneID(args[0]); err != nil {
			break
		}
		cmd.Direction = entity.Direction(strings.ToLower(args[1]))
		if !cmd.Direction.Valid() {
			err = fmt.Errorf("direction %q: %w", args[1], ErrScriptSyntax)
		}
	case OpAppend, OpPrepend, OpClose:
		if err = wantArgs(cmd.Op, args, 1, 1); err != nil {
			break
		}
		cmd.PaneID, err = parsePaneID(args[0])
	case OpResize:
		if err = wantArgs(cmd.Op, args, 2, 3); err != nil {
			break
		}
		if cmd.PaneID, err = parsePaneID(args[0]); err != nil {
			break
		}
		if cmd.Size, err = strconv.ParseFloat(args[1], 64); err != nil {
			err = fmt.Errorf("size %q: %w", args[1], ErrScriptSyntax)
			break
		}
		if len(args) == 3 {
			cmd.Unit = entity.Unit(strings.ToLower(args[2]))
			if !cmd.Unit.Valid() {
				err = fmt.Errorf("unit %q: %w", args[2], ErrScriptSyntax)
			}
		}
	default:
		err = fmt.Errorf("unknown instruction %q: %w", fields[0], ErrScriptSyntax)
	}

	if err != nil {
		return ScriptCommand{}, false, err
	}
	return cmd, true, nil
}

func wantArgs(op ScriptOp, args []string, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return fmt.Errorf("%s takes %d argument(s), got %d: %w", op, lo, len(args), ErrScriptSyntax)
		}
		return fmt.Errorf("%s takes %d to %d arguments, got %d: %w", op, lo, hi, len(args), ErrScriptSyntax)
	}
	return nil
}

func parsePaneID(s string) (entity.PaneID, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("pane id %q: %w", s, ErrScriptSyntax)
	}
	return entity.PaneID(n), nil
}

// ScriptLineError ties a failure to its source line.
type ScriptLineError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptLineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ScriptLineError) Unwrap() error {
	return e.Err
}

// RunScriptInput contains parameters for running a layout script.
type RunScriptInput struct {
	Name        string
	Source      io.Reader
	StopOnError bool
	Sink        port.LayoutEventSink // Optional
}

// RunScriptOutput contains the result of a script run.
type RunScriptOutput struct {
	Applied int
	Errors  []*ScriptLineError
}

// RunScriptUseCase interprets layout scripts against a pane layout.
type RunScriptUseCase struct {
	panes *ManagePanesUseCase
}

// NewRunScriptUseCase creates a new script runner.
func NewRunScriptUseCase(panes *ManagePanesUseCase) *RunScriptUseCase {
	return &RunScriptUseCase{panes: panes}
}

// Run applies the script line by line. Line failures are collected in the
// output; the returned error is reserved for read failures and cancellation.
func (uc *RunScriptUseCase) Run(ctx context.Context, input RunScriptInput) (*RunScriptOutput, error) {
	if input.Source == nil {
		return nil, fmt.Errorf("script source is required")
	}
	if input.Name != "" {
		ctx = logging.WithScript(ctx, input.Name)
	}
	log := logging.FromContext(ctx)

	var tr *tracer
	if input.Sink != nil {
		tr = newTracer(ctx, uc.panes.Layout(), input.Sink)
		defer tr.stop()
		tr.sync()
	}

	out := &RunScriptOutput{}
	scanner := bufio.NewScanner(input.Source)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		lineNo++
		text := scanner.Text()

		cmd, ok, err := ParseScriptLine(text)
		if err == nil && ok {
			err = uc.apply(ctx, cmd)
			if tr != nil {
				tr.sync()
			}
		}
		if err != nil {
			lineErr := &ScriptLineError{Line: lineNo, Text: strings.TrimSpace(text), Err: err}
			out.Errors = append(out.Errors, lineErr)
			log.Warn().Err(err).Int("line", lineNo).Msg("script line failed")
			if input.StopOnError {
				break
			}
			continue
		}
		if ok {
			out.Applied++
		}
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("read script: %w", err)
	}

	log.Debug().
		Int("applied", out.Applied).
		Int("errors", len(out.Errors)).
		Msg("script finished")

	return out, nil
}

func (uc *RunScriptUseCase) apply(ctx context.Context, cmd ScriptCommand) error {
	switch cmd.Op {
	case OpRoot:
		return uc.panes.CreateRoot(ctx)
	case OpSplit:
		_, err := uc.panes.Split(ctx, SplitPaneInput{ParentID: cmd.PaneID, Direction: cmd.Direction})
		return err
	case OpAppend:
		_, err := uc.panes.Insert(ctx, InsertPaneInput{ParentID: cmd.PaneID, Order: entity.Append})
		return err
	case OpPrepend:
		_, err := uc.panes.Insert(ctx, InsertPaneInput{ParentID: cmd.PaneID, Order: entity.Prepend})
		return err
	case OpResize:
		return uc.panes.Resize(ctx, ResizePaneInput{PaneID: cmd.PaneID, Size: cmd.Size, Unit: cmd.Unit})
	case OpClose:
		_, err := uc.panes.Close(ctx, cmd.PaneID)
		return err
	}
	return fmt.Errorf("unknown instruction %q: %w", cmd.Op, ErrScriptSyntax)
}

type subscription struct {
	kind  entity.EventKind
	scope entity.Scope
	id    event.ListenerID
}

// tracer keeps a listener on every live pane and forwards events to a sink.
type tracer struct {
	ctx     context.Context
	layout  *entity.Layout
	sink    port.LayoutEventSink
	rootSub []subscription
	panes   map[entity.PaneID][]subscription
}

func newTracer(ctx context.Context, layout *entity.Layout, sink port.LayoutEventSink) *tracer {
	return &tracer{
		ctx:    ctx,
		layout: layout,
		sink:   sink,
		panes:  make(map[entity.PaneID][]subscription),
	}
}

func (t *tracer) forward(ev entity.PaneEvent) {
	t.sink.Record(t.ctx, ev)
}

// sync subscribes panes that appeared since the last call.
func (t *tracer) sync() {
	log := logging.FromContext(t.ctx)

	if t.rootSub == nil {
		for _, kind := range []entity.EventKind{entity.EventSplit, entity.EventUnsplit} {
			id, err := t.layout.Subscribe(kind, entity.RootScope, t.forward).Get()
			if err != nil {
				log.Error().Err(err).Str("kind", string(kind)).Msg("trace root subscription failed")
				continue
			}
			t.rootSub = append(t.rootSub, subscription{kind: kind, scope: entity.RootScope, id: id})
		}
	}

	for _, paneID := range t.layout.IDs() {
		if _, ok := t.panes[paneID]; ok {
			continue
		}
		scope := entity.PaneScope(paneID)
		subs := make([]subscription, 0, len(entity.EventKinds))
		for _, kind := range entity.EventKinds {
			handler := t.forward
			if kind == entity.EventClose {
				handler = func(ev entity.PaneEvent) {
					t.forward(ev)
					// Listeners die with the pane; the id may be reused later.
					delete(t.panes, ev.PaneID)
				}
			}
			id, err := t.layout.Subscribe(kind, scope, handler).Get()
			if err != nil {
				log.Error().Err(err).Int("pane_id", int(paneID)).Msg("trace subscription failed")
				continue
			}
			subs = append(subs, subscription{kind: kind, scope: scope, id: id})
		}
		t.panes[paneID] = subs
	}
}

func (t *tracer) stop() {
	log := logging.FromContext(t.ctx)
	unsubscribe := func(s subscription) {
		if err := t.layout.Unsubscribe(s.kind, s.scope, s.id).Error(); err != nil {
			log.Debug().Err(err).Msg("trace unsubscribe failed")
		}
	}
	for _, s := range t.rootSub {
		unsubscribe(s)
	}
	for paneID, subs := range t.panes {
		for _, s := range subs {
			unsubscribe(s)
		}
		delete(t.panes, paneID)
	}
	t.rootSub = nil
}
