package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/bbtree/internal/domain"
)

// RecordEvent is emitted after a log record has been applied.
type RecordEvent struct {
	Line    int
	Records int
	Summary string
}

// RenderEvent is emitted after a snapshot has been written and rendered.
type RenderEvent struct {
	Seq      int
	Records  int
	Nodes    int
	DotPath  string
	Outputs  []string
	Duration time.Duration
	Err      error
}

// RunEvent captures the outcome of a whole conversion.
type RunEvent struct {
	Input     string
	Sense     domain.Sense
	Records   int
	Nodes     int
	Incumbent *float64
	Duration  time.Duration
	Err       error
}

// RunObserver receives conversion telemetry.
type RunObserver interface {
	ObserveRecord(ctx context.Context, event RecordEvent)
	ObserveRender(ctx context.Context, event RenderEvent)
	ObserveRun(ctx context.Context, event RunEvent)
}

// NoopRunObserver ignores all events.
type NoopRunObserver struct{}

func (NoopRunObserver) ObserveRecord(context.Context, RecordEvent) {}
func (NoopRunObserver) ObserveRender(context.Context, RenderEvent) {}
func (NoopRunObserver) ObserveRun(context.Context, RunEvent)       {}

type logRunObserver struct {
	logger *slog.Logger
}

// NewLogRunObserver writes conversion events to w. Per-record events are
// logged at debug level, so they only show up when level allows it.
func NewLogRunObserver(w io.Writer, level slog.Leveler) RunObserver {
	if w == nil {
		return NoopRunObserver{}
	}
	return &logRunObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logRunObserver) ObserveRecord(ctx context.Context, event RecordEvent) {
	o.logger.DebugContext(ctx, "record",
		"line", event.Line,
		"records", event.Records,
		"summary", event.Summary,
	)
}

func (o *logRunObserver) ObserveRender(ctx context.Context, event RenderEvent) {
	attrs := []any{
		"seq", event.Seq,
		"records", event.Records,
		"nodes", event.Nodes,
		"dot", event.DotPath,
		"outputs", event.Outputs,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "snapshot", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "snapshot", attrs...)
}

func (o *logRunObserver) ObserveRun(ctx context.Context, event RunEvent) {
	attrs := []any{
		"input", event.Input,
		"sense", string(event.Sense),
		"records", event.Records,
		"nodes", event.Nodes,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Incumbent != nil {
		attrs = append(attrs, "incumbent", domain.Nice(*event.Incumbent))
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "convert", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "convert", attrs...)
}

func runObserverOrNoop(observers []RunObserver) RunObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopRunObserver{}
}
