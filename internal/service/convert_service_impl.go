package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/bbtree/internal/contract"
	"github.com/alexanderramin/bbtree/internal/db"
	"github.com/alexanderramin/bbtree/internal/domain"
	"github.com/alexanderramin/bbtree/internal/dot"
	"github.com/alexanderramin/bbtree/internal/render"
	"github.com/alexanderramin/bbtree/internal/repository"
	"github.com/alexanderramin/bbtree/internal/tree"
	"github.com/alexanderramin/bbtree/internal/vbc"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

type convertService struct {
	renderer render.Renderer
	runs     repository.RunRepo
	uow      db.UnitOfWork
	observer RunObserver
}

// NewConvertService wires the conversion pipeline. History is kept only
// when both runs and uow are non-nil.
func NewConvertService(renderer render.Renderer, runs repository.RunRepo, uow db.UnitOfWork, observers ...RunObserver) ConvertService {
	if renderer == nil {
		renderer = render.Nop{}
	}
	return &convertService{
		renderer: renderer,
		runs:     runs,
		uow:      uow,
		observer: runObserverOrNoop(observers),
	}
}

func (s *convertService) historyEnabled() bool {
	return s.runs != nil && s.uow != nil
}

func (s *convertService) Convert(ctx context.Context, req contract.ConvertRequest) (*contract.ConvertResponse, error) {
	start := time.Now()
	c, err := s.convert(ctx, req)

	event := RunEvent{Input: req.InputPath, Duration: time.Since(start), Err: err}
	var resp *contract.ConvertResponse
	if c != nil {
		resp = c.response()
		resp.Duration = event.Duration
		event.Sense = resp.Sense
		event.Records = resp.Records
		event.Nodes = resp.Nodes
		event.Incumbent = resp.Incumbent
	}
	s.observer.ObserveRun(ctx, event)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *convertService) convert(ctx context.Context, req contract.ConvertRequest) (*conversion, error) {
	opts, err := normalizeConvert(&req)
	if err != nil {
		return nil, err
	}
	sense, err := resolveSense(req.InputPath, req.Sense)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", req.InputPath, err)
	}
	defer f.Close()

	c := &conversion{svc: s, req: req, opts: opts, machine: tree.NewMachine(sense)}
	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	final, runErr := c.process(ctx, f)
	if err := c.finish(context.WithoutCancel(ctx), final, runErr); err != nil {
		if runErr != nil {
			return c, errors.Join(runErr, err)
		}
		return c, err
	}
	return c, runErr
}

func (s *convertService) Build(ctx context.Context, req contract.BuildRequest) (*tree.Snapshot, error) {
	c, f, err := s.openBuild(req)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	feed := newLineFeed(f)
	if err := c.drain(ctx, feed); err != nil {
		return nil, err
	}
	if line, ok := feed.rest(); ok {
		if err := c.line(ctx, feed.lineNo, line); err != nil {
			return nil, err
		}
	}
	snap := c.machine.Snapshot()
	return &snap, nil
}

func (s *convertService) Watch(ctx context.Context, req contract.BuildRequest, onUpdate func(tree.Snapshot)) (*tree.Snapshot, error) {
	c, f, err := s.openBuild(req)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := watchFile(req.InputPath)
	if err != nil {
		return nil, err
	}
	defer w.Close()

	feed := newLineFeed(f)
	if err := c.drain(ctx, feed); err != nil && ctx.Err() == nil {
		return nil, err
	}

	published := false
	batch := func() error {
		if published && c.pending == 0 {
			return nil
		}
		published = true
		c.pending = 0
		if onUpdate != nil {
			onUpdate(c.machine.Snapshot())
		}
		return nil
	}
	if err := c.follow(ctx, w, feed, batch); err != nil {
		return nil, err
	}
	snap := c.machine.Snapshot()
	return &snap, nil
}

// openBuild resolves the sense and opens the log for an in-memory replay.
func (s *convertService) openBuild(req contract.BuildRequest) (*conversion, *os.File, error) {
	sense, err := resolveSense(req.InputPath, req.Sense)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(req.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", req.InputPath, err)
	}
	c := &conversion{
		svc:     s,
		req:     contract.ConvertRequest{InputPath: req.InputPath},
		machine: tree.NewMachine(sense),
	}
	return c, f, nil
}

func normalizeConvert(req *contract.ConvertRequest) (dot.Options, error) {
	if strings.TrimSpace(req.InputPath) == "" {
		return dot.Options{}, &domain.ConfigError{Msg: "input file is required"}
	}
	if req.OutputBase == "" {
		req.OutputBase = req.InputPath
	}
	if req.Frequency < 0 {
		return dot.Options{}, &domain.ConfigError{Msg: fmt.Sprintf("frequency must be >= 0, got %d", req.Frequency)}
	}
	if req.Delay < 0 {
		return dot.Options{}, &domain.ConfigError{Msg: fmt.Sprintf("delay must be >= 0, got %s", req.Delay)}
	}
	if !req.NoRender {
		if len(req.Formats) == 0 {
			return dot.Options{}, &domain.ConfigError{Msg: "at least one output format is required"}
		}
		for _, format := range req.Formats {
			if format == "" || strings.ContainsAny(format, `/\ `) {
				return dot.Options{}, &domain.ConfigError{Msg: fmt.Sprintf("invalid output format %q", format)}
			}
		}
	}
	rankDir := dot.TopBottom
	if req.RankDir != "" {
		rd, err := dot.ParseRankDir(req.RankDir)
		if err != nil {
			return dot.Options{}, err
		}
		rankDir = rd
	}
	return dot.Options{RankDir: rankDir, Legend: req.Legend}, nil
}

// resolveSense validates an explicit sense or detects it from the log.
func resolveSense(path string, sense domain.Sense) (domain.Sense, error) {
	if sense != "" {
		return domain.ParseSense(string(sense))
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return vbc.DetectSense(f)
}

// conversion is the state of one Convert call.
type conversion struct {
	svc     *convertService
	req     contract.ConvertRequest
	opts    dot.Options
	machine *tree.Machine
	run     *domain.Run
	pending int // records applied since the last snapshot

	snapshots int
	dotPath   string
	outputs   []string
	last      *tree.Snapshot
}

func (c *conversion) begin(ctx context.Context) error {
	if !c.svc.historyEnabled() {
		return nil
	}
	c.run = &domain.Run{
		ID:         uuid.New().String(),
		InputPath:  c.req.InputPath,
		OutputBase: c.req.OutputBase,
		Sense:      c.machine.Sense(),
		Follow:     c.req.Follow,
		Status:     domain.RunRunning,
		StartedAt:  time.Now().UTC(),
	}
	if err := c.svc.runs.Create(ctx, c.run); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// process applies the whole log and renders the final snapshot. In follow
// mode it keeps applying appended lines until ctx is done or the file goes
// away.
func (c *conversion) process(ctx context.Context, f *os.File) (*domain.SnapshotRecord, error) {
	var watcher *fsnotify.Watcher
	if c.req.Follow {
		w, err := watchFile(c.req.InputPath)
		if err != nil {
			return nil, err
		}
		defer w.Close()
		watcher = w
	}

	feed := newLineFeed(f)
	if err := c.drain(ctx, feed); err != nil {
		if !c.req.Follow || ctx.Err() == nil {
			return nil, err
		}
	}

	if watcher != nil {
		batch := func() error { return c.refresh(ctx) }
		if err := c.follow(ctx, watcher, feed, batch); err != nil {
			return nil, err
		}
		ctx = context.WithoutCancel(ctx)
	} else if line, ok := feed.rest(); ok {
		if err := c.line(ctx, feed.lineNo, line); err != nil {
			return nil, err
		}
	}

	return c.snapshot(ctx, c.req.OutputBase)
}

func (c *conversion) drain(ctx context.Context, feed *lineFeed) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok, err := feed.next()
		if err != nil {
			return fmt.Errorf("reading %s: %w", c.req.InputPath, err)
		}
		if !ok {
			return nil
		}
		if err := c.line(ctx, feed.lineNo, line); err != nil {
			return err
		}
	}
}

func (c *conversion) line(ctx context.Context, lineNo int, text string) error {
	rec, err := vbc.ParseLine(lineNo, text)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	if err := c.machine.Apply(rec); err != nil {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}
	c.pending++

	n := c.machine.Records()
	c.svc.observer.ObserveRecord(ctx, RecordEvent{Line: lineNo, Records: n, Summary: fmt.Sprint(rec)})

	if c.req.Frequency > 0 && n%c.req.Frequency == 0 {
		if err := c.checkpoint(ctx, numberedBase(c.req.OutputBase, n)); err != nil {
			return err
		}
		return sleepCtx(ctx, c.req.Delay)
	}
	return nil
}

// checkpoint renders an intermediate snapshot and records it in the history.
func (c *conversion) checkpoint(ctx context.Context, outBase string) error {
	rec, err := c.snapshot(ctx, outBase)
	if err != nil {
		return err
	}
	if c.run == nil {
		return nil
	}
	if err := c.svc.runs.AddSnapshot(ctx, rec); err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	return nil
}

// snapshot writes the DOT file and renders it to outBase.<format> for each
// configured format.
func (c *conversion) snapshot(ctx context.Context, outBase string) (*domain.SnapshotRecord, error) {
	start := time.Now()
	snap := c.machine.Snapshot()
	c.last = &snap

	data := dot.Bytes(snap, c.opts)
	dotPath := c.req.OutputBase + ".dot"
	event := RenderEvent{Seq: snap.Seq, Records: snap.Records, Nodes: len(snap.Nodes), DotPath: dotPath}

	err := os.WriteFile(dotPath, data, 0o644)
	if err != nil {
		err = fmt.Errorf("writing %s: %w", dotPath, err)
	}
	var outputs []string
	if err == nil && !c.req.NoRender {
		for _, format := range c.req.Formats {
			out := outBase + "." + format
			if rerr := c.svc.renderer.Render(ctx, data, format, out); rerr != nil {
				err = fmt.Errorf("rendering %s: %w", out, rerr)
				break
			}
			outputs = append(outputs, out)
		}
	}

	event.Outputs = outputs
	event.Duration = time.Since(start)
	event.Err = err
	c.svc.observer.ObserveRender(ctx, event)
	if err != nil {
		return nil, err
	}

	c.pending = 0
	c.snapshots++
	c.dotPath = dotPath
	c.outputs = append(c.outputs, outputs...)

	rec := &domain.SnapshotRecord{
		Seq:       snap.Seq,
		Records:   snap.Records,
		Nodes:     len(snap.Nodes),
		Incumbent: domain.BoundPtr(snap.Incumbent),
		DotPath:   dotPath,
		Outputs:   outputs,
		CreatedAt: time.Now().UTC(),
	}
	if c.run != nil {
		rec.RunID = c.run.ID
	}
	return rec, nil
}

// finish stores the final snapshot and the run outcome in one transaction.
func (c *conversion) finish(ctx context.Context, final *domain.SnapshotRecord, runErr error) error {
	if c.run == nil {
		return nil
	}
	snap := c.machine.Snapshot()
	now := time.Now().UTC()
	c.run.FinishedAt = &now
	c.run.Records = snap.Records
	c.run.Nodes = len(snap.Nodes)
	c.run.Feasible = snap.Feasible()
	c.run.Incumbent = domain.BoundPtr(snap.Incumbent)
	c.run.Status = domain.RunDone
	if runErr != nil {
		c.run.Status = domain.RunFailed
		c.run.Error = runErr.Error()
	}

	err := c.svc.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRuns := repository.NewSQLiteRunRepo(tx)
		if final != nil {
			if err := txRuns.AddSnapshot(ctx, final); err != nil {
				return err
			}
		}
		return txRuns.Finish(ctx, c.run)
	})
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

func (c *conversion) response() *contract.ConvertResponse {
	snap := c.machine.Snapshot()
	if c.last != nil && c.last.Records == snap.Records {
		snap = *c.last
	}
	resp := &contract.ConvertResponse{
		Sense:     snap.Sense,
		Records:   snap.Records,
		Nodes:     len(snap.Nodes),
		Feasible:  snap.Feasible(),
		Inferior:  snap.CountColor(domain.ColorInferior),
		Optimal:   snap.CountColor(domain.ColorOptimal),
		Incumbent: domain.BoundPtr(snap.Incumbent),
		Snapshots: c.snapshots,
		DotPath:   c.dotPath,
		Outputs:   c.outputs,
		Final:     snap,
	}
	if v, ok := c.machine.LastAnnounced(); ok {
		resp.Announced = &v
	}
	if c.run != nil {
		resp.RunID = c.run.ID
	}
	return resp
}

func numberedBase(base string, n int) string {
	return fmt.Sprintf("%s_%05d", base, n)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
