// Package journal runs lessons and records each run in the history store.
package journal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"practicejournal/internal/lessons"
	"practicejournal/internal/logging"
	"practicejournal/internal/prompt"
	"practicejournal/internal/store"
	"practicejournal/internal/ui"
)

// Recorder persists runs. *store.Store satisfies it.
type Recorder interface {
	RecordRun(ctx context.Context, r store.Run) (string, error)
}

// Options configure a Runner.
type Options struct {
	// Concurrency bounds RunAll. Values below 1 mean 1.
	Concurrency int
	// OutputDir is where lessons write files. Empty means the current directory.
	OutputDir string
	// Plain disables styling.
	Plain bool
	// Recorder, when set, receives one Run per lesson execution.
	Recorder Recorder
}

// Result is the outcome of one lesson execution.
type Result struct {
	Lesson   string
	Output   []byte
	Started  time.Time
	Duration time.Duration
	Err      error
}

// Runner executes lessons.
type Runner struct {
	out  io.Writer
	in   prompt.Prompter
	opts Options
	now  func() time.Time
}

// NewRunner writes lesson output to out and reads answers from in.
// A nil prompter answers every question with its default.
func NewRunner(out io.Writer, in prompt.Prompter, opts Options) *Runner {
	if in == nil {
		in = prompt.Defaults{}
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &Runner{out: out, in: in, opts: opts, now: time.Now}
}

// Run executes one lesson interactively, streaming its output.
func (r *Runner) Run(ctx context.Context, id string) error {
	l, err := lessons.Get(id)
	if err != nil {
		return err
	}
	if err := r.ensureOutputDir(); err != nil {
		return err
	}

	cw := &countingWriter{w: r.out}
	res := r.execute(ctx, l, cw, r.in)
	r.record(ctx, res, cw.n)
	return res.Err
}

// RunLessons runs ids one after another, stopping at the first failure.
func (r *Runner) RunLessons(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := r.Run(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// RunAll executes every lesson concurrently with default answers, then
// writes their outputs in lesson order. A failing lesson does not stop
// the others; the first error in lesson order is returned.
func (r *Runner) RunAll(ctx context.Context) ([]Result, error) {
	timer := logging.StartTimer(logging.CategoryJournal, "RunAll")
	defer timer.Stop()

	if err := r.ensureOutputDir(); err != nil {
		return nil, err
	}

	all := lessons.All()
	results := make([]Result, len(all))

	var g errgroup.Group
	g.SetLimit(r.opts.Concurrency)
	for i, l := range all {
		g.Go(func() error {
			var buf bytes.Buffer
			res := r.execute(ctx, l, &buf, prompt.Defaults{})
			res.Output = buf.Bytes()
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var firstErr error
	for _, res := range results {
		if _, err := r.out.Write(res.Output); err != nil {
			return results, fmt.Errorf("write output of %s: %w", res.Lesson, err)
		}
		r.record(ctx, res, len(res.Output))
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}
	}
	logging.Journal("RunAll finished %d lessons (concurrency %d)", len(results), r.opts.Concurrency)
	return results, firstErr
}

func (r *Runner) execute(ctx context.Context, l lessons.Lesson, w io.Writer, in prompt.Prompter) Result {
	start := r.now()
	s := lessons.NewSession(ui.NewPrinter(w, r.opts.Plain), in, r.opts.OutputDir)
	err := l.Run(ctx, s)
	res := Result{Lesson: l.ID(), Started: start, Duration: r.now().Sub(start), Err: err}
	log := logging.Get(logging.CategoryJournal).With("lesson", l.ID())
	if err != nil {
		log.Warn("Lesson failed: %v", err)
	} else {
		log.Info("Lesson completed in %s", res.Duration)
	}
	return res
}

// record stores res when a recorder is configured. Failures are logged, not returned.
func (r *Runner) record(ctx context.Context, res Result, outputBytes int) {
	if r.opts.Recorder == nil {
		return
	}
	run := store.Run{
		Lesson:      res.Lesson,
		StartedAt:   res.Started,
		Duration:    res.Duration,
		Status:      store.StatusOK,
		OutputBytes: outputBytes,
	}
	if res.Err != nil {
		run.Status = store.StatusFailed
		run.Error = res.Err.Error()
	}
	// Record even when ctx was cancelled mid-lesson.
	if ctx.Err() != nil {
		ctx = context.WithoutCancel(ctx)
	}
	if _, err := r.opts.Recorder.RecordRun(ctx, run); err != nil {
		logging.JournalWarn("Failed to record run of %s: %v", res.Lesson, err)
	}
}

func (r *Runner) ensureOutputDir() error {
	if r.opts.OutputDir == "" {
		return nil
	}
	if err := os.MkdirAll(r.opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// countingWriter counts bytes written through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
