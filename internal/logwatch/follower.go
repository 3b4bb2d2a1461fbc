// Package logwatch follows a growing log file and streams the messages of
// one level as they are appended.
package logwatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"practicejournal/internal/challenges"
	"practicejournal/internal/logging"
)

// DefaultLevel is the level followed when none is given.
const DefaultLevel = "ERROR"

// Options configure a Follower.
type Options struct {
	// Level is matched against the text before ": ". Defaults to ERROR.
	Level string
	// FromStart replays lines already in the file. Otherwise only bytes
	// appended after Start are read.
	FromStart bool
	// PollInterval re-checks the file size in case an event is missed.
	// Zero means 250ms; negative disables polling.
	PollInterval time.Duration
}

// Stats counts follower activity.
type Stats struct {
	Events    int
	Lines     int
	Matched   int
	Truncates int
	Errors    int
}

// Follower tails one file.
type Follower struct {
	mu      sync.Mutex
	path    string
	opts    Options
	watcher *fsnotify.Watcher
	out     chan string
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	stopped bool

	offset  int64
	partial string
	stats   Stats
}

// NewFollower prepares a follower for path. Call Start to begin.
func NewFollower(path string, opts Options) (*Follower, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if opts.Level == "" {
		opts.Level = DefaultLevel
	}
	opts.Level = strings.ToUpper(opts.Level)
	if opts.PollInterval == 0 {
		opts.PollInterval = 250 * time.Millisecond
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	return &Follower{
		path:    abs,
		opts:    opts,
		watcher: w,
		out:     make(chan string, 64),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Messages delivers matched messages. It is closed when the follower stops.
func (f *Follower) Messages() <-chan string { return f.out }

// Stats returns a snapshot of the counters.
func (f *Follower) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Start begins following. It does not block. The file must exist.
func (f *Follower) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.running || f.stopped {
		f.mu.Unlock()
		return nil
	}
	info, err := os.Stat(f.path)
	if err != nil {
		f.mu.Unlock()
		return fmt.Errorf("follow %s: %w", f.path, err)
	}
	if !f.opts.FromStart {
		f.offset = info.Size()
	}
	f.running = true
	f.mu.Unlock()

	// Watch the directory so rotation by rename or recreate is seen.
	if err := f.watcher.Add(filepath.Dir(f.path)); err != nil {
		logging.WatchWarn("Follower: watch %s failed: %v", filepath.Dir(f.path), err)
	} else {
		logging.Watch("Follower: watching %s for %s lines", f.path, f.opts.Level)
	}

	go f.run(ctx)
	return nil
}

// Stop ends following, waits for the loop to exit and closes Messages.
func (f *Follower) Stop() {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.stopped = true
	wasRunning := f.running
	f.mu.Unlock()

	close(f.stopCh)
	if wasRunning {
		<-f.doneCh
	} else {
		close(f.out)
	}
	if err := f.watcher.Close(); err != nil {
		logging.WatchWarn("Follower: error closing watcher: %v", err)
	}
	logging.Watch("Follower: stopped")
}

func (f *Follower) run(ctx context.Context) {
	defer close(f.doneCh)
	defer close(f.out)

	var tick <-chan time.Time
	if f.opts.PollInterval > 0 {
		ticker := time.NewTicker(f.opts.PollInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	// Pick up anything already due (FromStart, or writes before the watch).
	if !f.readNew(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.stopCh:
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != f.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			f.mu.Lock()
			f.stats.Events++
			f.mu.Unlock()
			if !f.readNew(ctx) {
				return
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			logging.WatchWarn("Follower: watcher error: %v", err)
			f.mu.Lock()
			f.stats.Errors++
			f.mu.Unlock()
		case <-tick:
			if !f.readNew(ctx) {
				return
			}
		}
	}
}

// readNew reads bytes appended since the last read and emits matching
// messages. It returns false when the follower should exit.
func (f *Follower) readNew(ctx context.Context) bool {
	chunk, err := f.readChunk()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.WatchWarn("Follower: read %s: %v", f.path, err)
		}
		return true
	}
	if chunk == "" {
		return true
	}

	f.mu.Lock()
	data := f.partial + chunk
	lines := strings.Split(data, "\n")
	f.partial = lines[len(lines)-1]
	lines = lines[:len(lines)-1]
	f.stats.Lines += len(lines)
	f.mu.Unlock()

	for _, line := range lines {
		entry, ok := challenges.ParseLogLine(strings.TrimRight(line, "\r"))
		if !ok || entry.Level != f.opts.Level {
			continue
		}
		select {
		case f.out <- entry.Message:
			f.mu.Lock()
			f.stats.Matched++
			f.mu.Unlock()
		case <-f.stopCh:
			return false
		case <-ctx.Done():
			return false
		}
	}
	return true
}

// readChunk returns the bytes between the saved offset and the end of the
// file, resetting to the start when the file shrank.
func (f *Follower) readChunk() (string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if info.Size() < f.offset {
		logging.Watch("Follower: %s truncated, rereading from start", f.path)
		f.offset = 0
		f.partial = ""
		f.stats.Truncates++
	}
	if info.Size() == f.offset {
		return "", nil
	}
	buf := make([]byte, info.Size()-f.offset)
	n, err := file.ReadAt(buf, f.offset)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	f.offset += int64(n)
	return string(buf[:n]), nil
}
