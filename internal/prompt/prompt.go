// Package prompt supplies line input to lessons. A Prompter is picked once per
// run: a bubbletea text input on a terminal, a line reader for piped stdin,
// a scripted queue for tests and batch runs, or fixed defaults.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"practicejournal/internal/logging"

	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned when the user cancels a prompt with Ctrl+C or Esc.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks the user a question and returns the answer. fallback is
// returned when no answer can be read.
type Prompter interface {
	Ask(ctx context.Context, question, fallback string) (string, error)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ForStdio returns a TeaPrompter when in is a terminal and a LinePrompter otherwise.
func ForStdio(in *os.File, out io.Writer) Prompter {
	if IsTerminal(in) {
		logging.PromptDebug("stdin is a terminal, using interactive prompter")
		return NewTeaPrompter(in, out)
	}
	logging.PromptDebug("stdin is not a terminal, reading lines")
	return NewLinePrompter(in)
}

// LinePrompter reads answers one line at a time from a reader. Call Close
// when done so the reader goroutine can exit.
type LinePrompter struct {
	r         io.Reader
	once      sync.Once
	lines     chan string
	done      chan struct{}
	closeOnce sync.Once
	errMu     sync.Mutex
	err       error
}

// NewLinePrompter reads answers from r.
func NewLinePrompter(r io.Reader) *LinePrompter {
	return &LinePrompter{r: r, lines: make(chan string), done: make(chan struct{})}
}

func (p *LinePrompter) readLoop() {
	defer close(p.lines)
	sc := bufio.NewScanner(p.r)
	for sc.Scan() {
		select {
		case p.lines <- sc.Text():
		case <-p.done:
			return
		}
	}
	if err := sc.Err(); err != nil {
		p.errMu.Lock()
		p.err = err
		p.errMu.Unlock()
	}
}

// Ask returns the next line. At end of input it returns fallback.
func (p *LinePrompter) Ask(ctx context.Context, question, fallback string) (string, error) {
	select {
	case <-p.done:
		return fallback, nil
	default:
	}
	p.once.Do(func() { go p.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return fallback, nil
	case line, ok := <-p.lines:
		if ok {
			return line, nil
		}
	}

	p.errMu.Lock()
	err := p.err
	p.errMu.Unlock()
	if err != nil {
		return "", err
	}
	logging.PromptDebug("input exhausted at %q, using fallback %q", question, fallback)
	return fallback, nil
}

// Close stops the reader goroutine. A goroutine blocked in Read exits once
// that read returns. Later calls to Ask return their fallback.
func (p *LinePrompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// Scripted answers from a fixed queue, then falls back.
type Scripted struct {
	mu      sync.Mutex
	answers []string
	asked   []string
}

// NewScripted queues answers in order.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: append([]string(nil), answers...)}
}

// Ask pops the next queued answer.
func (s *Scripted) Ask(ctx context.Context, question, fallback string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.asked = append(s.asked, question)
	if len(s.answers) == 0 {
		return fallback, nil
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

// Asked returns the questions seen so far.
func (s *Scripted) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}

// Remaining is the number of queued answers not yet used.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// Defaults answers every question with its fallback.
type Defaults struct{}

func (Defaults) Ask(ctx context.Context, _, fallback string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fallback, nil
}
