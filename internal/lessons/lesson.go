// Package lessons holds the journal's daily lessons. Each lesson is
// standalone: it prints its walkthrough through a Session and may ask the
// user for input, but never calls another lesson.
package lessons

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"practicejournal/internal/logging"
	"practicejournal/internal/prompt"
	"practicejournal/internal/ui"
)

// ErrUnknownLesson is returned by Get for an unregistered ID.
var ErrUnknownLesson = errors.New("unknown lesson")

// Lesson is one day of the journal.
type Lesson interface {
	ID() string
	Title() string
	// Brief is a markdown description of what the lesson covers.
	Brief() string
	Run(ctx context.Context, s *Session) error
}

// Session is what a running lesson gets: where to print, where to read
// answers from, and a directory for files it writes.
type Session struct {
	Out *ui.Printer
	In  prompt.Prompter
	Dir string
}

// NewSession builds a session. A nil prompter answers with defaults.
func NewSession(out *ui.Printer, in prompt.Prompter, dir string) *Session {
	if in == nil {
		in = prompt.Defaults{}
	}
	if dir == "" {
		dir = "."
	}
	return &Session{Out: out, In: in, Dir: dir}
}

// Path joins name onto the session directory.
func (s *Session) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Ask prompts for a line and echoes the question and answer to the output.
func (s *Session) Ask(ctx context.Context, question, fallback string) (string, error) {
	answer, err := s.In.Ask(ctx, question, fallback)
	if err != nil {
		return "", err
	}
	s.Out.Raw(question + answer + "\n")
	return answer, nil
}

// AskInt asks for an integer. A non-integer answer prints a message and
// reports ok=false; only prompt failures return an error.
func (s *Session) AskInt(ctx context.Context, question string, fallback int) (n int, ok bool, err error) {
	answer, err := s.Ask(ctx, question, strconv.Itoa(fallback))
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil {
		logging.LessonsDebug("Skipped non-integer answer %q to %q", answer, question)
		s.Out.Warn("Invalid input: %q is not a whole number.", answer)
		return 0, false, nil
	}
	return n, true, nil
}

// AskFloat asks for a number, like AskInt.
func (s *Session) AskFloat(ctx context.Context, question string, fallback float64) (f float64, ok bool, err error) {
	answer, err := s.Ask(ctx, question, strconv.FormatFloat(fallback, 'f', -1, 64))
	if err != nil {
		return 0, false, err
	}
	f, convErr := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if convErr != nil {
		logging.LessonsDebug("Skipped non-numeric answer %q to %q", answer, question)
		s.Out.Warn("Invalid input: %q is not a number.", answer)
		return 0, false, nil
	}
	return f, true, nil
}

// lesson is the Lesson implementation every day file registers.
type lesson struct {
	id    string
	title string
	brief string
	run   func(ctx context.Context, s *Session) error
}

func (l *lesson) ID() string    { return l.id }
func (l *lesson) Title() string { return l.title }
func (l *lesson) Brief() string { return l.brief }

func (l *lesson) Run(ctx context.Context, s *Session) error {
	timer := logging.StartTimer(logging.CategoryLessons, l.id)
	defer timer.Stop()
	logging.Lessons("Starting %s (%s)", l.id, l.title)

	s.Out.Banner(fmt.Sprintf("%s: %s", dayLabel(l.id), l.title))
	if err := l.run(ctx, s); err != nil {
		return fmt.Errorf("%s: %w", l.id, err)
	}
	s.Out.Blank()
	s.Out.Rule("=", ui.RuleWidth)
	s.Out.Success("%s completed!", dayLabel(l.id))
	s.Out.Rule("=", ui.RuleWidth)
	return s.Out.Err()
}

// dayLabel turns "day-03" into "Day 3".
func dayLabel(id string) string {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "day-"))
	if err != nil {
		return id
	}
	return fmt.Sprintf("Day %d", n)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Lesson)
)

// Register adds a lesson. It panics on a duplicate ID.
func Register(l Lesson) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[l.ID()]; dup {
		panic("lessons: Register called twice for " + l.ID())
	}
	registry[l.ID()] = l
}

// Get returns the lesson for id. A bare number like "3" is accepted for "day-03".
func Get(id string) (Lesson, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if l, ok := registry[NormalizeID(id)]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLesson, id)
}

// All returns every lesson ordered by ID.
func All() []Lesson {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Lesson, 0, len(registry))
	for _, l := range registry {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// NormalizeID maps "3", "03", "day3" and "day-3" to "day-03".
func NormalizeID(id string) string {
	s := strings.ToLower(strings.TrimSpace(id))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "day"), "-")
	n, err := strconv.Atoi(s)
	if err != nil {
		return strings.TrimSpace(id)
	}
	return fmt.Sprintf("day-%02d", n)
}
