package journal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"practicejournal/internal/lessons"
	"practicejournal/internal/prompt"
	"practicejournal/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBroken = errors.New("broken lesson")

// brokenLesson always fails after printing a line.
type brokenLesson struct{}

func (brokenLesson) ID() string    { return "day-99" }
func (brokenLesson) Title() string { return "Broken" }
func (brokenLesson) Brief() string { return "# Day 99: Broken" }
func (brokenLesson) Run(_ context.Context, s *lessons.Session) error {
	s.Out.Line("about to fail")
	return errBroken
}

func init() {
	lessons.Register(brokenLesson{})
}

type memRecorder struct {
	mu   sync.Mutex
	runs []store.Run
	err  error
}

func (m *memRecorder) RecordRun(_ context.Context, r store.Run) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.runs = append(m.runs, r)
	return r.Lesson, nil
}

func TestRunSingleLesson(t *testing.T) {
	var out bytes.Buffer
	rec := &memRecorder{}
	dir := filepath.Join(t.TempDir(), "out")
	r := NewRunner(&out, prompt.NewScripted("Grace", "42"), Options{Plain: true, OutputDir: dir, Recorder: rec})

	require.NoError(t, r.Run(context.Background(), "1"))
	assert.Contains(t, out.String(), "Day 1 completed!")
	assert.Contains(t, out.String(), "Grace")

	require.Len(t, rec.runs, 1)
	assert.Equal(t, "day-01", rec.runs[0].Lesson)
	assert.Equal(t, store.StatusOK, rec.runs[0].Status)
	assert.Equal(t, out.Len(), rec.runs[0].OutputBytes)
}

func TestRunWritesIntoOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := NewRunner(&bytes.Buffer{}, nil, Options{Plain: true, OutputDir: dir})
	require.NoError(t, r.Run(context.Background(), "day-09"))

	data, err := os.ReadFile(filepath.Join(dir, "errors.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Database connection failed\nFile not found\n", string(data))
}

func TestRunUnknownLesson(t *testing.T) {
	r := NewRunner(&bytes.Buffer{}, nil, Options{})
	assert.ErrorIs(t, r.Run(context.Background(), "day-77"), lessons.ErrUnknownLesson)
}

func TestRunRecordsFailure(t *testing.T) {
	rec := &memRecorder{}
	r := NewRunner(&bytes.Buffer{}, nil, Options{Plain: true, Recorder: rec})

	err := r.Run(context.Background(), "day-99")
	require.ErrorIs(t, err, errBroken)
	require.Len(t, rec.runs, 1)
	assert.Equal(t, store.StatusFailed, rec.runs[0].Status)
	assert.Contains(t, rec.runs[0].Error, "broken lesson")
}

func TestRunLessonsStopsAtFirstFailure(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, nil, Options{Plain: true, OutputDir: t.TempDir()})

	err := r.RunLessons(context.Background(), []string{"day-02", "day-99", "day-03"})
	require.ErrorIs(t, err, errBroken)
	assert.Contains(t, out.String(), "Day 2 completed!")
	assert.NotContains(t, out.String(), "Day 3:")
}

func TestRunAllKeepsOrderAndContinuesPastFailures(t *testing.T) {
	var out bytes.Buffer
	rec := &memRecorder{}
	r := NewRunner(&out, nil, Options{Plain: true, Concurrency: 4, OutputDir: t.TempDir(), Recorder: rec})

	results, err := r.RunAll(context.Background())
	require.ErrorIs(t, err, errBroken)

	all := lessons.All()
	require.Len(t, results, len(all))
	for i, res := range results {
		assert.Equal(t, all[i].ID(), res.Lesson)
		if res.Lesson == "day-99" {
			assert.Error(t, res.Err)
			continue
		}
		assert.NoError(t, res.Err, res.Lesson)
	}

	text := out.String()
	last := -1
	for i := 1; i <= 13; i++ {
		marker := lessonBanner(i)
		idx := strings.Index(text, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %q", marker)
		assert.Greater(t, idx, last, "%q out of order", marker)
		last = idx
	}
	assert.Contains(t, text, "about to fail")
	assert.Len(t, rec.runs, len(all))
}

func TestRunAllSurvivesRecorderErrors(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	r := NewRunner(&bytes.Buffer{}, nil, Options{Plain: true, Concurrency: 2, OutputDir: t.TempDir(), Recorder: rec})
	_, err := r.RunAll(context.Background())
	assert.ErrorIs(t, err, errBroken)
}

func TestRunAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &memRecorder{}
	r := NewRunner(&bytes.Buffer{}, nil, Options{Plain: true, OutputDir: t.TempDir(), Recorder: rec})

	_, err := r.RunAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotEmpty(t, rec.runs, "runs are recorded even after cancellation")
}

func lessonBanner(day int) string {
	l, err := lessons.Get(strconv.Itoa(day))
	if err != nil {
		return ""
	}
	return fmt.Sprintf("Day %d: %s", day, l.Title())
}
