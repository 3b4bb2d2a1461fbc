package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecentRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	id, err := s.RecordRun(ctx, Run{Lesson: "day-01", StartedAt: base, Duration: 120 * time.Millisecond, OutputBytes: 512})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "generated IDs are UUIDs")

	_, err = s.RecordRun(ctx, Run{
		ID:        "fixed-id",
		Lesson:    "day-02",
		StartedAt: base.Add(time.Minute),
		Status:    StatusFailed,
		Error:     "boom",
	})
	require.NoError(t, err)

	runs, err := s.RecentRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "fixed-id", runs[0].ID)
	assert.Equal(t, StatusFailed, runs[0].Status)
	assert.Equal(t, "boom", runs[0].Error)
	assert.Equal(t, "day-01", runs[1].Lesson)
	assert.Equal(t, StatusOK, runs[1].Status)
	assert.Equal(t, 120*time.Millisecond, runs[1].Duration)
	assert.Equal(t, 512, runs[1].OutputBytes)
	assert.True(t, base.Equal(runs[1].StartedAt))

	limited, err := s.RecentRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "day-02", limited[0].Lesson)
}

func TestRecordRunRequiresLesson(t *testing.T) {
	s := openTestStore(t)
	_, err := s.RecordRun(context.Background(), Run{})
	assert.Error(t, err)
}

func TestRecordRunDuplicateID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, err := s.RecordRun(ctx, Run{ID: "same", Lesson: "day-01"})
	require.NoError(t, err)
	_, err = s.RecordRun(ctx, Run{ID: "same", Lesson: "day-01"})
	assert.Error(t, err)
}

func TestLessonStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	runs := []Run{
		{Lesson: "day-03", StartedAt: base, Duration: 100 * time.Millisecond},
		{Lesson: "day-03", StartedAt: base.Add(time.Hour), Duration: 300 * time.Millisecond, Status: StatusFailed},
		{Lesson: "day-01", StartedAt: base.Add(2 * time.Hour), Duration: 50 * time.Millisecond},
	}
	for _, r := range runs {
		_, err := s.RecordRun(ctx, r)
		require.NoError(t, err)
	}

	stats, err := s.LessonStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "day-01", stats[0].Lesson)
	assert.Equal(t, 1, stats[0].Runs)
	assert.Zero(t, stats[0].Failures)

	assert.Equal(t, "day-03", stats[1].Lesson)
	assert.Equal(t, 2, stats[1].Runs)
	assert.Equal(t, 1, stats[1].Failures)
	assert.Equal(t, 200*time.Millisecond, stats[1].AvgDuration)
	assert.True(t, base.Add(time.Hour).Equal(stats[1].LastRun))
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.RecordRun(context.Background(), Run{Lesson: "day-09"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.RecentRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, path, s.Path())
}

func TestMigrationAddsColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE runs (
		id TEXT PRIMARY KEY, lesson TEXT NOT NULL, started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0, status TEXT NOT NULL, error TEXT NOT NULL DEFAULT '')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO runs (id, lesson, started_at, status) VALUES ('old', 'day-01', 1, 'ok')`)
	require.NoError(t, err)
	require.False(t, columnExists(db, "runs", "output_bytes"))
	require.NoError(t, db.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.True(t, columnExists(s.db, "runs", "output_bytes"))

	runs, err := s.RecentRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Zero(t, runs[0].OutputBytes)
}
