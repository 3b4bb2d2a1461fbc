// Package store keeps the journal's run history in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"practicejournal/internal/logging"
)

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one execution of a lesson.
type Run struct {
	ID          string
	Lesson      string
	StartedAt   time.Time
	Duration    time.Duration
	Status      string
	Error       string
	OutputBytes int
}

// LessonStat aggregates the runs of one lesson.
type LessonStat struct {
	Lesson      string
	Runs        int
	Failures    int
	LastRun     time.Time
	AvgDuration time.Duration
}

// Store is the run history database.
type Store struct {
	db     *sql.DB
	mu     sync.Mutex
	dbPath string
}

// slowOpenThreshold is the open+migrate time above which Open logs a warning.
const slowOpenThreshold = 500 * time.Millisecond

// Open opens (creating if needed) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryStore, "Open")
	defer timer.StopWithThreshold(slowOpenThreshold)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to open database at %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite journal_mode=WAL: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		logging.StoreDebug("Failed to set sqlite synchronous=NORMAL: %v", err)
	}

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	logging.Store("Run history ready at %s", path)
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		lesson TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_runs_lesson ON runs(lesson);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// RecordRun inserts r, assigning an ID when it has none, and returns the ID.
func (s *Store) RecordRun(ctx context.Context, r Run) (string, error) {
	if r.Lesson == "" {
		return "", errors.New("record run: lesson is required")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = StatusOK
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, lesson, started_at, duration_ms, status, error, output_bytes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Lesson, r.StartedAt.UnixMilli(), r.Duration.Milliseconds(), r.Status, r.Error, r.OutputBytes)
	if err != nil {
		return "", fmt.Errorf("record run %s: %w", r.Lesson, err)
	}
	logging.StoreDebug("Recorded run %s for %s (%s)", r.ID, r.Lesson, r.Status)
	return r.ID, nil
}

// RecentRuns returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, lesson, started_at, duration_ms, status, error, output_bytes
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r              Run
			started, durMs int64
		)
		if err := rows.Scan(&r.ID, &r.Lesson, &started, &durMs, &r.Status, &r.Error, &r.OutputBytes); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		r.Duration = time.Duration(durMs) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LessonStats summarises runs per lesson, ordered by lesson ID.
func (s *Store) LessonStats(ctx context.Context) ([]LessonStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.QueryContext(ctx, `
		SELECT lesson,
		       COUNT(*),
		       SUM(CASE WHEN status = ? THEN 1 ELSE 0 END),
		       MAX(started_at),
		       CAST(AVG(duration_ms) AS INTEGER)
		FROM runs GROUP BY lesson ORDER BY lesson`, StatusFailed)
	if err != nil {
		return nil, fmt.Errorf("query lesson stats: %w", err)
	}
	defer rows.Close()

	var stats []LessonStat
	for rows.Next() {
		var (
			st          LessonStat
			last, avgMs int64
		)
		if err := rows.Scan(&st.Lesson, &st.Runs, &st.Failures, &last, &avgMs); err != nil {
			return nil, fmt.Errorf("scan lesson stats: %w", err)
		}
		st.LastRun = time.UnixMilli(last)
		st.AvgDuration = time.Duration(avgMs) * time.Millisecond
		stats = append(stats, st)
	}
	return stats, rows.Err()
}
