package logwatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"practicejournal/internal/challenges"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func appendTo(t *testing.T, path, s string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(s)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func receive(t *testing.T, ch <-chan string, n int) []string {
	t.Helper()
	var got []string
	timeout := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case msg, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed after %v", got)
			}
			got = append(got, msg)
		case <-timeout:
			t.Fatalf("timed out waiting for %d messages, got %v", n, got)
		}
	}
	return got
}

func TestFollowerStreamsAppendedErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("ERROR: old failure\n"), 0o644))

	f, err := NewFollower(path, Options{PollInterval: 20 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, f.Start(context.Background()))
	defer f.Stop()

	appendTo(t, path, "INFO: User logged in\nERROR: Database connection failed\nDEBUG: x\n")
	appendTo(t, path, "ERROR: File not")
	appendTo(t, path, " found\n")

	got := receive(t, f.Messages(), 2)
	assert.Equal(t, []string{"Database connection failed", "File not found"}, got)
	assert.Equal(t, 2, f.Stats().Matched)
}

func TestFollowerFromStartAndLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("INFO: one\nERROR: skip\nINFO: two\n"), 0o644))

	f, err := NewFollower(path, Options{Level: "info", FromStart: true, PollInterval: 20 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, f.Start(context.Background()))
	defer f.Stop()

	assert.Equal(t, []string{"one", "two"}, receive(t, f.Messages(), 2))
}

func TestFollowerMatchesLikeExtractLevel(t *testing.T) {
	const log = "ERROR: disk full\nERROR:timeout: retry later\n"
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(log), 0o644))

	f, err := NewFollower(path, Options{Level: "error", FromStart: true, PollInterval: 20 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, f.Start(context.Background()))
	defer f.Stop()

	want := challenges.ExtractLevel(log, "ERROR")
	assert.Equal(t, []string{"disk full", "retry later"}, want)
	assert.Equal(t, want, receive(t, f.Messages(), 2))
}

func TestFollowerHandlesTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := NewFollower(path, Options{PollInterval: 20 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, f.Start(context.Background()))
	defer f.Stop()

	appendTo(t, path, "ERROR: first failure with a long message\n")
	assert.Equal(t, []string{"first failure with a long message"}, receive(t, f.Messages(), 1))

	require.NoError(t, os.WriteFile(path, []byte("ERROR: after\n"), 0o644))
	assert.Equal(t, []string{"after"}, receive(t, f.Messages(), 1))
	assert.GreaterOrEqual(t, f.Stats().Truncates, 1)
}

func TestStopClosesMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := NewFollower(path, Options{})
	require.NoError(t, err)
	require.NoError(t, f.Start(context.Background()))
	f.Stop()
	f.Stop()

	_, ok := <-f.Messages()
	assert.False(t, ok)
}

func TestContextCancelClosesMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	f, err := NewFollower(path, Options{PollInterval: -1})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, f.Start(ctx))
	cancel()

	select {
	case _, ok := <-f.Messages():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("messages not closed after cancel")
	}
	f.Stop()
}

func TestStartMissingFile(t *testing.T) {
	f, err := NewFollower(filepath.Join(t.TempDir(), "missing.log"), Options{})
	require.NoError(t, err)
	assert.Error(t, f.Start(context.Background()))
	f.Stop()

	_, ok := <-f.Messages()
	assert.False(t, ok)
}
