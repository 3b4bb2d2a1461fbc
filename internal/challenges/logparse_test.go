package challenges

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		log  string
		want []string
	}{
		{
			name: "sample log",
			log:  SampleLog,
			want: []string{"Database connection failed", "File not found"},
		},
		{
			name: "indented line",
			log:  "   ERROR: disk full",
			want: []string{"disk full"},
		},
		{
			name: "missing separator skipped",
			log:  "ERROR:no space\nERROR: kept",
			want: []string{"kept"},
		},
		{
			name: "only first separator splits",
			log:  "ERROR: db: timeout",
			want: []string{"db: timeout"},
		},
		{
			name: "windows line endings",
			log:  "INFO: a\r\nERROR: b\r\n",
			want: []string{"b"},
		},
		{
			name: "no errors",
			log:  "INFO: fine",
			want: nil,
		},
		{
			name: "empty",
			log:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractErrors(tt.log))
		})
	}
}

func TestExtractLevel(t *testing.T) {
	assert.Equal(t, []string{"User logged in", "Search performed"}, ExtractLevel(SampleLog, "INFO"))
	assert.Equal(t, []string{"Cache cleared"}, ExtractLevel(SampleLog, "DEBUG"))
	assert.Nil(t, ExtractLevel(SampleLog, "WARN"))
}

func TestParseLogLine(t *testing.T) {
	e, ok := ParseLogLine("  WARN: disk low ")
	require.True(t, ok)
	assert.Equal(t, LogEntry{Level: "WARN", Message: "disk low"}, e)

	e, ok = ParseLogLine("ERROR:timeout: retry later\r")
	require.True(t, ok)
	assert.Equal(t, LogEntry{Level: "ERROR", Message: "retry later"}, e)

	for _, line := range []string{"", "no separator", ": empty level", "two words: x", "ERROR:nospace"} {
		_, ok := ParseLogLine(line)
		assert.False(t, ok, "line %q", line)
	}
}

func TestWriteErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.txt")

	require.NoError(t, WriteErrors(path, ExtractErrors(SampleLog)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Database connection failed\nFile not found\n", string(data))

	require.NoError(t, WriteErrors(path, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteErrorsBadPath(t *testing.T) {
	err := WriteErrors(filepath.Join(t.TempDir(), "missing", "errors.txt"), []string{"x"})
	assert.Error(t, err)
}
