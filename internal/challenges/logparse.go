package challenges

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"practicejournal/internal/logging"
)

// SampleLog is the log used by the log parser lesson.
const SampleLog = `
INFO: User logged in
ERROR: Database connection failed
INFO: Search performed
ERROR: File not found
DEBUG: Cache cleared
`

// LogEntry is one parsed "LEVEL: message" line.
type LogEntry struct {
	Level   string
	Message string
}

// ParseLogLine reads a "LEVEL: message" line. The level is the text before
// the first ':' and the message is the text after the first ": ", so
// "ERROR:timeout: retry later" is an ERROR with message "retry later".
// It reports false for blank lines, lines without a ": " separator and
// levels containing whitespace.
func ParseLogLine(line string) (LogEntry, bool) {
	line = strings.TrimSpace(line)
	level, _, ok := strings.Cut(line, ":")
	if !ok || level == "" || strings.ContainsAny(level, " \t") {
		return LogEntry{}, false
	}
	_, msg, ok := strings.Cut(line, ": ")
	if !ok {
		return LogEntry{}, false
	}
	return LogEntry{Level: level, Message: msg}, true
}

// ExtractLevel returns the messages of lines logged at level, in order.
// Levels compare exactly; callers normalise case.
func ExtractLevel(logData, level string) []string {
	var out []string
	for _, line := range strings.Split(logData, "\n") {
		if e, ok := ParseLogLine(line); ok && e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// ExtractErrors returns the messages of ERROR lines.
func ExtractErrors(logData string) []string {
	return ExtractLevel(logData, "ERROR")
}

// WriteErrors writes one message per line to path, truncating any existing file.
func WriteErrors(path string, messages []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, m := range messages {
		if _, err := w.WriteString(m + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.ChallengesDebug("Wrote %d messages to %s", len(messages), path)
	return nil
}
