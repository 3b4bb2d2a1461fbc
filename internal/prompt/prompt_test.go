package prompt

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestScripted(t *testing.T) {
	ctx := context.Background()
	s := NewScripted("Ada", "42")

	got, err := s.Ask(ctx, "Name? ", "guest")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got)
	assert.Equal(t, 1, s.Remaining())

	got, err = s.Ask(ctx, "Age? ", "0")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = s.Ask(ctx, "Again? ", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	assert.Equal(t, []string{"Name? ", "Age? ", "Again? "}, s.Asked())
}

func TestScriptedCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScripted("x")
	_, err := s.Ask(ctx, "q", "f")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, s.Remaining())
}

func TestDefaults(t *testing.T) {
	got, err := Defaults{}.Ask(context.Background(), "q", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestLinePrompter(t *testing.T) {
	ctx := context.Background()
	p := NewLinePrompter(strings.NewReader("first\nsecond\n"))

	tests := []struct {
		fallback string
		want     string
	}{
		{"x", "first"},
		{"x", "second"},
		{"eof", "eof"},
		{"still eof", "still eof"},
	}
	for _, tt := range tests {
		got, err := p.Ask(ctx, "q", tt.fallback)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLinePrompterCloseStopsReader(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	p := NewLinePrompter(strings.NewReader("first\nsecond\nthird\n"))
	got, err := p.Ask(context.Background(), "q", "x")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	got, err = p.Ask(context.Background(), "q", "after close")
	require.NoError(t, err)
	assert.Equal(t, "after close", got)
}

func TestLinePrompterCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	p := NewLinePrompter(pr)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Ask(ctx, "q", "f")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAskModel(t *testing.T) {
	m := newAskModel("Your name?", "guest")
	assert.Contains(t, m.View(), "Your name?")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	am := next.(askModel)
	assert.True(t, am.done)
	assert.False(t, am.aborted)
	assert.Equal(t, "Ada", am.input.Value())
	assert.Empty(t, am.View())
}

func TestAskModelAbort(t *testing.T) {
	m := newAskModel("q", "")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(askModel).aborted)
}
