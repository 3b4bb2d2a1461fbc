package prompt

import (
	"context"
	"errors"
	"io"
	"strings"

	"practicejournal/internal/logging"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))

// TeaPrompter asks each question with a one-shot bubbletea program.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter renders prompts to out and reads keys from in.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Ask runs the input until Enter. The fallback is shown as the placeholder
// and returned when the answer is left empty.
func (p *TeaPrompter) Ask(ctx context.Context, question, fallback string) (string, error) {
	m := newAskModel(question, fallback)
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := prog.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return "", err
	}

	res, ok := final.(askModel)
	if !ok || res.aborted {
		return "", ErrInterrupted
	}
	answer := strings.TrimRight(res.input.Value(), "\r\n")
	if answer == "" {
		answer = fallback
	}
	logging.PromptDebug("answered %q", question)
	return answer, nil
}

// askModel is the bubbletea model behind a single prompt.
type askModel struct {
	question string
	input    textinput.Model
	done     bool
	aborted  bool
}

func newAskModel(question, fallback string) askModel {
	ti := textinput.New()
	ti.Placeholder = fallback
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = "> "
	ti.Focus()
	return askModel{question: question, input: ti}
}

func (m askModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View is cleared once the prompt finishes; the session echoes the answer.
func (m askModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return questionStyle.Render(m.question) + "\n" + m.input.View() + "\n"
}
