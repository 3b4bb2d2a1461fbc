package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows under a header.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string

	// MaxCellWidth truncates longer cells with an ellipsis. Zero means no limit.
	MaxCellWidth int

	align map[int]lipgloss.Position
}

// NewSimpleTable creates a table with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row. Cells beyond the header count are dropped when rendering.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// AlignRight right-aligns the given columns, for counts and durations.
func (t *SimpleTable) AlignRight(cols ...int) *SimpleTable {
	if t.align == nil {
		t.align = make(map[int]lipgloss.Position)
	}
	for _, c := range cols {
		t.align[c] = lipgloss.Right
	}
	return t
}

func (t *SimpleTable) cell(s string) string {
	if t.MaxCellWidth <= 0 || lipgloss.Width(s) <= t.MaxCellWidth {
		return s
	}
	limit := max(t.MaxCellWidth-1, 0)
	var sb strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > limit {
			break
		}
		sb.WriteRune(r)
		w += rw
	}
	return sb.String() + "…"
}

// widths returns each column's display width including one space of
// padding on both sides.
func (t *SimpleTable) widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(t.cell(h))
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(t.cell(c)))
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}
	return widths
}

func (t *SimpleTable) writeRow(sb *strings.Builder, cells []string, widths []int, base, sep lipgloss.Style) {
	n := min(len(cells), len(widths))
	for i := 0; i < n; i++ {
		st := base.Width(widths[i])
		if pos, ok := t.align[i]; ok {
			st = st.Align(pos)
		}
		sb.WriteString(st.Render(t.cell(cells[i])))
		if i < n-1 {
			sb.WriteString(sep.Render("|"))
		}
	}
	sb.WriteString("\n")
}

// View renders the table. Empty tables render as "".
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := t.widths()
	sep := styles.Muted
	t.writeRow(&sb, t.Headers, widths, styles.Bold.Padding(0, 1), sep)

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(sep.Render(strings.Repeat("-", total)) + "\n")

	body := styles.Body.Padding(0, 1)
	for _, row := range t.Rows {
		t.writeRow(&sb, row, widths, body, sep)
	}
	sb.WriteString("\n")
	return sb.String()
}
