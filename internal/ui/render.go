package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value int
}

// BarChart draws one row per bar: the label, then █ scaled so the largest
// value spans width cells, then the value. Positive values always get at
// least one cell.
func BarChart(bars []Bar, width int, styles Styles) string {
	if len(bars) == 0 {
		return ""
	}
	if width <= 0 {
		width = 40
	}

	labelWidth, peak := 0, 0
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		peak = max(peak, b.Value)
	}

	var sb strings.Builder
	for _, b := range bars {
		n := 0
		if peak > 0 && b.Value > 0 {
			n = max(1, b.Value*width/peak)
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(b.Label))
		fmt.Fprintf(&sb, "%s%s | %s %d\n", b.Label, pad, styles.Bar.Render(strings.Repeat("█", n)), b.Value)
	}
	return sb.String()
}

// RenderMarkdown renders md for the terminal with glamour, wrapping at
// width. Light themes use glamour's light style. The source is returned
// unchanged if rendering fails.
func RenderMarkdown(md string, width int, theme Theme) string {
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if !theme.IsDark {
		style = glamour.WithStylePath("light")
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// TitleKey turns a snake_case key into a title: "total_words" is "Total Words".
func TitleKey(key string) string {
	// a Caser is stateful, so each call gets its own
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
