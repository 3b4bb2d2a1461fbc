// Package ui renders lesson output: banners, styled lines, tables, bar
// charts and markdown briefs. Plain mode turns all styling off so output can
// be piped or compared in tests.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A")
	LightMuted      = lipgloss.Color("#6b7280")

	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#4db6ac")
	DarkMuted      = lipgloss.Color("#9ca3af")

	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Theme is a color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode from COLORFGBG or JOURNAL_DARK_MODE=1,
// light otherwise.
func DetectTheme() Theme {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if len(parts) == 2 {
			// ANSI 0-6 and 8 are dark backgrounds
			if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("JOURNAL_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styles used by Printer and the renderers.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Bar     lipgloss.Style
	Rule    lipgloss.Style
}

// NewStyles builds styles for theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Body:    lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:   lipgloss.NewStyle().Foreground(theme.Muted),
		Bold:    lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(Success),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Bar:     lipgloss.NewStyle().Foreground(Info),
		Rule:    lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// PlainStyles renders everything unstyled.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Title: s, Heading: s, Body: s, Muted: s, Bold: s,
		Success: s, Warning: s, Error: s, Bar: s, Rule: s,
	}
}
