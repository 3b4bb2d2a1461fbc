package ui

import (
	"fmt"
	"io"
	"strings"
)

// RuleWidth is the width of banner rules.
const RuleWidth = 70

// Printer writes lesson output. The first write error is kept and later
// writes become no-ops; check it with Err.
type Printer struct {
	w      io.Writer
	styles Styles
	plain  bool
	err    error
}

// NewPrinter writes to w. plain disables styling.
func NewPrinter(w io.Writer, plain bool) *Printer {
	styles := DefaultStyles()
	if plain {
		styles = PlainStyles()
	}
	return &Printer{w: w, styles: styles, plain: plain}
}

// Plain reports whether styling is off.
func (p *Printer) Plain() bool { return p.plain }

// Styles returns the printer's styles.
func (p *Printer) Styles() Styles { return p.styles }

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }

func (p *Printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// Line prints its operands separated by spaces, followed by a newline.
func (p *Printer) Line(a ...any) {
	p.write(fmt.Sprintln(a...))
}

// Linef prints a formatted line.
func (p *Printer) Linef(format string, a ...any) {
	p.write(fmt.Sprintf(format, a...) + "\n")
}

// Blank prints an empty line.
func (p *Printer) Blank() { p.write("\n") }

// Rule prints a line of width ch characters.
func (p *Printer) Rule(ch string, width int) {
	p.write(p.styles.Rule.Render(strings.Repeat(ch, width)) + "\n")
}

// Banner prints title between two = rules.
func (p *Printer) Banner(title string) {
	p.Rule("=", RuleWidth)
	p.write(p.styles.Title.Render(title) + "\n")
	p.Rule("=", RuleWidth)
}

// Section prints a blank line and a banner.
func (p *Printer) Section(title string) {
	p.Blank()
	p.Banner(title)
}

// Heading prints a "--- title ---" subheading preceded by a blank line.
func (p *Printer) Heading(title string) {
	p.write("\n" + p.styles.Heading.Render("--- "+title+" ---") + "\n")
}

// Success prints a line in the success style.
func (p *Printer) Success(format string, a ...any) {
	p.write(p.styles.Success.Render(fmt.Sprintf(format, a...)) + "\n")
}

// Warn prints a line in the warning style.
func (p *Printer) Warn(format string, a ...any) {
	p.write(p.styles.Warning.Render(fmt.Sprintf(format, a...)) + "\n")
}

// Error prints a line in the error style.
func (p *Printer) Error(format string, a ...any) {
	p.write(p.styles.Error.Render(fmt.Sprintf(format, a...)) + "\n")
}

// Table prints a rendered table.
func (p *Printer) Table(t *SimpleTable) {
	p.write(t.View(p.styles))
}

// Raw writes s unchanged.
func (p *Printer) Raw(s string) { p.write(s) }
