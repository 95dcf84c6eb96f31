// Package progress reports batch progress on stderr. Stdout stays clean for
// piping, and nothing is drawn unless stderr is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// For small batches, progress adds noise without benefit.
const minItems = 5

// Progress tracks and displays operation progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, progress updates are suppressed.
func New(label string, total int) *Progress {
	return &Progress{
		w:     os.Stderr,
		label: label,
		total: total,
		isTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Step advances the counter by one and redraws the line.
func (p *Progress) Step() {
	p.current++
	p.print()
}

// Current returns the number of completed steps.
func (p *Progress) Current() int {
	return p.current
}

func (p *Progress) print() {
	if !p.visible() {
		return
	}
	pct := (p.current * 100) / p.total
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.visible() {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", 40+len(p.label)))
}

func (p *Progress) visible() bool {
	return p.isTTY && p.total >= minItems
}
