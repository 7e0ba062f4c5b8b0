// Package layout sizes the terminal rendering of the interactive view.
package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/chronoview/go-timeline-engine/internal/util"
)

type Sizer struct {
}

// displayWidth calculates the actual display width of a string
// containing wide Unicode characters.
func (s Sizer) displayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// PadString pads a string to a specific display width, handling wide
// characters correctly.
func (s Sizer) PadString(str string, width int, leftAlign bool) string {
	actualWidth := s.displayWidth(str)
	if actualWidth >= width {
		return str
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return str + padding
	}
	return padding + str
}

// TruncateString cuts a string to a display width, respecting wide
// character boundaries.
func (s Sizer) TruncateString(str string, width int) string {
	return runewidth.Truncate(str, width, "")
}

// TerminalSize returns the terminal dimensions with a fallback for
// non-terminal stdout.
func (s Sizer) TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		width, height = 120, 30
	}
	util.LogDebugf("terminal size %dx%d", width, height)
	return width, height
}
