package layout

// Style selects how much of the view fits on screen.
type Style int

const (
	// StyleFull shows every header row, the grid ruler and the status
	// line.
	StyleFull Style = iota
	// StyleCompact drops all but the finest header row for short
	// terminals.
	StyleCompact
)

// minFullHeight is the terminal height below which the compact style
// kicks in: three header rows, the ruler, the axis and a status line
// need breathing room.
const minFullHeight = 12

// SelectStyle picks the rendering style for the given terminal size.
func SelectStyle(width, height int) Style {
	if height < minFullHeight || width < 60 {
		return StyleCompact
	}
	return StyleFull
}
