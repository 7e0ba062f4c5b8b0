package grid

import "github.com/chronoview/go-timeline-engine/internal/core/timeunit"

// Alignment positions a sub-caption inside its fraction of a combined cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// GridLine is one vertical line of the background grid. Lines are derived
// values, recomputed per viewport/zoom change and never persisted.
type GridLine struct {
	Timestamp int64         `json:"timestamp"`
	Position  float64       `json:"position"`
	Unit      timeunit.Unit `json:"unit"`
	Label     string        `json:"label"`
	IsPrimary bool          `json:"isPrimary"`
	Level     int           `json:"level"`
}

// HeaderCellPart is one sub-caption of a combined header cell, e.g. the
// "Mar" of a merged "Mar 2025" cell, with its proportional width share.
type HeaderCellPart struct {
	Text          string    `json:"text"`
	WidthFraction float64   `json:"widthFraction"`
	Align         Alignment `json:"align"`
}

// HeaderCell is one cell of a header row. Position and width are clipped to
// the viewport; IsPartiallyVisible marks edge cells whose true extent was
// cut off. Parts is non-empty only for combined cells.
type HeaderCell struct {
	Timestamp          int64            `json:"timestamp"`
	Position           float64          `json:"position"`
	Width              float64          `json:"width"`
	Unit               timeunit.Unit    `json:"unit"`
	Label              string           `json:"label"`
	Parts              []HeaderCellPart `json:"parts,omitempty"`
	IsPartiallyVisible bool             `json:"isPartiallyVisible"`
}
