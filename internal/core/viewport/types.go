package viewport

// ZoomState is the sole zoom scalar plus the timestamp currently centered
// on screen. PixelsPerMs is continuous, not stepped.
type ZoomState struct {
	PixelsPerMs     float64 `json:"pixelsPerMs"`
	CenterTimestamp int64   `json:"centerTimestamp"`
}

// ViewportState is the visible time window in Unix milliseconds.
// End is always strictly greater than Start.
type ViewportState struct {
	Start        int64   `json:"start"`
	End          int64   `json:"end"`
	ScrollOffset float64 `json:"scrollOffset"`
}

// SpanMs returns the width of the viewport in milliseconds.
func (v ViewportState) SpanMs() int64 {
	return v.End - v.Start
}

// Contains reports whether the range lies fully inside the viewport.
func (v ViewportState) Contains(start, end int64) bool {
	return start >= v.Start && end <= v.End
}

// Center returns the timestamp at the middle of the viewport.
func (v ViewportState) Center() int64 {
	return v.Start + v.SpanMs()/2
}
