package viewport

// Scroll operations. All of them preserve the viewport span; only
// ScrollToRange can decline to move at all.

// ApplyScroll shifts the viewport by a pixel delta. Positive deltas move
// the window forward in time.
func ApplyScroll(zoom ZoomState, vp ViewportState, deltaPixels float64) ViewportState {
	deltaMs := int64(deltaPixels / zoom.PixelsPerMs)
	return ViewportState{
		Start:        vp.Start + deltaMs,
		End:          vp.End + deltaMs,
		ScrollOffset: vp.ScrollOffset,
	}
}

// ScrollToTimestamp centers the viewport on ts. This is a jump, not an
// additive scroll: the scroll offset resets to zero.
func ScrollToTimestamp(zoom ZoomState, vp ViewportState, ts int64, containerWidth float64) ViewportState {
	span := int64(containerWidth / zoom.PixelsPerMs)
	return ViewportState{
		Start:        ts - span/2,
		End:          ts - span/2 + span,
		ScrollOffset: 0,
	}
}

// ScrollToRange reveals [rangeStart, rangeEnd] with minimal movement.
// Three outcomes:
//   - the range is already fully visible: nil, signalling a no-op;
//   - the range lies entirely before or after the viewport: shift just far
//     enough to bring it in, keeping the span;
//   - the range partially overlaps the viewport: recenter on the range.
func ScrollToRange(vp ViewportState, rangeStart, rangeEnd int64) *ViewportState {
	if vp.Contains(rangeStart, rangeEnd) {
		return nil
	}

	span := vp.SpanMs()
	var newStart int64
	switch {
	case rangeEnd <= vp.Start:
		newStart = rangeStart
	case rangeStart >= vp.End:
		newStart = rangeEnd - span
	default:
		center := rangeStart + (rangeEnd-rangeStart)/2
		newStart = center - span/2
	}

	return &ViewportState{
		Start:        newStart,
		End:          newStart + span,
		ScrollOffset: vp.ScrollOffset,
	}
}

// ScrollByPage shifts by one full container width. Direction is +1 for
// forward, -1 for backward; other values scale accordingly.
func ScrollByPage(zoom ZoomState, vp ViewportState, direction int, containerWidth float64) ViewportState {
	return ApplyScroll(zoom, vp, float64(direction)*containerWidth)
}
