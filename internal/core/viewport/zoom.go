package viewport

// Default zoom bounds in pixels per millisecond. The exact values are
// configuration defaults, not invariants; the only guarantee is that the
// clamp is always applied.
const (
	DefaultMinZoom = 1e-6
	DefaultMaxZoom = 1.0
)

// ZoomController computes new (zoom, viewport) pairs from zoom gestures.
// It holds only the configured bounds; state goes in and comes back out
// by value.
type ZoomController struct {
	minZoom float64
	maxZoom float64
}

// NewZoomController creates a controller with the given bounds. Non-positive
// bounds fall back to the defaults.
func NewZoomController(minZoom, maxZoom float64) *ZoomController {
	if minZoom <= 0 {
		minZoom = DefaultMinZoom
	}
	if maxZoom <= 0 {
		maxZoom = DefaultMaxZoom
	}
	return &ZoomController{minZoom: minZoom, maxZoom: maxZoom}
}

// Clamp bounds a zoom factor to [minZoom, maxZoom].
func (c *ZoomController) Clamp(pixelsPerMs float64) float64 {
	if pixelsPerMs < c.minZoom {
		return c.minZoom
	}
	if pixelsPerMs > c.maxZoom {
		return c.maxZoom
	}
	return pixelsPerMs
}

// MinZoom returns the lower zoom bound.
func (c *ZoomController) MinZoom() float64 { return c.minZoom }

// MaxZoom returns the upper zoom bound.
func (c *ZoomController) MaxZoom() float64 { return c.maxZoom }

// ApplyZoom scales the zoom by delta around the focal pixel. The timestamp
// under focalX does not move on screen across the operation. Zooming past a
// bound saturates: the inputs are returned unchanged rather than erroring.
func (c *ZoomController) ApplyZoom(zoom ZoomState, vp ViewportState, delta, focalX, containerWidth float64) (ZoomState, ViewportState) {
	newPixelsPerMs := c.Clamp(zoom.PixelsPerMs * delta)
	if newPixelsPerMs == zoom.PixelsPerMs {
		return zoom, vp
	}

	// Time under the cursor before the zoom; the new start is chosen so the
	// same timestamp maps back to focalX afterwards.
	focalTimestamp := float64(vp.Start) + focalX/zoom.PixelsPerMs
	newStart := int64(focalTimestamp - focalX/newPixelsPerMs)
	newEnd := newStart + int64(containerWidth/newPixelsPerMs)
	if newEnd <= newStart {
		newEnd = newStart + 1
	}

	newVp := ViewportState{Start: newStart, End: newEnd, ScrollOffset: vp.ScrollOffset}
	newZoom := ZoomState{PixelsPerMs: newPixelsPerMs, CenterTimestamp: newVp.Center()}
	return newZoom, newVp
}

// zoomStepFactor is the per-step factor used by ZoomIn and ZoomOut.
const zoomStepFactor = 1.2

// ZoomIn zooms by one fixed step around the container center.
func (c *ZoomController) ZoomIn(zoom ZoomState, vp ViewportState, containerWidth float64) (ZoomState, ViewportState) {
	return c.ApplyZoom(zoom, vp, zoomStepFactor, containerWidth/2, containerWidth)
}

// ZoomOut zooms out by one fixed step around the container center.
func (c *ZoomController) ZoomOut(zoom ZoomState, vp ViewportState, containerWidth float64) (ZoomState, ViewportState) {
	return c.ApplyZoom(zoom, vp, 1/zoomStepFactor, containerWidth/2, containerWidth)
}

// ZoomToFit computes the zoom that shows [start, end] edge to edge and
// centers the viewport on the range midpoint. If the required zoom is out
// of bounds the clamped zoom is used and the fit is best-effort: the
// viewport is still centered on the midpoint but spans the clamped width.
func (c *ZoomController) ZoomToFit(start, end int64, containerWidth float64) (ZoomState, ViewportState) {
	pixelsPerMs := c.Clamp(containerWidth / float64(end-start))
	span := int64(containerWidth / pixelsPerMs)
	center := start + (end-start)/2

	vp := ViewportState{Start: center - span/2, End: center - span/2 + span}
	return ZoomState{PixelsPerMs: pixelsPerMs, CenterTimestamp: center}, vp
}

// UpdateContainerWidth recomputes the viewport span for a resized container
// at unchanged zoom, keeping the center timestamp in place.
func (c *ZoomController) UpdateContainerWidth(zoom ZoomState, vp ViewportState, newWidth float64) (ZoomState, ViewportState) {
	center := vp.Center()
	span := int64(newWidth / zoom.PixelsPerMs)
	if span < 1 {
		span = 1
	}

	newVp := ViewportState{
		Start:        center - span/2,
		End:          center - span/2 + span,
		ScrollOffset: vp.ScrollOffset,
	}
	return ZoomState{PixelsPerMs: zoom.PixelsPerMs, CenterTimestamp: center}, newVp
}
