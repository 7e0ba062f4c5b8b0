// Package convert holds the stateless timestamp/pixel arithmetic shared by
// the engine and any layout code. Inputs are assumed finite; callers own
// validation.
package convert

import (
	"math"

	"github.com/chronoview/go-timeline-engine/internal/core/viewport"
)

// TimeToPixel maps a timestamp to its x position inside the viewport.
func TimeToPixel(ts int64, vp viewport.ViewportState, zoom viewport.ZoomState) float64 {
	return float64(ts-vp.Start) * zoom.PixelsPerMs
}

// PixelToTime maps an x position back to a timestamp. Round-trips with
// TimeToPixel within one millisecond.
func PixelToTime(px float64, vp viewport.ViewportState, zoom viewport.ZoomState) int64 {
	return vp.Start + int64(math.Round(px/zoom.PixelsPerMs))
}

// DurationToPixels converts a duration in milliseconds to screen pixels.
func DurationToPixels(ms int64, zoom viewport.ZoomState) float64 {
	return float64(ms) * zoom.PixelsPerMs
}

// PixelsToDuration converts a pixel width back to milliseconds.
func PixelsToDuration(px float64, zoom viewport.ZoomState) int64 {
	return int64(math.Round(px / zoom.PixelsPerMs))
}
