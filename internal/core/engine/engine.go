// Package engine owns the timeline's (zoom, viewport) state pair and
// composes the pure calculators around it. All mutation goes through the
// engine's methods; the sub-components receive state by value and return
// new values. The engine is cooperative and single-threaded by design:
// no locks, re-entrant mutation from animation callbacks interrupts the
// animation, which is the documented cancellation path.
package engine

import (
	"time"

	"github.com/chronoview/go-timeline-engine/internal/core/convert"
	"github.com/chronoview/go-timeline-engine/internal/core/grid"
	"github.com/chronoview/go-timeline-engine/internal/core/timeunit"
	"github.com/chronoview/go-timeline-engine/internal/core/viewport"
	"github.com/chronoview/go-timeline-engine/internal/util"
)

// Config carries the optional knobs for a new Engine. Zero values fall
// back to the package defaults.
type Config struct {
	MinZoom    float64
	MaxZoom    float64
	MinSpacing float64
	Locale     *grid.Locale
	Location   *time.Location
	Scheduler  FrameScheduler
	Now        func() time.Time
}

// Engine is the timeline orchestrator.
type Engine struct {
	zoom           viewport.ZoomState
	vp             viewport.ViewportState
	containerWidth float64

	zoomCtrl *viewport.ZoomController
	grid     *grid.Calculator
	loc      *time.Location

	sched FrameScheduler
	now   func() time.Time

	cancelFrame func()
	animDone    chan struct{}
}

// New creates an engine showing [viewportStart, viewportEnd] across
// containerWidth pixels. The initial zoom is the fit for that range,
// clamped to the configured bounds; when clamping occurs the viewport is
// still centered on the range midpoint but spans the clamped width, so a
// very large range under a restrictive zoom bound shows less than asked.
func New(viewportStart, viewportEnd int64, containerWidth float64, cfg Config) *Engine {
	if viewportEnd <= viewportStart {
		util.LogWarnf("engine: non-positive viewport duration [%d, %d), defaulting to one hour", viewportStart, viewportEnd)
		viewportEnd = viewportStart + time.Hour.Milliseconds()
	}
	if containerWidth <= 0 {
		util.LogWarnf("engine: non-positive container width %.1f, defaulting to 1000", containerWidth)
		containerWidth = 1000
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	sched := cfg.Scheduler
	if sched == nil {
		sched = NewTickerScheduler(0)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	e := &Engine{
		containerWidth: containerWidth,
		zoomCtrl:       viewport.NewZoomController(cfg.MinZoom, cfg.MaxZoom),
		grid:           grid.NewCalculator(cfg.MinSpacing, cfg.Locale, loc),
		loc:            loc,
		sched:          sched,
		now:            now,
	}
	e.zoom, e.vp = e.zoomCtrl.ZoomToFit(viewportStart, viewportEnd, containerWidth)
	return e
}

// GetZoomState returns the current zoom state.
func (e *Engine) GetZoomState() viewport.ZoomState { return e.zoom }

// GetViewportState returns the current viewport state.
func (e *Engine) GetViewportState() viewport.ViewportState { return e.vp }

// ContainerWidth returns the current container width in pixels.
func (e *Engine) ContainerWidth() float64 { return e.containerWidth }

// GridCalculator exposes the calculator sharing the engine's locale and
// location, for callers that need labels outside a full refresh.
func (e *Engine) GridCalculator() *grid.Calculator { return e.grid }

// TimeToPixel maps a timestamp to its on-screen x position.
func (e *Engine) TimeToPixel(ts int64) float64 {
	return convert.TimeToPixel(ts, e.vp, e.zoom)
}

// PixelToTime maps an on-screen x position to a timestamp.
func (e *Engine) PixelToTime(px float64) int64 {
	return convert.PixelToTime(px, e.vp, e.zoom)
}

// DurationToPixels converts a millisecond duration to pixels at the
// current zoom.
func (e *Engine) DurationToPixels(ms int64) float64 {
	return convert.DurationToPixels(ms, e.zoom)
}

// Zoom scales the zoom by delta around the focal pixel and commits the
// result. At a zoom bound the gesture saturates into a no-op.
func (e *Engine) Zoom(delta, focalX float64) (viewport.ZoomState, viewport.ViewportState) {
	e.zoom, e.vp = e.zoomCtrl.ApplyZoom(e.zoom, e.vp, delta, focalX, e.containerWidth)
	return e.zoom, e.vp
}

// ZoomIn zooms one step around the container center.
func (e *Engine) ZoomIn() (viewport.ZoomState, viewport.ViewportState) {
	e.zoom, e.vp = e.zoomCtrl.ZoomIn(e.zoom, e.vp, e.containerWidth)
	return e.zoom, e.vp
}

// ZoomOut zooms out one step around the container center.
func (e *Engine) ZoomOut() (viewport.ZoomState, viewport.ViewportState) {
	e.zoom, e.vp = e.zoomCtrl.ZoomOut(e.zoom, e.vp, e.containerWidth)
	return e.zoom, e.vp
}

// ZoomToRange fits [start, end] into the container and commits. Invalid
// input (non-positive duration or container width) is logged and leaves
// the state untouched; this deliberate swallow-and-continue is the one
// place the engine prefers a warning over an error.
func (e *Engine) ZoomToRange(start, end int64) (viewport.ZoomState, viewport.ViewportState) {
	if end <= start || e.containerWidth <= 0 {
		util.LogWarnf("zoomToRange ignored: duration %dms, width %.1fpx", end-start, e.containerWidth)
		return e.zoom, e.vp
	}
	e.zoom, e.vp = e.zoomCtrl.ZoomToFit(start, end, e.containerWidth)
	return e.zoom, e.vp
}

// Scroll shifts the viewport by a pixel delta and commits.
func (e *Engine) Scroll(deltaPixels float64) viewport.ViewportState {
	e.vp = viewport.ApplyScroll(e.zoom, e.vp, deltaPixels)
	e.zoom.CenterTimestamp = e.vp.Center()
	return e.vp
}

// ScrollToTimestamp centers the viewport on ts and commits.
func (e *Engine) ScrollToTimestamp(ts int64) viewport.ViewportState {
	e.vp = viewport.ScrollToTimestamp(e.zoom, e.vp, ts, e.containerWidth)
	e.zoom.CenterTimestamp = e.vp.Center()
	return e.vp
}

// ScrollToRange reveals the range with minimal movement and commits,
// reporting whether the viewport moved at all.
func (e *Engine) ScrollToRange(start, end int64) bool {
	moved := viewport.ScrollToRange(e.vp, start, end)
	if moved == nil {
		return false
	}
	e.vp = *moved
	e.zoom.CenterTimestamp = e.vp.Center()
	return true
}

// ScrollByPage shifts by one container width in the given direction and
// commits.
func (e *Engine) ScrollByPage(direction int) viewport.ViewportState {
	e.vp = viewport.ScrollByPage(e.zoom, e.vp, direction, e.containerWidth)
	e.zoom.CenterTimestamp = e.vp.Center()
	return e.vp
}

// UpdateContainerWidth resizes the container, preserving the viewport
// center at unchanged zoom.
func (e *Engine) UpdateContainerWidth(newWidth float64) {
	if newWidth <= 0 {
		util.LogWarnf("updateContainerWidth ignored: width %.1fpx", newWidth)
		return
	}
	e.containerWidth = newWidth
	e.zoom, e.vp = e.zoomCtrl.UpdateContainerWidth(e.zoom, e.vp, newWidth)
}

// GetVisibleGridLines recomputes the grid lines for the current state.
func (e *Engine) GetVisibleGridLines() []grid.GridLine {
	return e.grid.GridLines(e.zoom, e.vp)
}

// GetHeaderCells recomputes the header rows for the current state.
func (e *Engine) GetHeaderCells() [][]grid.HeaderCell {
	return e.grid.HeaderRows(e.zoom, e.vp, e.containerWidth)
}

// AnimateToRange eases the state towards the zoomToRange target over the
// given duration, invoking onFrame each frame so the caller can re-render.
// The returned channel closes when the animation completes or is preempted
// by a newer animation (last writer wins; there is no queue). Invalid
// input degrades to the ZoomToRange no-op policy with an already-closed
// channel.
func (e *Engine) AnimateToRange(start, end int64, duration time.Duration, onFrame func()) <-chan struct{} {
	if end <= start || e.containerWidth <= 0 {
		util.LogWarnf("animateToRange ignored: duration %dms, width %.1fpx", end-start, e.containerWidth)
		done := make(chan struct{})
		close(done)
		return done
	}

	targetZoom, targetVp := e.zoomCtrl.ZoomToFit(start, end, e.containerWidth)
	return e.animateTo(targetZoom, targetVp, duration, easeInOutQuad, onFrame)
}

// NavigateForward animates a scroll forward by exactly one step of the
// finest visible unit: next day, week or month depending on zoom.
func (e *Engine) NavigateForward(onFrame func()) <-chan struct{} {
	return e.navigate(1, onFrame)
}

// NavigateBackward animates a scroll back by one step of the finest
// visible unit.
func (e *Engine) NavigateBackward(onFrame func()) <-chan struct{} {
	return e.navigate(-1, onFrame)
}

func (e *Engine) navigate(direction int, onFrame func()) <-chan struct{} {
	units := e.grid.VisibleUnits(e.zoom.PixelsPerMs)
	finest := units[0]

	delta := timeunit.Add(e.vp.Start, direction, finest, e.loc) - e.vp.Start
	targetVp := viewport.ViewportState{
		Start:        e.vp.Start + delta,
		End:          e.vp.End + delta,
		ScrollOffset: e.vp.ScrollOffset,
	}
	targetZoom := viewport.ZoomState{
		PixelsPerMs:     e.zoom.PixelsPerMs,
		CenterTimestamp: targetVp.Center(),
	}
	return e.animateTo(targetZoom, targetVp, navigateDuration, easeOutCubic, onFrame)
}

// FinestVisibleUnit returns the unit navigate steps by at the current
// zoom.
func (e *Engine) FinestVisibleUnit() timeunit.Unit {
	return e.grid.VisibleUnits(e.zoom.PixelsPerMs)[0]
}
