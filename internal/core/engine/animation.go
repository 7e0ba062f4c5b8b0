package engine

import (
	"math"
	"time"

	"github.com/chronoview/go-timeline-engine/internal/core/viewport"
)

// navigateDuration is the fixed length of a navigate step animation.
const navigateDuration = 300 * time.Millisecond

type easeFunc func(float64) float64

// easeInOutQuad accelerates into the first half and decelerates out of the
// second.
func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// easeOutCubic starts fast and settles, used for navigate steps.
func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func lerpInt(from, to int64, t float64) int64 {
	return from + int64(math.Round(float64(to-from)*t))
}

// animateTo interpolates the engine state towards the target over duration,
// scheduling itself one frame at a time. Starting it preempts any in-flight
// animation: the old pending frame is canceled and the old completion
// channel closes immediately, wherever the state happens to be.
func (e *Engine) animateTo(targetZoom viewport.ZoomState, targetVp viewport.ViewportState, duration time.Duration, ease easeFunc, onFrame func()) <-chan struct{} {
	e.cancelAnimation()

	done := make(chan struct{})
	e.animDone = done

	fromZoom := e.zoom
	fromVp := e.vp
	startedAt := e.now()

	var tick func()
	tick = func() {
		e.cancelFrame = nil

		progress := 1.0
		if duration > 0 {
			progress = float64(e.now().Sub(startedAt)) / float64(duration)
			if progress > 1 {
				progress = 1
			}
		}
		t := ease(progress)

		// Zoom factor and viewport bounds interpolate independently, so the
		// span invariant is relaxed transiently during the animation.
		e.zoom.PixelsPerMs = lerp(fromZoom.PixelsPerMs, targetZoom.PixelsPerMs, t)
		e.vp.Start = lerpInt(fromVp.Start, targetVp.Start, t)
		e.vp.End = lerpInt(fromVp.End, targetVp.End, t)
		e.zoom.CenterTimestamp = e.vp.Center()

		if onFrame != nil {
			onFrame()
		}

		if progress >= 1 {
			e.animDone = nil
			close(done)
			return
		}
		e.cancelFrame = e.sched.ScheduleFrame(tick)
	}

	e.cancelFrame = e.sched.ScheduleFrame(tick)
	return done
}

// cancelAnimation preempts the in-flight animation, if any.
func (e *Engine) cancelAnimation() {
	if e.cancelFrame != nil {
		e.cancelFrame()
		e.cancelFrame = nil
	}
	if e.animDone != nil {
		close(e.animDone)
		e.animDone = nil
	}
}
