package engine

import (
	"sync"
	"time"
)

// FrameScheduler schedules a callback onto the next display frame. The
// returned cancel function unschedules it; canceling an already-fired
// frame is a no-op.
type FrameScheduler interface {
	ScheduleFrame(fn func()) (cancel func())
}

// DefaultFrameInterval approximates a 60Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// TickerScheduler fires frames on a wall-clock timer. Callbacks run on the
// timer goroutine; the engine is cooperative and unlocked, so callers that
// also mutate the engine from other goroutines must serialize themselves.
type TickerScheduler struct {
	Interval time.Duration
}

// NewTickerScheduler returns a scheduler firing every interval, defaulting
// to DefaultFrameInterval when interval is zero.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{Interval: interval}
}

func (s *TickerScheduler) ScheduleFrame(fn func()) func() {
	timer := time.AfterFunc(s.Interval, fn)
	return func() { timer.Stop() }
}

// ManualScheduler queues frames until Step is called, letting callers (and
// tests) drive animations from their own render loop.
type ManualScheduler struct {
	mu      sync.Mutex
	nextID  int
	pending []manualFrame
}

type manualFrame struct {
	id int
	fn func()
}

// NewManualScheduler returns an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) ScheduleFrame(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending = append(s.pending, manualFrame{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, f := range s.pending {
			if f.id == id {
				s.pending = append(s.pending[:i], s.pending[i+1:]...)
				return
			}
		}
	}
}

// Step runs the oldest pending frame and reports whether one ran.
func (s *ManualScheduler) Step() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	frame := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()

	frame.fn()
	return true
}

// Pending reports how many frames are queued.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
