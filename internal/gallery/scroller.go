package gallery

import (
	"context"
	"sync"
	"time"
)

// DefaultScrollInterval is the period of the testimonial strip auto-scroll.
const DefaultScrollInterval = 150 * time.Millisecond

// Scroller moves a viewport across content of a given length one step per
// tick and wraps to the start once the viewport reaches the end.
type Scroller struct {
	mu       sync.Mutex
	length   int
	viewport int
	step     int
	pos      int
	paused   bool
	interval time.Duration

	newTicker TickerFactory
	onScroll  func(pos int)
}

// NewScroller creates a scroller over content of length units shown through
// a viewport of the given width.
func NewScroller(length, viewport int, newTicker TickerFactory, onScroll func(pos int)) *Scroller {
	if newTicker == nil {
		newTicker = NewTicker
	}
	return &Scroller{
		length:    length,
		viewport:  viewport,
		step:      1,
		interval:  DefaultScrollInterval,
		newTicker: newTicker,
		onScroll:  onScroll,
	}
}

// Run scrolls on every tick until ctx is done.
func (s *Scroller) Run(ctx context.Context) {
	t := s.newTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			s.Tick()
		}
	}
}

// Tick advances one step, or wraps to 0 when the end has been reached.
func (s *Scroller) Tick() {
	s.mu.Lock()
	if s.paused || s.length <= s.viewport {
		s.mu.Unlock()
		return
	}
	if s.pos+s.viewport >= s.length {
		s.pos = 0
	} else {
		s.pos += s.step
		if s.pos+s.viewport > s.length {
			s.pos = s.length - s.viewport
		}
	}
	pos := s.pos
	s.mu.Unlock()

	if s.onScroll != nil {
		s.onScroll(pos)
	}
}

// Pause stops scrolling while the pointer is over the strip.
func (s *Scroller) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

// Resume continues scrolling from the current position.
func (s *Scroller) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

// Resize updates the content and viewport sizes, clamping the position.
func (s *Scroller) Resize(length, viewport int) {
	s.mu.Lock()
	s.length, s.viewport = length, viewport
	if s.pos+s.viewport > s.length {
		s.pos = 0
	}
	s.mu.Unlock()
}

// Pos returns the current scroll offset.
func (s *Scroller) Pos() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}
