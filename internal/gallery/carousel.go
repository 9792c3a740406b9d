package gallery

import (
	"context"
	"sync"
	"time"
)

// DefaultCarouselInterval is the auto-advance delay of the featured carousel.
const DefaultCarouselInterval = 2 * time.Second

// Carousel is a loop-wrapping rotation over n slides that advances on every
// tick unless paused.
type Carousel struct {
	mu       sync.Mutex
	n        int
	index    int
	paused   bool
	interval time.Duration
	ticker   Ticker

	newTicker TickerFactory
	onChange  func(index int)
}

// CarouselOption configures a Carousel.
type CarouselOption func(*Carousel)

// WithInterval sets the auto-advance delay. Non-positive values keep
// DefaultCarouselInterval.
func WithInterval(d time.Duration) CarouselOption {
	return func(c *Carousel) { c.interval = d }
}

// WithTickerFactory replaces the wall clock, mainly for tests.
func WithTickerFactory(f TickerFactory) CarouselOption {
	return func(c *Carousel) { c.newTicker = f }
}

// OnSlideChange registers fn to be called with the new index after every move.
func OnSlideChange(fn func(index int)) CarouselOption {
	return func(c *Carousel) { c.onChange = fn }
}

// NewCarousel creates a carousel over n slides.
func NewCarousel(n int, opts ...CarouselOption) *Carousel {
	c := &Carousel{n: n, interval: DefaultCarouselInterval, newTicker: NewTicker}
	for _, o := range opts {
		o(c)
	}
	if c.interval <= 0 {
		c.interval = DefaultCarouselInterval
	}
	return c
}

// Run advances the carousel on every tick until ctx is done.
func (c *Carousel) Run(ctx context.Context) {
	t := c.newTicker(c.interval)
	c.mu.Lock()
	c.ticker = t
	c.mu.Unlock()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			c.Tick()
		}
	}
}

// Tick performs one auto-advance step. Paused carousels do not move.
func (c *Carousel) Tick() {
	c.mu.Lock()
	if c.paused || c.n == 0 {
		c.mu.Unlock()
		return
	}
	idx := c.moveLocked(1)
	c.mu.Unlock()
	c.notify(idx)
}

// Next moves forward one slide and restarts the delay.
func (c *Carousel) Next() { c.manual(1) }

// Prev moves back one slide and restarts the delay.
func (c *Carousel) Prev() { c.manual(-1) }

func (c *Carousel) manual(step int) {
	c.mu.Lock()
	if c.n == 0 {
		c.mu.Unlock()
		return
	}
	idx := c.moveLocked(step)
	c.resetLocked()
	c.mu.Unlock()
	c.notify(idx)
}

func (c *Carousel) moveLocked(step int) int {
	c.index = ((c.index+step)%c.n + c.n) % c.n
	return c.index
}

func (c *Carousel) resetLocked() {
	if c.ticker != nil {
		c.ticker.Reset(c.interval)
	}
}

// Pause stops auto-advance, e.g. while the pointer hovers the carousel.
func (c *Carousel) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume re-enables auto-advance with a full delay before the next move.
func (c *Carousel) Resume() {
	c.mu.Lock()
	c.paused = false
	c.resetLocked()
	c.mu.Unlock()
}

// Paused reports whether auto-advance is paused.
func (c *Carousel) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// SetCount replaces the slide count after a reload, clamping the index.
func (c *Carousel) SetCount(n int) {
	c.mu.Lock()
	c.n = n
	if c.index >= n {
		c.index = 0
	}
	c.mu.Unlock()
}

// Index returns the current slide.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) notify(idx int) {
	if c.onChange != nil {
		c.onChange(idx)
	}
}
