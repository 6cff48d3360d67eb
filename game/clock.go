package game

import (
	"context"
	"errors"
	"time"
)

// Clock paces a Session. Wait blocks until the next frame is due.
type Clock interface {
	Wait(ctx context.Context) error
}

// TickerClock yields on a fixed wall-clock interval.
// Missed ticks are dropped by time.Ticker, so a slow host never catches up.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock ticking every interval.
func NewTickerClock(interval time.Duration) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(interval)}
}

// Wait blocks until the next tick or ctx is done.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// ImmediateClock never yields. Used for headless runs.
type ImmediateClock struct{}

// Wait returns immediately unless ctx is done.
func (ImmediateClock) Wait(ctx context.Context) error {
	return ctx.Err()
}

// FrameClock yields once per drawn frame. The render loop calls Frame after
// drawing; frames signalled while nobody waits collapse into one.
type FrameClock struct {
	ch chan struct{}
}

// NewFrameClock creates a frame clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{ch: make(chan struct{}, 1)}
}

// Frame signals that a frame was drawn. It never blocks.
func (c *FrameClock) Frame() {
	select {
	case c.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until the next signalled frame or ctx is done.
func (c *FrameClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ch:
		return nil
	}
}

// ErrTickLimit is returned by LimitClock once its budget is spent.
var ErrTickLimit = errors.New("tick limit reached")

// LimitClock wraps a clock and stops the session after Max waits.
type LimitClock struct {
	Clock Clock
	Max   int
	n     int
}

// Wait delegates to the wrapped clock until the limit is reached.
func (c *LimitClock) Wait(ctx context.Context) error {
	if c.n >= c.Max {
		return ErrTickLimit
	}
	c.n++
	return c.Clock.Wait(ctx)
}
