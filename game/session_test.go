package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pthm-cable/pong/config"
)

// countingPointer is a PointerSource that tracks live subscriptions.
type countingPointer struct {
	mu         sync.Mutex
	active     int
	subscribed int
	ready      chan struct{}
}

func newCountingPointer() *countingPointer {
	return &countingPointer{ready: make(chan struct{}, 1)}
}

func (p *countingPointer) Subscribe(func(float64)) func() {
	p.mu.Lock()
	p.active++
	p.subscribed++
	p.mu.Unlock()

	select {
	case p.ready <- struct{}{}:
	default:
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			p.active--
			p.mu.Unlock()
		})
	}
}

func (p *countingPointer) counts() (active, subscribed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active, p.subscribed
}

// observerFunc adapts a func to FrameObserver.
type observerFunc func(Frame)

func (f observerFunc) Observe(fr Frame) { f(fr) }

func TestSessionUnsubscribesOnGameOver(t *testing.T) {
	g := newTestGame(t, nil)
	setMatchPoint(g)

	p := newCountingPointer()
	s := NewSession(g, p)

	if err := s.Run(context.Background(), ImmediateClock{}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	active, subscribed := p.counts()
	if subscribed != 1 || active != 0 {
		t.Errorf("subscribed=%d active=%d, want 1 and 0", subscribed, active)
	}
	if !s.View().IsGameOver {
		t.Error("expected finished match")
	}
}

func TestSessionUnsubscribesOnCancel(t *testing.T) {
	g := newTestGame(t, nil)
	p := newCountingPointer()
	s := NewSession(g, p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, ImmediateClock{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if active, _ := p.counts(); active != 0 {
		t.Errorf("%d subscriptions left after cancel", active)
	}
	// Exactly one step ran before the clock saw the cancellation
	if tick := s.View().Tick; tick != 1 {
		t.Errorf("tick = %d, want 1", tick)
	}
}

func TestSessionCloseStopsBlockedRun(t *testing.T) {
	g := newTestGame(t, nil)
	p := newCountingPointer()
	s := NewSession(g, p)

	done := make(chan error, 1)
	go func() {
		// Never signalled, so Run blocks in Wait until Close
		done <- s.Run(context.Background(), NewFrameClock())
	}()

	select {
	case <-p.ready:
	case <-time.After(time.Second):
		t.Fatal("session never subscribed")
	}

	s.Close()

	select {
	case err := <-done:
		if !errors.Is(err, ErrSessionClosed) {
			t.Errorf("err = %v, want ErrSessionClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
	if active, _ := p.counts(); active != 0 {
		t.Errorf("%d subscriptions left after Close", active)
	}

	if err := s.Run(context.Background(), ImmediateClock{}); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("Run after Close = %v, want ErrSessionClosed", err)
	}
}

func TestSessionTickLimit(t *testing.T) {
	g := newTestGame(t, nil)
	s := NewSession(g, nil)

	err := s.Run(context.Background(), &LimitClock{Clock: ImmediateClock{}, Max: 9})
	if !errors.Is(err, ErrTickLimit) {
		t.Fatalf("err = %v, want ErrTickLimit", err)
	}
	if tick := s.View().Tick; tick != 10 {
		t.Errorf("tick = %d, want 10", tick)
	}
}

func TestSessionDeliversPointer(t *testing.T) {
	g := newTestGame(t, nil)
	hub := NewPointerHub()
	s := NewSession(g, hub)

	s.AddObserver(observerFunc(func(f Frame) {
		if f.Tick == 1 {
			hub.Publish(30)
		}
	}))

	err := s.Run(context.Background(), &LimitClock{Clock: ImmediateClock{}, Max: 1})
	if !errors.Is(err, ErrTickLimit) {
		t.Fatalf("err = %v, want ErrTickLimit", err)
	}

	if got := s.View().PlayerPaddleX; got != 5 {
		t.Errorf("paddle at %v, want 5", got)
	}
	if hub.Active() != 0 {
		t.Errorf("hub has %d subscribers after Run", hub.Active())
	}

	// Input with no running session goes nowhere
	hub.Publish(400)
	if got := s.View().PlayerPaddleX; got != 5 {
		t.Errorf("paddle moved to %v without a subscription", got)
	}
}

func TestSessionRestartAndRerun(t *testing.T) {
	g := newTestGame(t, nil)
	p := newCountingPointer()
	s := NewSession(g, p)

	for i := 0; i < 2; i++ {
		s.WithGame(setMatchPoint)
		if err := s.Run(context.Background(), ImmediateClock{}); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		s.Restart()
	}

	active, subscribed := p.counts()
	if subscribed != 2 || active != 0 {
		t.Errorf("subscribed=%d active=%d, want 2 and 0", subscribed, active)
	}
}

func TestPointerHubCancel(t *testing.T) {
	hub := NewPointerHub()

	var got []float64
	cancel := hub.Subscribe(func(x float64) { got = append(got, x) })
	hub.Publish(1)
	cancel()
	cancel()
	hub.Publish(2)

	if len(got) != 1 || got[0] != 1 {
		t.Errorf("got %v, want [1]", got)
	}
	if hub.Active() != 0 {
		t.Errorf("active = %d", hub.Active())
	}
}

func TestPointerHubCancelDuringPublish(t *testing.T) {
	hub := NewPointerHub()

	// Each subscriber cancels the other; map order decides who runs first
	var cancelA, cancelB func()
	calls := 0
	cancelA = hub.Subscribe(func(float64) { calls++; cancelB() })
	cancelB = hub.Subscribe(func(float64) { calls++; cancelA() })

	for i := 0; i < 50; i++ {
		hub.Publish(float64(i))
	}

	if calls != 1 {
		t.Errorf("calls = %d, want 1: a cancelled subscriber was still delivered to", calls)
	}
	if hub.Active() != 0 {
		t.Errorf("active = %d, want 0", hub.Active())
	}
}

func TestFrameClockCollapsesFrames(t *testing.T) {
	c := NewFrameClock()
	c.Frame()
	c.Frame()
	c.Frame()

	if err := c.Wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("second wait = %v, want context.Canceled (no catch-up)", err)
	}
}

func TestTickerClockHonorsContext(t *testing.T) {
	c := NewTickerClock(time.Hour)
	defer c.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestAutopilot(t *testing.T) {
	t.Run("max step", func(t *testing.T) {
		a := NewAutopilot(config.AutopilotConfig{MaxStep: 5}, 1, 250)
		var got []float64
		a.Subscribe(func(x float64) { got = append(got, x) })

		a.Observe(Frame{BallX: 400})
		a.Observe(Frame{BallX: 400})

		if len(got) != 2 || got[0] != 255 || got[1] != 260 {
			t.Errorf("published %v, want [255 260]", got)
		}
	})

	t.Run("reaction lag", func(t *testing.T) {
		a := NewAutopilot(config.AutopilotConfig{ReactionTicks: 2}, 1, 0)
		var got []float64
		a.Subscribe(func(x float64) { got = append(got, x) })

		for _, x := range []float64{100, 200, 300, 400} {
			a.Observe(Frame{BallX: x})
		}

		want := []float64{100, 100, 100, 200}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("published %v, want %v", got, want)
			}
		}
	})

	t.Run("silent after game over", func(t *testing.T) {
		a := NewAutopilot(config.AutopilotConfig{}, 1, 0)
		calls := 0
		a.Subscribe(func(float64) { calls++ })

		a.Observe(Frame{BallX: 100, IsGameOver: true})
		if calls != 0 {
			t.Errorf("published %d times after game over", calls)
		}
	})
}
