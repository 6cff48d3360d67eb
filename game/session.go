package game

import (
	"context"
	"errors"
	"sync"
)

// ErrSessionClosed is returned by Run after Close.
var ErrSessionClosed = errors.New("session closed")

// FrameObserver is notified with the frame produced by every step.
// It runs on the session goroutine outside the session lock.
type FrameObserver interface {
	Observe(f Frame)
}

// Session drives one Game from a Clock and wires it to a pointer source.
// All access to the Game goes through the session lock, so a render loop
// can read frames while Run steps on another goroutine.
type Session struct {
	mu        sync.Mutex
	game      *Game
	pointer   PointerSource
	observers []FrameObserver
	closed    bool

	subMu     sync.Mutex
	cancel    func()             // Pointer subscription
	runCancel context.CancelFunc // Running loop
}

// NewSession binds g to a pointer source. p may be nil for runs without input.
func NewSession(g *Game, p PointerSource) *Session {
	s := &Session{game: g, pointer: p}
	if o, ok := p.(FrameObserver); ok {
		s.observers = append(s.observers, o)
	}
	return s
}

// AddObserver registers o for per-step frames.
func (s *Session) AddObserver(o FrameObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Run steps the match until it is over, ctx is done, the clock fails or the
// session is closed. The pointer subscription never outlives Run.
func (s *Session) Run(ctx context.Context, clock Clock) error {
	if err := s.subscribe(); err != nil {
		return err
	}
	defer s.unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.subMu.Lock()
	s.runCancel = cancel
	s.subMu.Unlock()

	for {
		frame, observers, err := s.step()
		if err != nil {
			return err
		}
		for _, o := range observers {
			o.Observe(frame)
		}
		if frame.IsGameOver {
			return nil
		}
		if err := clock.Wait(ctx); err != nil {
			if s.isClosed() {
				return ErrSessionClosed
			}
			return err
		}
	}
}

func (s *Session) step() (Frame, []FrameObserver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Frame{}, nil, ErrSessionClosed
	}
	s.game.Step()
	return s.game.View(), s.observers, nil
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) subscribe() error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	if s.pointer == nil {
		return nil
	}

	cancel := s.pointer.Subscribe(s.onPointer)

	s.subMu.Lock()
	prev := s.cancel
	s.cancel = cancel
	s.subMu.Unlock()
	if prev != nil {
		prev()
	}
	return nil
}

func (s *Session) unsubscribe() {
	s.subMu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.runCancel = nil
	s.subMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Session) onPointer(x float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.game.MovePointer(x)
}

// View returns the current frame.
func (s *Session) View() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.View()
}

// WithGame runs fn with exclusive access to the game.
func (s *Session) WithGame(fn func(g *Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Restart starts a new match. Call Run again to play it.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Restart()
}

// Close stops any running loop and drops the pointer subscription.
// It does not close the Game.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.subMu.Lock()
	stop := s.runCancel
	s.subMu.Unlock()
	if stop != nil {
		stop()
	}
	s.unsubscribe()
}
