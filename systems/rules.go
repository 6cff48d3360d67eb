// Package systems contains the per-frame rules that advance a match.
package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/pong/config"
)

// ErrInvalidRules is wrapped by every error returned from Rules.Validate.
var ErrInvalidRules = errors.New("invalid match rules")

// Rules holds the constants a match is initialized with.
// They are fixed for the lifetime of a match.
type Rules struct {
	Width, Height float64 // Court size

	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64 // Hit zone depth from each scoring edge

	BallRadius    float64
	InitialSpeedY float64
	MinSpeedY     float64 // Negative bound
	MaxSpeedY     float64 // Positive bound
	Deflection    float64

	LeadOffset     float64
	BaseShift      float64
	ScoreDivisor   int
	WaitForPointer bool

	WinningScore int
}

// RulesFromConfig derives match rules from the loaded configuration.
func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		Width:          cfg.Court.Width,
		Height:         cfg.Court.Height,
		PaddleWidth:    cfg.Paddle.Width,
		PaddleHeight:   cfg.Paddle.Height,
		PaddleInset:    cfg.Paddle.Inset,
		BallRadius:     cfg.Ball.Radius,
		InitialSpeedY:  cfg.Ball.InitialSpeedY,
		MinSpeedY:      cfg.Ball.MinSpeedY,
		MaxSpeedY:      cfg.Ball.MaxSpeedY,
		Deflection:     cfg.Ball.Deflection,
		LeadOffset:     cfg.Opponent.LeadOffset,
		BaseShift:      cfg.Opponent.BaseShift,
		ScoreDivisor:   cfg.Opponent.ScoreDivisor,
		WaitForPointer: cfg.Opponent.WaitForPointer,
		WinningScore:   cfg.Match.WinningScore,
	}
}

// Validate rejects configurations that would produce undefined runtime behavior.
func (r Rules) Validate() error {
	if name, v, ok := r.nonFinite(); ok {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidRules, name, v)
	}
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: court must be positive, got %vx%v", ErrInvalidRules, r.Width, r.Height)
	case r.PaddleWidth <= 0:
		return fmt.Errorf("%w: paddle width must be positive, got %v", ErrInvalidRules, r.PaddleWidth)
	case r.PaddleWidth > r.Width:
		return fmt.Errorf("%w: paddle width %v exceeds court width %v", ErrInvalidRules, r.PaddleWidth, r.Width)
	case r.PaddleInset < 0 || 2*r.PaddleInset >= r.Height:
		return fmt.Errorf("%w: paddle inset %v does not fit court height %v", ErrInvalidRules, r.PaddleInset, r.Height)
	case r.WinningScore <= 0:
		return fmt.Errorf("%w: winning score must be positive, got %d", ErrInvalidRules, r.WinningScore)
	case r.MinSpeedY >= 0 || r.MaxSpeedY <= 0:
		return fmt.Errorf("%w: speed bounds must straddle zero, got [%v, %v]", ErrInvalidRules, r.MinSpeedY, r.MaxSpeedY)
	case r.InitialSpeedY >= 0 || r.InitialSpeedY < r.MinSpeedY:
		return fmt.Errorf("%w: initial speed %v must be negative and within [%v, 0)", ErrInvalidRules, r.InitialSpeedY, r.MinSpeedY)
	case r.ScoreDivisor <= 0:
		return fmt.Errorf("%w: score divisor must be positive, got %d", ErrInvalidRules, r.ScoreDivisor)
	case r.BaseShift < 0:
		return fmt.Errorf("%w: base shift must not be negative, got %v", ErrInvalidRules, r.BaseShift)
	}
	return nil
}

// nonFinite reports the first float field holding NaN or an infinity.
// Ordered comparisons against NaN are always false, so these are checked first.
func (r Rules) nonFinite() (string, float64, bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"width", r.Width},
		{"height", r.Height},
		{"paddle width", r.PaddleWidth},
		{"paddle height", r.PaddleHeight},
		{"paddle inset", r.PaddleInset},
		{"ball radius", r.BallRadius},
		{"initial speed", r.InitialSpeedY},
		{"min speed", r.MinSpeedY},
		{"max speed", r.MaxSpeedY},
		{"deflection", r.Deflection},
		{"lead offset", r.LeadOffset},
		{"base shift", r.BaseShift},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return f.name, f.v, true
		}
	}
	return "", 0, false
}

// PaddleRange returns the upper bound of a paddle's left edge.
func (r Rules) PaddleRange() float64 {
	return r.Width - r.PaddleWidth
}
