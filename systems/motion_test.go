package systems

import (
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestIntegrateBall(t *testing.T) {
	tests := []struct {
		name         string
		x, y, vx, vy float64
		wantX, wantY float64
	}{
		{"serve only moves vertically", 250, 350, 0, -3, 250, 347},
		{"spin moves horizontally", 100, 200, 2.5, 4, 102.5, 204},
		{"negative spin", 100, 200, -1.5, -5, 98.5, 195},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := components.MatchState{BallX: tt.x, BallY: tt.y, SpeedX: tt.vx, SpeedY: tt.vy}
			IntegrateBall(&s)
			if s.BallX != tt.wantX || s.BallY != tt.wantY {
				t.Errorf("ball at (%v, %v), want (%v, %v)", s.BallX, s.BallY, tt.wantX, tt.wantY)
			}
			// Integration never touches velocity
			if s.SpeedX != tt.vx || s.SpeedY != tt.vy {
				t.Errorf("speed changed to (%v, %v)", s.SpeedX, s.SpeedY)
			}
		})
	}
}
