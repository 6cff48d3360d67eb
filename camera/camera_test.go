package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNewIdentityWhenSizesMatch(t *testing.T) {
	v := New(500, 700, 500, 700)

	if v.ScaleX != 1 || v.ScaleY != 1 {
		t.Errorf("expected scale 1, got (%f, %f)", v.ScaleX, v.ScaleY)
	}
	if v.OffsetX != 0 || v.OffsetY != 0 {
		t.Errorf("expected no offset, got (%f, %f)", v.OffsetX, v.OffsetY)
	}
}

func TestLetterboxWideScreen(t *testing.T) {
	// Height bound: 1400/700 = 2, court becomes 1000 wide
	v := New(1600, 1400, 500, 700)

	if !near(v.ScaleX, 2) || !near(v.ScaleY, 2) {
		t.Fatalf("expected scale 2, got (%f, %f)", v.ScaleX, v.ScaleY)
	}
	if !near(v.OffsetX, 300) || !near(v.OffsetY, 0) {
		t.Errorf("expected offset (300, 0), got (%f, %f)", v.OffsetX, v.OffsetY)
	}

	x, y, w, h := v.CourtRect()
	if !near(x, 300) || !near(y, 0) || !near(w, 1000) || !near(h, 1400) {
		t.Errorf("court rect = (%f, %f, %f, %f)", x, y, w, h)
	}
}

func TestScreenToCourtRoundtrip(t *testing.T) {
	v := New(1280, 720, 500, 700)

	testCases := []struct{ cx, cy float32 }{
		{0, 0},
		{250, 350},
		{500, 700},
		{37.5, 612},
	}

	for _, tc := range testCases {
		sx, sy := v.CourtToScreen(tc.cx, tc.cy)
		cx, cy := v.ScreenToCourt(sx, sy)
		if !near(cx, tc.cx) || !near(cy, tc.cy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.cx, tc.cy, sx, sy, cx, cy)
		}
	}
}

func TestScreenToCourtOutsideLetterbox(t *testing.T) {
	v := New(1600, 1400, 500, 700)

	// Left of the court rectangle maps to negative court X
	cx, _ := v.ScreenToCourt(100, 700)
	if cx >= 0 {
		t.Errorf("expected negative court x, got %f", cx)
	}
	if v.Contains(100, 700) {
		t.Error("point in the letterbox margin must not be inside the court")
	}
	if !v.Contains(800, 700) {
		t.Error("screen center must be inside the court")
	}
}

func TestTerminalAspect(t *testing.T) {
	// 100x40 cells, each cell twice as tall as wide
	v := NewWithAspect(100, 40, 500, 700, 2)

	_, _, w, h := v.CourtRect()
	if !near(h, 40) {
		t.Errorf("court height = %f cells, want 40", h)
	}
	// Visual aspect is preserved: w / (h*2) == 500/700
	if !near(w/(h*2), 500.0/700.0) {
		t.Errorf("aspect = %f, want %f", w/(h*2), 500.0/700.0)
	}
}

func TestResize(t *testing.T) {
	v := New(500, 700, 500, 700)
	v.Resize(250, 350)

	if !near(v.ScaleX, 0.5) {
		t.Errorf("expected scale 0.5 after resize, got %f", v.ScaleX)
	}
	sx, sy := v.CourtToScreen(500, 700)
	if !near(sx, 250) || !near(sy, 350) {
		t.Errorf("far corner at (%f, %f), want (250, 350)", sx, sy)
	}
}
