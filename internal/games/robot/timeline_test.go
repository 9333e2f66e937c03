package robot

import (
	"math"
	"testing"
	"time"
)

func TestSpanInterpolation(t *testing.T) {
	start := time.Unix(0, 0).UTC()
	s := span{from: 0, to: 10, start: start, dur: 100 * time.Millisecond}

	tests := []struct {
		name     string
		at       time.Duration
		expected float64
	}{
		{"before start", -10 * time.Millisecond, 0},
		{"at start", 0, 0},
		{"midpoint", 50 * time.Millisecond, 5},
		{"at end", 100 * time.Millisecond, 10},
		{"after end", 200 * time.Millisecond, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.at(start.Add(tc.at)); got != tc.expected {
				t.Errorf("at(%v) = %v, expected %v", tc.at, got, tc.expected)
			}
		})
	}
}

func TestSpanEasedEndpoints(t *testing.T) {
	start := time.Unix(0, 0).UTC()
	s := span{from: 2, to: 4, start: start, dur: 300 * time.Millisecond}

	if got := s.atEased(start); got != 2 {
		t.Errorf("eased value at start = %v, expected 2", got)
	}
	if got := s.atEased(start.Add(300 * time.Millisecond)); got != 4 {
		t.Errorf("eased value at end = %v, expected 4", got)
	}

	// Ease-out decelerates: the first half covers more than half the
	// distance.
	mid := s.atEased(start.Add(150 * time.Millisecond))
	if mid <= 3 {
		t.Errorf("ease-out midpoint = %v, expected > 3", mid)
	}
}

func TestShortestDelta(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		expected float64
	}{
		{"quarter clockwise", 0, 90, 90},
		{"quarter counter-clockwise", 0, 270, -90},
		{"reversal resolves clockwise", 0, 180, 180},
		{"west to north wraps", 270, 0, 90},
		{"north to west wraps", 0, 270, -90},
		{"no movement", 90, 90, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := shortestDelta(tc.from, tc.to); got != tc.expected {
				t.Errorf("shortestDelta(%v, %v) = %v, expected %v", tc.from, tc.to, got, tc.expected)
			}
		})
	}
}

func TestRotationAngleStaysNormalized(t *testing.T) {
	start := time.Unix(0, 0).UTC()
	tl := NewTimelines(Robot{Position: Position{2, 2}, Facing: West})

	// West (270°) to North (0°) interpolates through 360; the query must
	// never report a value outside [0, 360).
	tl.AnimateRotation(North, start, 200*time.Millisecond)
	for ms := 0; ms <= 220; ms += 20 {
		tl.Update(start.Add(time.Duration(ms)*time.Millisecond), PhaseRotating)
		a := tl.RotationAngle()
		if a < 0 || a >= 360 {
			t.Fatalf("angle %v out of [0,360) at %dms", a, ms)
		}
	}

	tl.Update(start.Add(200*time.Millisecond), PhaseRotating)
	if a := tl.RotationAngle(); a != 0 {
		t.Errorf("final angle = %v, expected 0", a)
	}
}

func TestResetIdleReanchorsAngle(t *testing.T) {
	start := time.Unix(0, 0).UTC()
	r := Robot{Position: Position{2, 2}, Facing: North}
	tl := NewTimelines(r)

	// Repeated reversals would accumulate ±180 steps without the idle
	// re-anchor.
	for i := 0; i < 4; i++ {
		r.Facing = r.Facing.Opposite()
		tl.AnimateRotation(r.Facing, start, 300*time.Millisecond)
		start = start.Add(300 * time.Millisecond)
		tl.ResetIdle(r)
	}

	if got := tl.RotationAngle(); got != r.Facing.Angle() {
		t.Errorf("angle after reversals = %v, expected %v", got, r.Facing.Angle())
	}
}

func TestUpdateTouchesOnlyActiveChannels(t *testing.T) {
	start := time.Unix(0, 0).UTC()
	tl := NewTimelines(Robot{Position: Position{2, 2}, Facing: North})

	// Arm the blocked flag, then update under a phase that does not own it.
	tl.StartBlocked(start, 200*time.Millisecond)
	tl.Update(start.Add(time.Second), PhaseMoving)
	if !tl.BlockedShakeActive() {
		t.Error("blocked flag should only be recomputed while Blocked")
	}

	tl.Update(start.Add(time.Second), PhaseBlocked)
	if tl.BlockedShakeActive() {
		t.Error("blocked flag should expire when updated in Blocked phase")
	}
}

func TestHighlightDecay(t *testing.T) {
	start := time.Unix(0, 0).UTC()
	tl := NewTimelines(Robot{Position: Position{2, 2}, Facing: North})

	tl.Highlight(ButtonForward, start, 200*time.Millisecond)
	if got := tl.HighlightOpacity(ButtonForward); got != 1 {
		t.Fatalf("fresh highlight opacity = %v, expected 1", got)
	}

	tl.Update(start.Add(100*time.Millisecond), PhaseMoving)
	mid := tl.HighlightOpacity(ButtonForward)
	if math.Abs(mid-0.5) > 1e-9 {
		t.Errorf("half-way opacity = %v, expected 0.5", mid)
	}

	tl.Update(start.Add(250*time.Millisecond), PhaseMoving)
	if got := tl.HighlightOpacity(ButtonForward); got != 0 {
		t.Errorf("expired highlight opacity = %v, expected 0", got)
	}
}

func TestResetIdleDiscardsHistory(t *testing.T) {
	start := time.Unix(0, 0).UTC()
	r := Robot{Position: Position{1, 2}, Facing: East}
	tl := NewTimelines(Robot{Position: Position{2, 2}, Facing: North})

	tl.AnimateMove(Position{2, 2}, Position{1, 2}, start, 300*time.Millisecond)
	tl.Highlight(ButtonForward, start, 300*time.Millisecond)
	tl.StartBlocked(start, 200*time.Millisecond)

	tl.ResetIdle(r)

	row, col := tl.Position()
	if row != 1 || col != 2 {
		t.Errorf("position after reset = (%v,%v), expected (1,2)", row, col)
	}
	if tl.RotationAngle() != 90 {
		t.Errorf("angle after reset = %v, expected 90", tl.RotationAngle())
	}
	if tl.HighlightOpacity(ButtonForward) != 0 {
		t.Error("highlights should clear on reset")
	}
	if tl.BlockedShakeActive() {
		t.Error("blocked flag should clear on reset")
	}
	if len(tl.highlights) != 0 {
		t.Error("highlight schedules should be discarded on reset")
	}
}
