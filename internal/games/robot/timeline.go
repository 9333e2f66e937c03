package robot

import (
	"math"
	"time"
)

// span is the interpolation schedule for one animated channel:
// a start value, a target value, and the window they are blended over.
type span struct {
	from, to float64
	start    time.Time
	dur      time.Duration
}

// at returns the linearly interpolated value at the given instant.
// Before the window it returns the start value, after it the target.
func (s span) at(now time.Time) float64 {
	if s.dur <= 0 || !now.Before(s.start.Add(s.dur)) {
		return s.to
	}
	if now.Before(s.start) {
		return s.from
	}
	t := float64(now.Sub(s.start)) / float64(s.dur)
	return s.from + (s.to-s.from)*t
}

// atEased is like at but applies ease-out deceleration, used for movement
// so the robot glides into its target cell.
func (s span) atEased(now time.Time) float64 {
	if s.dur <= 0 || !now.Before(s.start.Add(s.dur)) {
		return s.to
	}
	if now.Before(s.start) {
		return s.from
	}
	t := easeOutQuad(float64(now.Sub(s.start)) / float64(s.dur))
	return s.from + (s.to-s.from)*t
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// snapped returns a schedule already resting at the given value.
func snapped(v float64) span {
	return span{from: v, to: v}
}

// shortestDelta returns the signed degrees from angle a to angle b along
// the shorter arc, in (-180, 180]. A full reversal resolves to +180.
func shortestDelta(a, b float64) float64 {
	d := math.Mod(b-a+540, 360) - 180
	if d == -180 {
		return 180
	}
	return d
}

// normalizeAngle maps an angle into [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Timelines holds the presentation-only interpolated channels derived from
// the machine's logical state: robot position, rotation angle, per-button
// highlight opacity, and the blocked-shake flag. They are never the source
// of truth for game logic.
type Timelines struct {
	row, col   span
	angle      span
	highlights map[Button]span

	blockedUntil time.Time

	// Cached values recomputed by Update for the channels owned by the
	// current animation phase; queries read these.
	curRow, curCol float64
	curAngle       float64
	curOpacity     map[Button]float64
	blockedActive  bool
}

// NewTimelines creates timelines resting at the robot's logical state.
func NewTimelines(r Robot) *Timelines {
	t := &Timelines{}
	t.ResetIdle(r)
	return t
}

// AnimateMove schedules position interpolation from one cell to another.
func (t *Timelines) AnimateMove(from, to Position, now time.Time, d time.Duration) {
	t.row = span{from: float64(from.Row), to: float64(to.Row), start: now, dur: d}
	t.col = span{from: float64(from.Col), to: float64(to.Col), start: now, dur: d}
	t.curRow = float64(from.Row)
	t.curCol = float64(from.Col)
}

// AnimateRotation schedules angle interpolation along the shorter arc from
// the live display angle to the target facing. The target may land outside
// [0, 360); queries normalize on read and ResetIdle re-anchors when the
// machine goes idle.
func (t *Timelines) AnimateRotation(to Direction, now time.Time, d time.Duration) {
	start := t.angle.at(now)
	target := start + shortestDelta(start, to.Angle())
	t.angle = span{from: start, to: target, start: now, dur: d}
	t.curAngle = normalizeAngle(start)
}

// Highlight starts a full-to-zero opacity decay for a control button.
func (t *Timelines) Highlight(b Button, now time.Time, d time.Duration) {
	t.highlights[b] = span{from: 1, to: 0, start: now, dur: d}
	t.curOpacity[b] = 1
}

// StartBlocked arms the blocked-shake flag for the given window.
func (t *Timelines) StartBlocked(now time.Time, d time.Duration) {
	t.blockedUntil = now.Add(d)
	t.blockedActive = true
}

// Update advances the cached interpolated values to the given instant.
// Only the channels owned by the current animation phase are recomputed;
// everything else keeps its resting value from the last idle reset.
func (t *Timelines) Update(now time.Time, phase Phase) {
	switch phase {
	case PhaseMoving:
		t.curRow = t.row.atEased(now)
		t.curCol = t.col.atEased(now)
	case PhaseRotating:
		t.curAngle = normalizeAngle(t.angle.at(now))
	case PhaseBlocked:
		t.blockedActive = now.Before(t.blockedUntil)
	}

	if phase != PhaseIdle {
		for b, s := range t.highlights {
			t.curOpacity[b] = s.at(now)
		}
	}
}

// ResetIdle snaps every channel to the robot's logical resting state and
// discards completed schedule history. Called whenever the machine returns
// to Idle so retained schedules stay bounded and the rotation angle is
// re-anchored to the facing, preventing wraparound drift across repeated
// 180-degree turns.
func (t *Timelines) ResetIdle(r Robot) {
	t.row = snapped(float64(r.Position.Row))
	t.col = snapped(float64(r.Position.Col))
	t.angle = snapped(r.Facing.Angle())
	t.highlights = make(map[Button]span)
	t.curRow = float64(r.Position.Row)
	t.curCol = float64(r.Position.Col)
	t.curAngle = r.Facing.Angle()
	t.curOpacity = make(map[Button]float64)
	t.blockedUntil = time.Time{}
	t.blockedActive = false
}

// Position returns the current interpolated row/col for presentation.
func (t *Timelines) Position() (row, col float64) {
	return t.curRow, t.curCol
}

// RotationAngle returns the current interpolated facing angle in [0, 360).
func (t *Timelines) RotationAngle() float64 {
	return normalizeAngle(t.curAngle)
}

// HighlightOpacity returns the momentary highlight level for a button,
// in [0, 1]. Buttons without an active highlight read as 0.
func (t *Timelines) HighlightOpacity(b Button) float64 {
	return t.curOpacity[b]
}

// BlockedShakeActive reports whether blocked-move feedback should render.
func (t *Timelines) BlockedShakeActive() bool {
	return t.blockedActive
}
