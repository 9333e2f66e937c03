package robot

import (
	"time"

	"github.com/vovakirdan/robot-arcade/internal/core"
)

// Phase is the tag of the machine's animation state. Exactly one phase is
// active at a time; new commands are accepted only while Idle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseRotating
	PhaseBlocked
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseRotating:
		return "rotating"
	case PhaseBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// AnimationState is the current phase plus the endpoints of the transition
// in flight. FromPos/ToPos are meaningful only while Moving, FromDir/ToDir
// only while Rotating.
type AnimationState struct {
	Phase   Phase
	FromPos Position
	ToPos   Position
	FromDir Direction
	ToDir   Direction
}

// Button identifies a logical control for momentary highlight feedback.
// It carries no behavior.
type Button int

const (
	ButtonForward Button = iota
	ButtonRotateLeft
	ButtonRotateRight
	ButtonNorth
	ButtonEast
	ButtonSouth
	ButtonWest
)

// ButtonForDirection maps a facing to its direction control.
func ButtonForDirection(d Direction) Button {
	switch d {
	case North:
		return ButtonNorth
	case East:
		return ButtonEast
	case South:
		return ButtonSouth
	default:
		return ButtonWest
	}
}

// Durations are the transition windows for each transient phase.
type Durations struct {
	Move    time.Duration // forward step
	Rotate  time.Duration // quarter turn
	Reverse time.Duration // 180-degree turn, visually the longer path
	Blocked time.Duration // rejected-move feedback window
}

// DefaultDurations returns the standard transition timings.
func DefaultDurations() Durations {
	return Durations{
		Move:    300 * time.Millisecond,
		Rotate:  200 * time.Millisecond,
		Reverse: 300 * time.Millisecond,
		Blocked: 200 * time.Millisecond,
	}
}

// Machine owns the robot's logical state and its animation state. Commands
// commit logical changes synchronously and schedule a single delayed return
// to Idle; the presentation timelines lag behind on their own clock.
//
// The machine is single-owner and not goroutine-safe: the platform tick
// loop is the only caller.
type Machine struct {
	grid      Grid
	robot     Robot
	state     AnimationState
	durations Durations
	timelines *Timelines

	// Pending completion timer. completionSeq is a generation counter so a
	// stale completion observed after a newer transition can never fire.
	completeAt    time.Time
	completionSeq uint64
	pending       bool
}

// NewMachine creates a machine with the robot at the grid center facing
// north, in the Idle state, with timelines at rest.
func NewMachine(grid Grid, d Durations) *Machine {
	robot := Robot{Position: grid.Center(), Facing: North}
	return &Machine{
		grid:      grid,
		robot:     robot,
		state:     AnimationState{Phase: PhaseIdle},
		durations: d,
		timelines: NewTimelines(robot),
	}
}

// Robot returns the authoritative logical state.
func (m *Machine) Robot() Robot {
	return m.robot
}

// State returns the current animation state.
func (m *Machine) State() AnimationState {
	return m.state
}

// Grid returns the play field.
func (m *Machine) Grid() Grid {
	return m.grid
}

// Timelines returns the presentation interpolator. Read-only for callers.
func (m *Machine) Timelines() *Timelines {
	return m.timelines
}

// MoveForward attempts to advance the robot one cell. While a transition is
// in flight the command is dropped silently. An illegal move commits no
// logical change and enters the Blocked feedback phase instead.
func (m *Machine) MoveForward(now time.Time) {
	if m.state.Phase != PhaseIdle {
		return
	}

	if !m.grid.CanMoveForward(m.robot) {
		m.state = AnimationState{Phase: PhaseBlocked}
		m.schedule(now, m.durations.Blocked)
		m.timelines.StartBlocked(now, m.durations.Blocked)
		m.timelines.Highlight(ButtonForward, now, m.durations.Blocked)
		return
	}

	from := m.robot.Position
	m.robot = m.grid.MoveForward(m.robot)
	m.state = AnimationState{Phase: PhaseMoving, FromPos: from, ToPos: m.robot.Position}
	m.schedule(now, m.durations.Move)
	m.timelines.AnimateMove(from, m.robot.Position, now, m.durations.Move)
	m.timelines.Highlight(ButtonForward, now, m.durations.Move)
}

// RotateLeft turns the robot a quarter counter-clockwise. No-op unless Idle.
func (m *Machine) RotateLeft(now time.Time) {
	if m.state.Phase != PhaseIdle {
		return
	}
	m.rotate(m.robot.Facing.Left(), ButtonRotateLeft, m.durations.Rotate, now)
}

// RotateRight turns the robot a quarter clockwise. No-op unless Idle.
func (m *Machine) RotateRight(now time.Time) {
	if m.state.Phase != PhaseIdle {
		return
	}
	m.rotate(m.robot.Facing.Right(), ButtonRotateRight, m.durations.Rotate, now)
}

// RotateTo turns the robot to face the given direction. No-op unless Idle
// and the direction actually differs from the current facing. A full
// reversal takes the longer Reverse duration; quarter turns take Rotate.
func (m *Machine) RotateTo(d Direction, now time.Time) {
	if m.state.Phase != PhaseIdle || d == m.robot.Facing {
		return
	}
	dur := m.durations.Rotate
	if d == m.robot.Facing.Opposite() {
		dur = m.durations.Reverse
	}
	m.rotate(d, ButtonForDirection(d), dur, now)
}

// rotate commits the facing change, enters Rotating, and highlights the
// triggering control plus the from- and to-direction controls.
func (m *Machine) rotate(to Direction, trigger Button, dur time.Duration, now time.Time) {
	from := m.robot.Facing
	m.robot = m.robot.RotateTo(to)
	m.state = AnimationState{Phase: PhaseRotating, FromDir: from, ToDir: to}
	m.schedule(now, dur)
	m.timelines.AnimateRotation(to, now, dur)
	m.timelines.Highlight(trigger, now, dur)
	m.timelines.Highlight(ButtonForDirection(from), now, dur)
	m.timelines.Highlight(ButtonForDirection(to), now, dur)
}

// KeyPressed routes a raw key name to a movement command: up steps forward,
// left/right rotate, down turns around. Unrecognized keys are ignored.
func (m *Machine) KeyPressed(key string, now time.Time) {
	switch key {
	case "up":
		m.MoveForward(now)
	case "left":
		m.RotateLeft(now)
	case "right":
		m.RotateRight(now)
	case "down":
		m.RotateTo(m.robot.Facing.Opposite(), now)
	}
}

// schedule arms the single completion timer. Only the latest generation is
// ever honored.
func (m *Machine) schedule(now time.Time, d time.Duration) {
	m.completeAt = now.Add(d)
	m.completionSeq++
	m.pending = true
}

// Advance fires a due animation completion and refreshes the presentation
// timelines. Called once per platform tick with a monotonic clock.
func (m *Machine) Advance(now time.Time) {
	if m.pending && !now.Before(m.completeAt) {
		m.completeAnimation(m.completionSeq)
	}
	m.timelines.Update(now, m.state.Phase)
}

// completeAnimation is the internal animation-complete event. It is
// idempotent: whichever transient phase was active, the machine returns to
// Idle and the timelines snap to the logical resting state. A generation
// mismatch means the completion is stale and is dropped.
func (m *Machine) completeAnimation(seq uint64) {
	if !m.pending || seq != m.completionSeq {
		return
	}
	m.pending = false
	m.state = AnimationState{Phase: PhaseIdle}
	m.timelines.ResetIdle(m.robot)
}

// ForceIdle collapses any in-flight transition immediately, keeping the
// committed logical state. Used when restoring a saved session, where
// transient phases are not meaningful.
func (m *Machine) ForceIdle() {
	m.pending = false
	m.state = AnimationState{Phase: PhaseIdle}
	m.timelines.ResetIdle(m.robot)
}

// Restore replaces the logical state wholesale and resets everything else.
// Positions outside the grid are clamped to it.
func (m *Machine) Restore(r Robot) {
	r.Position.Row = core.Clamp(r.Position.Row, 0, m.grid.Size-1)
	r.Position.Col = core.Clamp(r.Position.Col, 0, m.grid.Size-1)
	m.robot = r
	m.ForceIdle()
}
