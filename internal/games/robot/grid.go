// Package robot implements the Robot Grid game: a robot on a bounded grid
// driven by discrete movement commands, with an animation state machine and
// timeline interpolation for presentation.
//
// Logical state (position, facing) always commits at command time; the
// timelines in timeline.go only lag behind it visually.
package robot

// DefaultGridSize is the side length of the standard play field.
const DefaultGridSize = 5

// Position is a cell on the grid. Row 0 is the top (north) edge.
type Position struct {
	Row, Col int
}

// Direction is a compass facing for the robot.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the lowercase compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection converts a compass name back to a Direction.
// Returns North and false for unrecognized input.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north":
		return North, true
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	}
	return North, false
}

// Angle returns the clockwise rotation in degrees for this facing:
// north=0, east=90, south=180, west=270.
func (d Direction) Angle() float64 {
	return float64(d) * 90
}

// Left returns the facing after a counter-clockwise quarter turn
// (north → west → south → east → north).
func (d Direction) Left() Direction {
	return (d + 3) % 4
}

// Right returns the facing after a clockwise quarter turn.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

// Opposite returns the reversed facing (north↔south, east↔west).
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the row/col step for one cell of movement in this direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// Robot is the authoritative logical state: a cell plus a facing.
// It is owned by the Machine and mutated only inside command handlers.
type Robot struct {
	Position Position
	Facing   Direction
}

// RotateLeft returns the robot turned one quarter counter-clockwise.
func (r Robot) RotateLeft() Robot {
	r.Facing = r.Facing.Left()
	return r
}

// RotateRight returns the robot turned one quarter clockwise.
func (r Robot) RotateRight() Robot {
	r.Facing = r.Facing.Right()
	return r
}

// RotateOpposite returns the robot turned around.
func (r Robot) RotateOpposite() Robot {
	r.Facing = r.Facing.Opposite()
	return r
}

// RotateTo returns the robot facing the given direction unconditionally.
// Callers that want to avoid a no-op transition must compare facings first.
func (r Robot) RotateTo(d Direction) Robot {
	r.Facing = d
	return r
}

// Grid is the bounded play field.
type Grid struct {
	Size int
}

// NewGrid creates a grid of the given side length, falling back to the
// default size for non-positive input.
func NewGrid(size int) Grid {
	if size <= 0 {
		size = DefaultGridSize
	}
	return Grid{Size: size}
}

// Contains reports whether the position lies within the grid.
func (g Grid) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.Size && p.Col >= 0 && p.Col < g.Size
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Position {
	return Position{Row: g.Size / 2, Col: g.Size / 2}
}

// CanMoveForward reports whether one step in the robot's facing stays
// within the grid. Pure, no side effects.
func (g Grid) CanMoveForward(r Robot) bool {
	dr, dc := r.Facing.Delta()
	return g.Contains(Position{Row: r.Position.Row + dr, Col: r.Position.Col + dc})
}

// MoveForward returns the robot advanced one cell in its facing if the move
// is legal, otherwise the input unchanged. This alone cannot signal
// rejection; callers check CanMoveForward to distinguish the cases.
func (g Grid) MoveForward(r Robot) Robot {
	if !g.CanMoveForward(r) {
		return r
	}
	dr, dc := r.Facing.Delta()
	r.Position.Row += dr
	r.Position.Col += dc
	return r
}
