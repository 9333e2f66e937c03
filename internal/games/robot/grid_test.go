package robot

import "testing"

func TestCanMoveForwardBounds(t *testing.T) {
	grid := NewGrid(5)

	tests := []struct {
		name     string
		pos      Position
		facing   Direction
		expected bool
	}{
		{"north edge facing north", Position{0, 2}, North, false},
		{"one below north edge facing north", Position{1, 2}, North, true},
		{"south edge facing south", Position{4, 2}, South, false},
		{"one above south edge facing south", Position{3, 2}, South, true},
		{"east edge facing east", Position{2, 4}, East, false},
		{"west edge facing west", Position{2, 0}, West, false},
		{"center all clear north", Position{2, 2}, North, true},
		{"center all clear south", Position{2, 2}, South, true},
		{"center all clear east", Position{2, 2}, East, true},
		{"center all clear west", Position{2, 2}, West, true},
		{"corner facing away", Position{0, 0}, South, true},
		{"corner facing wall", Position{0, 0}, West, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Robot{Position: tc.pos, Facing: tc.facing}
			if got := grid.CanMoveForward(r); got != tc.expected {
				t.Errorf("CanMoveForward(%v facing %v) = %v, expected %v", tc.pos, tc.facing, got, tc.expected)
			}
		})
	}
}

func TestCanMoveForwardExhaustive(t *testing.T) {
	// The legality check must agree with a direct bounds test for every
	// cell and facing.
	grid := NewGrid(5)
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			for d := North; d <= West; d++ {
				r := Robot{Position: Position{row, col}, Facing: d}
				dr, dc := d.Delta()
				want := grid.Contains(Position{row + dr, col + dc})
				if got := grid.CanMoveForward(r); got != want {
					t.Errorf("CanMoveForward((%d,%d) facing %v) = %v, expected %v", row, col, d, got, want)
				}
			}
		}
	}
}

func TestMoveForward(t *testing.T) {
	grid := NewGrid(5)

	r := Robot{Position: Position{2, 2}, Facing: North}
	moved := grid.MoveForward(r)
	if moved.Position != (Position{1, 2}) {
		t.Errorf("MoveForward from (2,2) north = %v, expected (1,2)", moved.Position)
	}
	if moved.Facing != North {
		t.Errorf("MoveForward must not change facing, got %v", moved.Facing)
	}

	// Illegal move returns the input unchanged.
	blocked := Robot{Position: Position{0, 2}, Facing: North}
	if got := grid.MoveForward(blocked); got != blocked {
		t.Errorf("MoveForward at wall should return input unchanged, got %v", got)
	}
}

func TestRotationCycles(t *testing.T) {
	// Four left turns (or four right turns) return to the original facing,
	// passing through the documented cycle.
	leftCycle := []Direction{North, West, South, East, North}
	d := North
	for i, want := range leftCycle {
		if d != want {
			t.Fatalf("left cycle step %d = %v, expected %v", i, d, want)
		}
		d = d.Left()
	}

	rightCycle := []Direction{North, East, South, West, North}
	d = North
	for i, want := range rightCycle {
		if d != want {
			t.Fatalf("right cycle step %d = %v, expected %v", i, d, want)
		}
		d = d.Right()
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}

func TestDirectionAngle(t *testing.T) {
	angles := map[Direction]float64{
		North: 0,
		East:  90,
		South: 180,
		West:  270,
	}
	for d, want := range angles {
		if got := d.Angle(); got != want {
			t.Errorf("%v.Angle() = %v, expected %v", d, got, want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for d := North; d <= West; d++ {
		parsed, ok := ParseDirection(d.String())
		if !ok || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, ok)
		}
	}
	if _, ok := ParseDirection("upward"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}
