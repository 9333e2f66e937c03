package robot

import (
	"encoding/json"
	"fmt"
)

// Snapshot captures the logical game state for determinism testing and
// debugging. Presentation timelines are deliberately excluded.
type Snapshot struct {
	Tick         uint64
	Row          int
	Col          int
	Facing       Direction
	Phase        Phase
	Moves        int
	BlockedCount int
}

// Snapshot returns the current logical state.
func (g *Game) Snapshot() Snapshot {
	r := g.machine.Robot()
	return Snapshot{
		Tick:         g.tick,
		Row:          r.Position.Row,
		Col:          r.Position.Col,
		Facing:       r.Facing,
		Phase:        g.machine.State().Phase,
		Moves:        g.moves,
		BlockedCount: g.blockedCount,
	}
}

// savedSession is the flat persisted form of a robot session. Only logical
// state is stored; timelines are presentation caches and are rebuilt from
// the restored robot on load.
type savedSession struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Facing  string `json:"facing"`
	State   string `json:"state"`
	Moves   int    `json:"moves"`
	Blocked int    `json:"blocked"`
}

// SaveState serializes the logical session state to flat JSON.
func (g *Game) SaveState() ([]byte, error) {
	r := g.machine.Robot()
	s := savedSession{
		Row:     r.Position.Row,
		Col:     r.Position.Col,
		Facing:  r.Facing.String(),
		State:   g.machine.State().Phase.String(),
		Moves:   g.moves,
		Blocked: g.blockedCount,
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("robot: cannot serialize session: %w", err)
	}
	return data, nil
}

// RestoreState replaces the session with a previously saved one. Any
// transient animation state in the payload collapses to Idle: a restored
// session always starts at rest, with timelines rebuilt from the robot.
func (g *Game) RestoreState(data []byte) error {
	var s savedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("robot: cannot parse saved session: %w", err)
	}

	facing, ok := ParseDirection(s.Facing)
	if !ok {
		return fmt.Errorf("robot: saved session has unknown facing %q", s.Facing)
	}

	g.machine.Restore(Robot{
		Position: Position{Row: s.Row, Col: s.Col},
		Facing:   facing,
	})
	g.moves = s.Moves
	g.blockedCount = s.Blocked
	g.lastPhase = PhaseIdle
	return nil
}
