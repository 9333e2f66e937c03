package robot

import (
	"testing"

	"github.com/vovakirdan/robot-arcade/internal/core"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

// stepIdle advances the game n ticks with no input.
func stepIdle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

// stepAction advances the game one tick with a single action set.
func stepAction(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

func TestEndToEndMoveScenario(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	// Starting state: robot at grid center facing north, idle.
	if got := g.Machine().Robot(); got.Position != (Position{2, 2}) || got.Facing != North {
		t.Fatalf("unexpected starting robot %+v", got)
	}

	stepAction(g, core.ActionUp)

	// The logical position commits on the command tick while the visual
	// transition is still in flight.
	st := g.Machine().State()
	if g.Machine().Robot().Position != (Position{1, 2}) {
		t.Errorf("position after move command = %v, expected (1,2)", g.Machine().Robot().Position)
	}
	if st.Phase != PhaseMoving || st.FromPos != (Position{2, 2}) || st.ToPos != (Position{1, 2}) {
		t.Errorf("unexpected transition state %+v", st)
	}

	// Ticking past the 300ms window completes the animation without moving
	// the robot again.
	stepIdle(g, 25)
	if g.Machine().State().Phase != PhaseIdle {
		t.Errorf("state after window = %v, expected idle", g.Machine().State().Phase)
	}
	if g.Machine().Robot().Position != (Position{1, 2}) {
		t.Errorf("position after completion = %v, expected (1,2)", g.Machine().Robot().Position)
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, expected 1 committed move", g.State().Score)
	}
}

func TestBlockedMoveScoresNothing(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	// Drive to the north wall.
	for i := 0; i < 2; i++ {
		stepAction(g, core.ActionUp)
		stepIdle(g, 25)
	}

	stepAction(g, core.ActionUp)

	if g.Machine().State().Phase != PhaseBlocked {
		t.Fatalf("expected blocked, got %v", g.Machine().State().Phase)
	}
	if g.State().Score != 2 {
		t.Errorf("blocked move changed score to %d", g.State().Score)
	}

	snap := g.Snapshot()
	if snap.BlockedCount != 1 {
		t.Errorf("blocked count = %d, expected 1", snap.BlockedCount)
	}

	stepIdle(g, 25)
	if g.Machine().State().Phase != PhaseIdle {
		t.Errorf("blocked feedback should auto-clear, got %v", g.Machine().State().Phase)
	}
}

func TestMashingKeysDuringAnimation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	stepAction(g, core.ActionUp)
	pos := g.Machine().Robot().Position

	// Mash inputs while the move animates: all dropped silently.
	for i := 0; i < 5; i++ {
		stepAction(g, core.ActionUp)
		stepAction(g, core.ActionLeft)
	}

	if g.Machine().Robot().Position != pos {
		t.Errorf("inputs during animation moved the robot to %v", g.Machine().Robot().Position)
	}
	if g.Machine().Robot().Facing != North {
		t.Errorf("inputs during animation rotated the robot to %v", g.Machine().Robot().Facing)
	}
	if g.State().Score != 1 {
		t.Errorf("score = %d, expected 1", g.State().Score)
	}
}

func TestDirectionKeysRotate(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		facing Direction
	}{
		{"face east", core.ActionFaceEast, East},
		{"face south", core.ActionFaceSouth, South},
		{"face west", core.ActionFaceWest, West},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			g.Reset(testRuntimeConfig())

			stepAction(g, tc.action)
			if g.Machine().Robot().Facing != tc.facing {
				t.Errorf("facing = %v, expected %v", g.Machine().Robot().Facing, tc.facing)
			}
			if g.Machine().State().Phase != PhaseRotating {
				t.Errorf("phase = %v, expected rotating", g.Machine().State().Phase)
			}
		})
	}
}

func TestGameDeterminism(t *testing.T) {
	// The same input sequence must produce identical snapshots; the clock
	// is synthesized from the tick counter, so wall time never leaks in.
	sequence := make([]core.InputFrame, 200)
	for i := range sequence {
		sequence[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			sequence[i].Set(core.ActionUp)
		case i%40 == 20:
			sequence[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntimeConfig())
		for _, in := range sequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("determinism failed:\nrun1 %+v\nrun2 %+v", s1, s2)
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	stepAction(g, core.ActionRight)
	stepIdle(g, 25)
	stepAction(g, core.ActionUp)
	stepIdle(g, 25)

	data, err := g.SaveState()
	if err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	restored := New()
	restored.Reset(testRuntimeConfig())
	if err := restored.RestoreState(data); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}

	if restored.Machine().Robot() != g.Machine().Robot() {
		t.Errorf("restored robot %+v, expected %+v", restored.Machine().Robot(), g.Machine().Robot())
	}
	if restored.State().Score != g.State().Score {
		t.Errorf("restored score %d, expected %d", restored.State().Score, g.State().Score)
	}
	// Restored sessions always start at rest, timelines rebuilt from the
	// logical state.
	if restored.Machine().State().Phase != PhaseIdle {
		t.Errorf("restored phase = %v, expected idle", restored.Machine().State().Phase)
	}
	row, col := restored.Machine().Timelines().Position()
	want := restored.Machine().Robot().Position
	if int(row) != want.Row || int(col) != want.Col {
		t.Errorf("restored timelines rest at (%v,%v), expected %v", row, col, want)
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	if err := g.RestoreState([]byte("{not json")); err == nil {
		t.Error("RestoreState should reject malformed payloads")
	}
	if err := g.RestoreState([]byte(`{"row":1,"col":1,"facing":"sideways"}`)); err == nil {
		t.Error("RestoreState should reject unknown facings")
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	stepAction(g, core.ActionUp)
	stepIdle(g, 25)
	if g.State().Score != 1 {
		t.Fatalf("setup failed, score %d", g.State().Score)
	}

	stepAction(g, core.ActionRestart)

	if g.State().Score != 0 {
		t.Errorf("restart should clear score, got %d", g.State().Score)
	}
	if g.Machine().Robot().Position != (Position{2, 2}) {
		t.Errorf("restart should recenter robot, got %v", g.Machine().Robot().Position)
	}
}

func TestRenderShowsRobot(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())
	stepIdle(g, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !containsRune(out, '▲') {
		t.Error("render should draw the north-facing robot glyph")
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
