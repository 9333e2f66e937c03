package robot

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/robot-arcade/internal/config"
	"github.com/vovakirdan/robot-arcade/internal/core"
	"github.com/vovakirdan/robot-arcade/internal/registry"
)

// Game adapts the robot machine to the platform Game interface. It owns the
// synthetic simulation clock: the machine consumes timestamps derived from
// the tick counter, so runs are deterministic for a given input sequence.
type Game struct {
	machine *Machine
	timing  config.RobotTiming

	tick     uint64
	tickRate int
	epoch    time.Time

	moves        int // committed forward steps, doubles as the score
	blockedCount int
	lastPhase    Phase

	paused  bool
	screenW int
	screenH int
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Robot Grid game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("robot", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "robot"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Robot Grid"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadRobot(configPath)
	if err != nil {
		gameCfg = config.DefaultRobotConfig()
	}

	g.timing = gameCfg.Timing
	g.machine = NewMachine(NewGrid(gameCfg.Grid.Size), g.durations())
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.epoch = time.Unix(0, 0).UTC()
	g.moves = 0
	g.blockedCount = 0
	g.lastPhase = PhaseIdle
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
}

func (g *Game) durations() Durations {
	return Durations{
		Move:    time.Duration(g.timing.MoveMs) * time.Millisecond,
		Rotate:  time.Duration(g.timing.RotateMs) * time.Millisecond,
		Reverse: time.Duration(g.timing.ReverseMs) * time.Millisecond,
		Blocked: time.Duration(g.timing.BlockedMs) * time.Millisecond,
	}
}

// now converts the tick counter to the machine's monotonic clock.
func (g *Game) now() time.Time {
	interval := time.Second / time.Duration(g.tickRate)
	return g.epoch.Add(time.Duration(g.tick) * interval)
}

// Machine exposes the underlying state machine for tests and debugging.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	now := g.now()

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.routeInput(input, now)
	g.machine.Advance(now)

	return core.StepResult{State: g.State()}
}

// routeInput maps platform actions onto machine commands. The machine's own
// preconditions make every command a silent no-op while a transition is in
// flight, so no filtering happens here.
func (g *Game) routeInput(input core.InputFrame, now time.Time) {
	before := g.machine.Robot().Position

	switch {
	case input.Has(core.ActionUp):
		g.machine.MoveForward(now)
	case input.Has(core.ActionLeft):
		g.machine.RotateLeft(now)
	case input.Has(core.ActionRight):
		g.machine.RotateRight(now)
	case input.Has(core.ActionDown):
		g.machine.RotateTo(g.machine.Robot().Facing.Opposite(), now)
	case input.Has(core.ActionFaceNorth):
		g.machine.RotateTo(North, now)
	case input.Has(core.ActionFaceEast):
		g.machine.RotateTo(East, now)
	case input.Has(core.ActionFaceSouth):
		g.machine.RotateTo(South, now)
	case input.Has(core.ActionFaceWest):
		g.machine.RotateTo(West, now)
	}

	phase := g.machine.State().Phase
	if g.machine.Robot().Position != before {
		g.moves++
	}
	if phase == PhaseBlocked && g.lastPhase != PhaseBlocked {
		g.blockedCount++
	}
	g.lastPhase = phase
}

// State returns the current game state. The robot toy has no fail state;
// the session ends only when the player quits.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.moves,
		Paused: g.paused,
	}
}

// Cell geometry for the grid rendering.
const (
	cellW     = 4
	cellH     = 2
	hudHeight = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	grid := g.machine.Grid()
	gridW := grid.Size*cellW + 1
	gridH := grid.Size*cellH + 1

	if dst.Width() < gridW+24 || dst.Height() < gridH+hudHeight+2 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	offsetX := (dst.Width() - gridW - 22) / 2
	if offsetX < 1 {
		offsetX = 1
	}
	offsetY := hudHeight + 1

	g.renderGrid(dst, offsetX, offsetY)
	g.renderRobot(dst, offsetX, offsetY)
	g.renderControls(dst, offsetX+gridW+4, offsetY)

	if g.paused {
		dst.DrawTextCentered(dst.Height()-1, "Paused — press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	r := g.machine.Robot()
	hud := fmt.Sprintf(" Robot Grid — Moves: %d  Pos: (%d,%d)  Facing: %s  State: %s",
		g.moves, r.Position.Row, r.Position.Col, r.Facing, g.machine.State().Phase)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderGrid draws the play field lattice with a dot in each cell.
func (g *Game) renderGrid(dst *core.Screen, x0, y0 int) {
	grid := g.machine.Grid()
	dst.DrawBox(core.NewRect(x0, y0, grid.Size*cellW+1, grid.Size*cellH+1))

	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			cx := x0 + col*cellW + cellW/2
			cy := y0 + row*cellH + cellH/2
			dst.SetColored(cx, cy, '·', core.ColorGray)
		}
	}
}

// renderRobot draws the robot at its interpolated position with a facing
// arrow. While blocked feedback is active the glyph shakes sideways and a
// notice flashes under the grid.
func (g *Game) renderRobot(dst *core.Screen, x0, y0 int) {
	tl := g.machine.Timelines()
	row, col := tl.Position()

	x := x0 + int(math.Round(col*cellW)) + cellW/2
	y := y0 + int(math.Round(row*cellH)) + cellH/2

	color := core.ColorBrightGreen
	if tl.BlockedShakeActive() {
		color = core.ColorBrightRed
		// Alternate a one-cell sideways offset each tick.
		if g.tick%2 == 0 {
			x++
		} else {
			x--
		}
		grid := g.machine.Grid()
		dst.DrawTextColored(x0, y0+grid.Size*cellH+2, "BLOCKED", core.ColorBrightRed)
	}

	dst.SetColored(x, y, facingGlyph(tl.RotationAngle()), color)
}

// facingGlyph picks the arrow for the nearest compass quadrant of the
// interpolated display angle.
func facingGlyph(angle float64) rune {
	quadrant := int(math.Round(angle/90)) % 4
	switch quadrant {
	case 0:
		return '▲'
	case 1:
		return '▶'
	case 2:
		return '▼'
	default:
		return '◀'
	}
}

// controlRow is one line of the on-screen control legend. Rows without a
// bound button never highlight.
type controlRow struct {
	button Button
	bound  bool
	label  string
}

// renderControls draws the control legend with momentary highlights.
func (g *Game) renderControls(dst *core.Screen, x0, y0 int) {
	dst.DrawText(x0, y0, "Controls")

	rows := []controlRow{
		{ButtonForward, true, "[↑] forward"},
		{ButtonRotateLeft, true, "[←] rotate left"},
		{ButtonRotateRight, true, "[→] rotate right"},
		{0, false, "[↓] turn around"},
		{ButtonNorth, true, "[N] face north"},
		{ButtonEast, true, "[E] face east"},
		{ButtonSouth, true, "[S] face south"},
		{ButtonWest, true, "[W] face west"},
	}

	tl := g.machine.Timelines()
	for i, row := range rows {
		var opacity float64
		if row.bound {
			opacity = tl.HighlightOpacity(row.button)
		}
		dst.DrawTextColored(x0+2, y0+2+i, row.label, highlightColor(opacity))
	}
}

// highlightColor maps a highlight opacity to a terminal color band.
func highlightColor(opacity float64) core.Color {
	switch {
	case opacity > 0.66:
		return core.ColorBrightYellow
	case opacity > 0.15:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}
