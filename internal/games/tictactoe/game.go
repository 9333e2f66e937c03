// Package tictactoe implements a two-player hotseat Tic-Tac-Toe game.
// Both marks are placed at the same keyboard; there is no computer opponent.
package tictactoe

import (
	"fmt"

	"github.com/vovakirdan/robot-arcade/internal/config"
	"github.com/vovakirdan/robot-arcade/internal/core"
	"github.com/vovakirdan/robot-arcade/internal/registry"
)

// Mark is the content of one board cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

// String returns the display rune for the mark.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Cell geometry for board rendering.
const (
	cellW     = 4
	cellH     = 2
	hudHeight = 2

	// Ticks the round-over overlay stays up before a new round begins.
	roundOverDelay = 120
)

// Game implements hotseat Tic-Tac-Toe.
type Game struct {
	size      int
	winLength int

	board  [][]Mark
	cursor struct{ Row, Col int }
	turn   Mark

	winner    Mark // Empty while the round is live or drawn
	draw      bool
	roundOver bool
	overTicks int

	xWins  int
	oWins  int
	rounds int

	tick    uint64
	paused  bool
	screenW int
	screenH int
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tic-Tac-Toe game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe"
}

// Reset initializes/restarts the game, clearing the running tally.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTicTacToe(configPath)
	if err != nil {
		gameCfg = config.DefaultTicTacToeConfig()
	}

	g.size = gameCfg.Board.Size
	g.winLength = gameCfg.Board.WinLength
	g.xWins = 0
	g.oWins = 0
	g.rounds = 0
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.startRound()
}

// startRound clears the board for a fresh round. X always opens.
func (g *Game) startRound() {
	g.board = make([][]Mark, g.size)
	for i := range g.board {
		g.board[i] = make([]Mark, g.size)
	}
	g.cursor.Row = g.size / 2
	g.cursor.Col = g.size / 2
	g.turn = X
	g.winner = Empty
	g.draw = false
	g.roundOver = false
	g.overTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.roundOver {
		g.overTicks++
		if g.overTicks >= roundOverDelay || input.Has(core.ActionConfirm) {
			g.startRound()
		}
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(input)

	if input.Has(core.ActionConfirm) {
		g.place()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor shifts the selection, clamped to the board.
func (g *Game) moveCursor(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, g.size-1)
	case input.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, g.size-1)
	case input.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, g.size-1)
	case input.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, g.size-1)
	}
}

// place puts the current player's mark at the cursor. Occupied cells are a
// silent no-op, matching the platform's no-error input convention.
func (g *Game) place() {
	if g.board[g.cursor.Row][g.cursor.Col] != Empty {
		return
	}
	g.board[g.cursor.Row][g.cursor.Col] = g.turn

	switch {
	case g.wins(g.cursor.Row, g.cursor.Col):
		g.winner = g.turn
		g.roundOver = true
		g.rounds++
		if g.turn == X {
			g.xWins++
		} else {
			g.oWins++
		}
	case g.boardFull():
		g.draw = true
		g.roundOver = true
		g.rounds++
	default:
		if g.turn == X {
			g.turn = O
		} else {
			g.turn = X
		}
	}
}

// wins reports whether the mark just placed at (row, col) completes a line
// of winLength. Counts contiguous equal marks along each of the four axes.
func (g *Game) wins(row, col int) bool {
	mark := g.board[row][col]
	axes := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

	for _, axis := range axes {
		count := 1
		for _, sign := range []int{1, -1} {
			r, c := row+axis[0]*sign, col+axis[1]*sign
			for r >= 0 && r < g.size && c >= 0 && c < g.size && g.board[r][c] == mark {
				count++
				r += axis[0] * sign
				c += axis[1] * sign
			}
		}
		if count >= g.winLength {
			return true
		}
	}
	return false
}

func (g *Game) boardFull() bool {
	for _, row := range g.board {
		for _, m := range row {
			if m == Empty {
				return false
			}
		}
	}
	return true
}

// State returns the current game state. Score is the number of completed
// rounds; the per-player tally lives in the HUD.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.rounds,
		Paused: g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Tic-Tac-Toe — X: %d  O: %d  Rounds: %d  Turn: %s",
		g.xWins, g.oWins, g.rounds, g.turn)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	boardW := g.size*cellW + 1
	boardH := g.size*cellH + 1
	if dst.Width() < boardW+2 || dst.Height() < boardH+hudHeight+2 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	x0 := (dst.Width() - boardW) / 2
	y0 := hudHeight + 1

	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH))

	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			cx := x0 + col*cellW + cellW/2
			cy := y0 + row*cellH + cellH/2

			mark := g.board[row][col]
			color := core.ColorBrightCyan
			if mark == O {
				color = core.ColorBrightYellow
			}
			if mark != Empty {
				dst.DrawTextColored(cx, cy, mark.String(), color)
			}

			if !g.roundOver && row == g.cursor.Row && col == g.cursor.Col {
				dst.SetColored(cx-1, cy, '[', core.ColorBrightGreen)
				dst.SetColored(cx+1, cy, ']', core.ColorBrightGreen)
			}
		}
	}

	switch {
	case g.winner != Empty:
		dst.DrawTextCentered(y0+boardH+1, fmt.Sprintf("%s wins! Press Enter for the next round", g.winner))
	case g.draw:
		dst.DrawTextCentered(y0+boardH+1, "Draw. Press Enter for the next round")
	case g.paused:
		dst.DrawTextCentered(dst.Height()-1, "Paused — press P to continue")
	}
}
