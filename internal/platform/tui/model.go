package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/robot-arcade/internal/core"
	"github.com/vovakirdan/robot-arcade/internal/registry"
	"github.com/vovakirdan/robot-arcade/internal/storage"
)

// Model is the Bubble Tea model for running a single arcade game.
// It drives the fixed tick loop, maps keys to actions, and handles
// score and session persistence around the game's lifetime.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	exitSaved  bool // Whether the session snapshot has been written on exit
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)

	// Resume a previously saved session, if the game supports it.
	// Restore failures fall back to the fresh game silently.
	m.restoreSession()

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// restoreSession loads the saved session for the game, if any.
func (m Model) restoreSession() {
	saver, ok := m.game.(registry.StateSaver)
	if !ok || m.store == nil {
		return
	}

	data, err := m.store.LoadSession(m.game.ID())
	if err != nil || data == nil {
		return
	}

	if err := saver.RestoreState(data); err != nil {
		// Stale or malformed payload: discard so it doesn't resurface.
		//nolint:errcheck // Best-effort cleanup
		m.store.DeleteSession(m.game.ID())
	}
}

// saveOnExit persists score and session state when the player leaves.
func (m *Model) saveOnExit() {
	if m.exitSaved || m.store == nil {
		return
	}
	m.exitSaved = true

	state := m.game.State()
	if state.Score > 0 {
		//nolint:errcheck // Best-effort save, exit continues regardless
		m.store.SaveScore(m.game.ID(), state.Score)
	}

	if saver, ok := m.game.(registry.StateSaver); ok {
		if data, err := saver.SaveState(); err == nil {
			//nolint:errcheck // Best-effort save
			m.store.SaveSession(m.game.ID(), data)
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveOnExit()
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc returns to the menu when the game is paused or over.
	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		if m.gameState.Paused || m.gameState.GameOver {
			m.saveOnExit()
			m.backToMenu = true
		}
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
