package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tilerush/tilerush/internal/catalog"
	"github.com/tilerush/tilerush/internal/config"
	"github.com/tilerush/tilerush/internal/core"
	"github.com/tilerush/tilerush/internal/sim"
	"github.com/tilerush/tilerush/internal/storage"
)

// GameModel is the Bubble Tea model driving one run. Taps collected
// between ticks are delivered to the run in arrival order, then the run
// advances by one fixed step; pause and restart live here, not in the
// simulation.
type GameModel struct {
	run     *sim.Run
	view    *BoardView
	screen  *core.Screen
	store   *storage.Store
	keys    *KeyMapper
	gameCfg config.GameConfig
	runtime core.RuntimeConfig
	frame   core.InputFrame

	paused     bool
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a model for the given validated config and
// preloaded catalog.
func NewGameModel(gameCfg config.GameConfig, cat *catalog.Catalog, store *storage.Store, runtime core.RuntimeConfig) GameModel {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	geom := sim.DefaultGeometry()
	return GameModel{
		run:     sim.NewRun(gameCfg, geom, cat, runtime.Seed),
		view:    NewBoardView(gameCfg, geom, cat),
		screen:  core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:   store,
		keys:    NewKeyMapper(gameCfg.Controls.Keys),
		gameCfg: gameCfg,
		runtime: runtime,
		frame:   core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc goes back to the menu once the run is over or paused.
	if m.frame.Has(core.ActionBack) && (m.run.Snapshot().Outcome.Terminal() || m.paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The simulation field is
// fixed; only the screen buffer rescales.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes one simulation tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	snap := m.run.Snapshot()

	if m.frame.Has(core.ActionRestart) && snap.Outcome.Terminal() {
		m.run.Reset(time.Now().UnixNano())
		m.paused = false
		m.runSaved = false
		m.frame.Clear()
		return m, tickCmd(m.runtime.TickRate)
	}

	if m.frame.Has(core.ActionPause) && !snap.Outcome.Terminal() {
		m.paused = !m.paused
	}

	if !m.paused {
		// Taps first, in arrival order, then one fixed time step: every
		// tap is judged against the positions of the previous frame.
		for _, lane := range m.frame.Taps {
			m.run.OnTap(lane)
		}
		m.run.Advance(1 / float64(m.runtime.TickRate))
	}

	snap = m.run.Snapshot()
	if snap.Outcome.Terminal() && !m.runSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, the overlay shows regardless
			m.store.SaveRun(snap.Mode, snap.Score, int64(snap.Elapsed*1000), snap.Outcome)
		}
		m.runSaved = true
	}

	m.frame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.view.Draw(m.screen, m.run.Snapshot(), m.paused)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single run.
func Run(gameCfg config.GameConfig, cat *catalog.Catalog, store *storage.Store, runtime core.RuntimeConfig) error {
	model := NewGameModel(gameCfg, cat, store, runtime)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
