package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// HistoryStore records finished rounds.
type HistoryStore interface {
	SaveRound(r storage.Round) (int64, error)
}

// ModelConfig holds the per-terminal settings of a Model.
type ModelConfig struct {
	Width  int
	Height int
	Player string      // Recorded with each round in the history
	Logger *log.Logger // Optional
}

// Model is the Bubble Tea model for one flappy session. The simulation owns
// all game state; the model forwards keys and tick times to it and renders
// its snapshots.
type Model struct {
	sim        *game.Simulation
	history    HistoryStore
	screen     *core.Screen
	viewport   game.Viewport
	keys       KeyMap
	help       help.Model
	player     string
	logger     *log.Logger
	interval   time.Duration
	roundSaved bool // Whether the current stopped round is in the history
	quitting   bool
}

// NewModel creates a model driving sim. history may be nil.
func NewModel(sim *game.Simulation, history HistoryStore, cfg ModelConfig) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := cfg.Player
	if player == "" {
		player = "local"
	}

	m := Model{
		sim:      sim,
		history:  history,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		player:   player,
		logger:   logger,
		interval: sim.Config().Timing.TickInterval,
	}
	m.resize(cfg.Width, cfg.Height)
	return m
}

// resize fits the screen and viewport to the terminal, keeping one row for
// the help footer.
func (m *Model) resize(width, height int) {
	rows := max(height-1, 1)
	cols := max(width, 1)
	if m.screen == nil {
		m.screen = core.NewScreen(cols, rows)
	} else {
		m.screen.Resize(cols, rows)
	}
	m.viewport = game.NewViewport(cols, rows, m.sim.Config().Field.Height)
	m.help.Width = width
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Flap):
		switch m.sim.Phase() {
		case game.PhaseReady:
			if err := m.sim.Play(); err != nil {
				m.logger.Debug("play rejected", "error", err)
			}
		case game.PhaseActive:
			m.sim.Tap()
		}

	case key.Matches(msg, m.keys.Reset):
		if m.sim.Phase() == game.PhaseStopped {
			if err := m.sim.Reset(); err != nil {
				m.logger.Debug("reset rejected", "error", err)
			}
			m.roundSaved = false
		}
	}

	return m, nil
}

// handleTick advances the simulation and records the round once it stops.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	snap := m.sim.Tick(now, m.viewport.Field())

	if snap.Phase == game.PhaseStopped && !m.roundSaved {
		m.saveRound(snap)
		m.roundSaved = true
	}

	return m, tickCmd(m.interval)
}

// saveRound appends a finished round to the history. Empty rounds are not
// recorded.
func (m Model) saveRound(snap game.Snapshot) {
	if m.history == nil || snap.Score == 0 {
		return
	}
	_, err := m.history.SaveRound(storage.Round{
		Player:    m.player,
		Score:     snap.Score,
		EndReason: snap.End.String(),
		Ticks:     snap.Ticks,
	})
	if err != nil {
		m.logger.Warn("round not saved", "score", snap.Score, "error", err)
	}
}

// saveScreenshot saves the current frame to ~/.flappy/screenshots.
func (m Model) saveScreenshot() {
	game.Render(m.screen, m.sim.Snapshot(), m.viewport)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game.Render(m.screen, m.sim.Snapshot(), m.viewport)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a local Bubble Tea program for sim.
func Run(sim *game.Simulation, history HistoryStore, cfg ModelConfig) error {
	p := tea.NewProgram(
		NewModel(sim, history, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
