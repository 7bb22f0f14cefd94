package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeHistory struct {
	rounds []storage.Round
	err    error
}

func (f *fakeHistory) SaveRound(r storage.Round) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.rounds = append(f.rounds, r)
	return int64(len(f.rounds)), nil
}

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	resetKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	quitKey  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

// newTestModel builds an 80x21 model (1600x800 field) with no gravity and a
// gap around the start position, driven by a manual clock.
func newTestModel(t *testing.T, history HistoryStore) (Model, *game.ManualClock) {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacle.GapMin = 250
	cfg.Obstacle.GapMax = 250

	clock := game.NewManualClock(time.Unix(0, 0))
	sim, err := game.New(cfg, game.WithClock(clock), game.WithSeed(1))
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return NewModel(sim, history, ModelConfig{Width: 80, Height: 21}), clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model, clock *game.ManualClock) Model {
	t.Helper()
	return update(t, m, TickMsg(clock.Advance(10*time.Millisecond)))
}

func TestModelFlapKeyPlaysThenTaps(t *testing.T) {
	m, clock := newTestModel(t, nil)

	if m.sim.Phase() != game.PhaseReady {
		t.Fatalf("phase = %v, expected ready", m.sim.Phase())
	}

	m = update(t, m, spaceKey)
	if m.sim.Phase() != game.PhaseActive {
		t.Fatalf("space should start the round, phase = %v", m.sim.Phase())
	}
	if v := m.sim.Snapshot().Body.Vel.Y; v != 0 {
		t.Errorf("starting a round should not tap, vel = %v", v)
	}

	m = tick(t, m, clock)
	m = update(t, m, spaceKey)
	m = tick(t, m, clock)
	if v := m.sim.Snapshot().Body.Vel.Y; v != -400 {
		t.Errorf("space while active should tap, vel = %v", v)
	}
}

func TestModelRecordsRoundOnce(t *testing.T) {
	history := &fakeHistory{}
	m, clock := newTestModel(t, history)

	m = update(t, m, spaceKey)
	for i := 0; i < 540; i++ {
		m = tick(t, m, clock)
	}
	if got := m.sim.Snapshot().Score; got != 1 {
		t.Fatalf("score = %d, expected 1", got)
	}

	// Fly into the ceiling
	m = update(t, m, spaceKey)
	for i := 0; i < 200 && m.sim.Phase() == game.PhaseActive; i++ {
		m = tick(t, m, clock)
	}
	if m.sim.Phase() != game.PhaseStopped {
		t.Fatalf("round should have stopped, phase = %v", m.sim.Phase())
	}

	for i := 0; i < 10; i++ {
		m = tick(t, m, clock)
	}

	if len(history.rounds) != 1 {
		t.Fatalf("saved %d rounds, expected 1", len(history.rounds))
	}
	r := history.rounds[0]
	if r.Score != 1 || r.EndReason != "ceiling" || r.Player != "local" || r.Ticks == 0 {
		t.Errorf("unexpected round %+v", r)
	}

	m = update(t, m, resetKey)
	if m.sim.Phase() != game.PhaseReady {
		t.Errorf("r should reset a stopped round, phase = %v", m.sim.Phase())
	}
	if m.roundSaved {
		t.Error("reset should re-arm round recording")
	}
}

func TestModelSkipsEmptyRounds(t *testing.T) {
	history := &fakeHistory{}
	m, clock := newTestModel(t, history)

	m = update(t, m, spaceKey)
	m = tick(t, m, clock)
	m = update(t, m, spaceKey)
	for i := 0; i < 200 && m.sim.Phase() == game.PhaseActive; i++ {
		m = tick(t, m, clock)
	}

	if m.sim.Phase() != game.PhaseStopped {
		t.Fatalf("round should have stopped, phase = %v", m.sim.Phase())
	}
	if len(history.rounds) != 0 {
		t.Errorf("zero-score round should not be recorded, got %d", len(history.rounds))
	}
}

func TestModelHistoryErrorIsNonFatal(t *testing.T) {
	history := &fakeHistory{err: errors.New("disk full")}
	m, clock := newTestModel(t, history)

	m = update(t, m, spaceKey)
	for i := 0; i < 540; i++ {
		m = tick(t, m, clock)
	}
	m = update(t, m, spaceKey)
	for i := 0; i < 200 && m.sim.Phase() == game.PhaseActive; i++ {
		m = tick(t, m, clock)
	}

	if !m.roundSaved {
		t.Error("failed save should still mark the round as handled")
	}
	m = update(t, m, resetKey)
	if m.sim.Phase() != game.PhaseReady {
		t.Errorf("phase = %v, expected ready", m.sim.Phase())
	}
}

func TestModelResizeKeepsState(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m = update(t, m, spaceKey)
	m = tick(t, m, clock)

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 11})
	if m.screen.Width() != 40 || m.screen.Height() != 10 {
		t.Errorf("screen = %dx%d, expected 40x10", m.screen.Width(), m.screen.Height())
	}
	if m.sim.Phase() != game.PhaseActive {
		t.Errorf("resize should not interrupt the round, phase = %v", m.sim.Phase())
	}

	m = tick(t, m, clock)
	if f := m.sim.Snapshot().Field; f.Height != 800 || f.Width != 1600 {
		t.Errorf("field = %+v, expected 1600x800", f)
	}
}

func TestModelViewAndQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "READY") || !strings.Contains(view, "Score") {
		t.Errorf("view should show the ready panel and HUD:\n%s", view)
	}

	next, cmd := m.Update(quitKey)
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
