package game

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Field is the play-field size, supplied by the rendering surface each tick.
type Field struct {
	Width  float64
	Height float64
}

// BestScoreStore persists the best score under a fixed key.
type BestScoreStore interface {
	// BestScore returns the stored score, or 0 if none exists.
	BestScore(key string) (int, error)
	// SaveBestScore records score as the best score for key.
	SaveBestScore(key string, score int) error
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithStore persists the best score through store.
func WithStore(store BestScoreStore) Option {
	return func(s *Simulation) {
		s.store = store
	}
}

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(s *Simulation) {
		s.clock = clock
	}
}

// WithSeed makes obstacle gap heights reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// Simulation owns the whole game state. All methods are safe to call from
// different goroutines: each takes the same lock for its full duration, so
// input events are never observed half-applied by a tick.
type Simulation struct {
	mu sync.Mutex

	cfg    config.FlappyConfig
	gaps   GapRange
	rng    *rand.Rand
	clock  Clock
	store  BestScoreStore
	logger *log.Logger

	body     Body
	obstacle Obstacle
	score    Score
	phase    PhaseController
	end      EndReason
	field    Field
	lastTick time.Time
	ticks    int
}

// New creates a simulation in the ready phase. The config must be valid.
// The best score is read once from the store, if any; a failing store is
// dropped and the game keeps its best score in memory only.
func New(cfg config.FlappyConfig, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	s := &Simulation{
		cfg:    cfg,
		gaps:   GapRange{Min: cfg.Obstacle.GapMin, Max: cfg.Obstacle.GapMax},
		clock:  SystemClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.loadBest()
	s.resetRound()
	return s, nil
}

// loadBest reads the persisted best score.
func (s *Simulation) loadBest() {
	if s.store == nil {
		return
	}
	best, err := s.store.BestScore(s.cfg.Persistence.Key)
	if err != nil {
		s.logger.Warn("best score unavailable, keeping it in memory", "key", s.cfg.Persistence.Key, "error", err)
		s.store = nil
		return
	}
	if best > 0 {
		s.score.Best = best
	}
}

// resetRound restores every round entity to its creation-time value.
func (s *Simulation) resetRound() {
	s.body = NewBody(s.cfg.Body.StartX, s.cfg.Body.StartY)
	s.obstacle = NewObstacle(s.cfg.Obstacle.Width, s.cfg.Obstacle.Spacing, s.gaps.Draw(s.rng))
	s.score.ResetRound()
	s.end = EndNone
	s.ticks = 0
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.FlappyConfig {
	return s.cfg
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase.Phase()
}

// Tap applies the upward impulse. It is ignored unless a round is active;
// the new velocity takes effect on the next integration.
func (s *Simulation) Tap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.phase.Is(PhaseActive) {
		return
	}
	ApplyImpulse(&s.body, s.cfg.Physics.ImpulseVelocity)
}

// Play starts a round from the ready phase and latches the tick reference to
// the current time, so the first delta does not include time spent waiting.
func (s *Simulation) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.phase.Transition(PhaseActive); err != nil {
		return err
	}
	s.lastTick = s.clock.Now()
	return nil
}

// Reset returns a stopped round to the ready phase with fresh state. The best
// score survives.
func (s *Simulation) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.phase.Transition(PhaseReady); err != nil {
		return err
	}
	s.resetRound()
	return nil
}

// Tick advances the simulation to the time sample now. The delta is measured
// from the previous tick, or from Play for the first tick of a round. The
// field size is recorded in every phase; entities only move while active.
func (s *Simulation) Tick(now time.Time, field Field) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.field = field
	if s.phase.Is(PhaseActive) {
		dt := now.Sub(s.lastTick).Seconds()
		s.lastTick = now
		s.step(dt, field)
	}
	return s.snapshot()
}

// Step advances the simulation by dt seconds. Entities only move while
// active.
func (s *Simulation) Step(dt float64, field Field) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.field = field
	if s.phase.Is(PhaseActive) {
		s.step(dt, field)
	}
	return s.snapshot()
}

// step runs the tick pipeline. The order is load-bearing: boundaries are
// checked against the previous obstacle position, so a boundary death wins
// over an obstacle hit in the same tick.
func (s *Simulation) step(dt float64, field Field) {
	if dt < 0 {
		dt = 0
	}
	s.ticks++

	ApplyGravity(&s.body, dt, s.cfg.Physics.Gravity)
	Integrate(&s.body, dt)

	if reason := CheckBoundaries(&s.body, field.Height, s.cfg.Field.GroundMargin); reason != EndNone {
		s.stop(reason)
		return
	}

	s.obstacle.Advance(dt, s.cfg.Physics.ObstacleSpeed)
	passedLeft := s.obstacle.Left(field.Width)
	if s.obstacle.RecycleIfNeeded(field.Width, s.gaps, s.rng) {
		// One coarse tick can carry the obstacle past the body and the
		// recycle line; credit that crossing before the recycled obstacle
		// re-arms the trigger.
		if _, newBest := s.score.Update(s.body.Pos.X, passedLeft, s.obstacle.Width); newBest {
			s.saveBest()
		}
	}

	bodyRect := s.body.Rect(s.cfg.Body.Size)
	top := s.obstacle.TopRect(field.Width)
	bottom := s.obstacle.BottomRect(field.Width, field.Height)
	if CheckObstacleCollision(bodyRect, top, bottom) {
		s.stop(EndObstacle)
	}

	if _, newBest := s.score.Update(s.body.Pos.X, s.obstacle.Left(field.Width), s.obstacle.Width); newBest {
		s.saveBest()
	}
}

// stop ends the round. Only called while active, so the transition cannot fail.
func (s *Simulation) stop(reason EndReason) {
	//nolint:errcheck // active -> stopped is always legal here
	s.phase.Transition(PhaseStopped)
	s.end = reason
}

// saveBest writes the best score through. A failed write is not retried and
// the store is dropped for the rest of the process lifetime.
func (s *Simulation) saveBest() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveBestScore(s.cfg.Persistence.Key, s.score.Best); err != nil {
		s.logger.Debug("best score not persisted", "score", s.score.Best, "error", err)
		s.store = nil
	}
}

// Snapshot returns a copy of the current state.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}
