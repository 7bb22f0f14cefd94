package game

import (
	"errors"
	"fmt"
)

// Phase is the discrete game mode gating the tick pipeline.
type Phase int

const (
	PhaseReady   Phase = iota // Waiting for play; nothing moves
	PhaseActive               // The only phase in which ticks run
	PhaseStopped              // Round over; state frozen for display
)

// ErrInvalidTransition is returned when an event would skip a phase.
var ErrInvalidTransition = errors.New("game: invalid phase transition")

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseActive:
		return "active"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// next returns the only phase reachable from p.
func (p Phase) next() Phase {
	switch p {
	case PhaseReady:
		return PhaseActive
	case PhaseActive:
		return PhaseStopped
	default:
		return PhaseReady
	}
}

// PhaseController owns the current phase and enforces the cycle
// ready -> active -> stopped -> ready.
type PhaseController struct {
	phase Phase
}

// Phase returns the current phase.
func (c *PhaseController) Phase() Phase {
	return c.phase
}

// Is reports whether the controller is in phase p.
func (c *PhaseController) Is(p Phase) bool {
	return c.phase == p
}

// Transition moves to phase to if it is the successor of the current phase.
func (c *PhaseController) Transition(to Phase) error {
	if c.phase.next() != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.phase, to)
	}
	c.phase = to
	return nil
}
