package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestAutopilotClearsObstacles(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacle.Spacing = 200
	cfg.Obstacle.GapMin = 250
	cfg.Obstacle.GapMax = 350

	sim := newTestSim(t, cfg)
	pilot := NewAutopilot(cfg.Physics)
	if err := sim.Play(); err != nil {
		t.Fatal(err)
	}

	var snap Snapshot
	for i := 0; i < 2000; i++ {
		snap = sim.Step(0.01, testField)
		if snap.Phase != PhaseActive {
			t.Fatalf("autopilot crashed into the %v at tick %d with score %d", snap.End, i, snap.Score)
		}
		if pilot.Decide(snap) {
			sim.Tap()
		}
	}

	if snap.Score < 5 {
		t.Errorf("score after 20s = %d, expected at least 5", snap.Score)
	}
}

func TestAutopilotThreshold(t *testing.T) {
	pilot := NewAutopilot(config.Physics{Gravity: 1000, ImpulseVelocity: -400})

	snap := Snapshot{
		Phase:    PhaseActive,
		BodySize: 13,
		Obstacle: Obstacle{GapTop: 200, Spacing: 200},
	}

	// apex 80, slack 200-13-80 = 107
	if got := pilot.Threshold(snap); got != 200+6.5+80+53.5 {
		t.Errorf("Threshold() = %v, expected 340", got)
	}

	snap.Body = Body{Pos: Vec{Y: 350}, Vel: Vec{Y: 10}}
	if !pilot.Decide(snap) {
		t.Error("should tap when falling below the threshold")
	}

	snap.Body.Vel.Y = -10
	if pilot.Decide(snap) {
		t.Error("should not tap while rising")
	}

	snap.Body.Vel.Y = 10
	snap.Phase = PhaseReady
	if pilot.Decide(snap) {
		t.Error("should not tap outside the active phase")
	}
}
