package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestCheckBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		y, vel   float64
		wantY    float64
		wantVel  float64
		expected EndReason
	}{
		{"in bounds", 300, 50, 300, 50, EndNone},
		{"exactly zero hits ceiling", 0, -10, 0, -10, EndCeiling},
		{"above ceiling clamps", -25, -400, 0, -400, EndCeiling},
		{"exactly on ground line is safe", 700, 20, 700, 20, EndNone},
		{"below ground line clamps", 712.5, 300, 700, 0, EndGround},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(100, tc.y)
			b.Vel.Y = tc.vel

			got := CheckBoundaries(&b, 800, 100)

			if got != tc.expected {
				t.Errorf("CheckBoundaries() = %v, expected %v", got, tc.expected)
			}
			if b.Pos.Y != tc.wantY {
				t.Errorf("Pos.Y = %v, expected %v", b.Pos.Y, tc.wantY)
			}
			if b.Vel.Y != tc.wantVel {
				t.Errorf("Vel.Y = %v, expected %v", b.Vel.Y, tc.wantVel)
			}
		})
	}
}

func TestCheckObstacleCollision(t *testing.T) {
	top := core.NewRect(200, 0, 100, 250)
	bottom := core.NewRect(200, 350, 100, 450)

	tests := []struct {
		name     string
		body     core.Rect
		expected bool
	}{
		{"in the gap", core.CenteredSquare(250, 300, 13), false},
		{"touching top rect from below", core.NewRect(240, 250, 13, 13), false},
		{"touching bottom rect from above", core.NewRect(240, 337, 13, 13), false},
		{"touching left face", core.NewRect(187, 100, 13, 13), false},
		{"overlapping top rect", core.NewRect(240, 249.5, 13, 13), true},
		{"overlapping bottom rect", core.NewRect(240, 337.01, 13, 13), true},
		{"overlapping left face", core.NewRect(187.5, 100, 13, 13), true},
		{"far away", core.CenteredSquare(50, 300, 13), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckObstacleCollision(tc.body, top, bottom); got != tc.expected {
				t.Errorf("CheckObstacleCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEndReasonString(t *testing.T) {
	if EndGround.String() != "ground" || EndObstacle.String() != "obstacle" {
		t.Error("unexpected EndReason names")
	}
}
