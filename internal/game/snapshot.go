package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is a read-only copy of the simulation state for renderers.
type Snapshot struct {
	Phase Phase
	End   EndReason

	Body     Body
	BodySize float64

	Obstacle     Obstacle
	ObstacleLeft float64

	Field        Field
	GroundMargin float64

	Score int
	Best  int
	Ticks int // Ticks run in the current round
}

func (s *Simulation) snapshot() Snapshot {
	return Snapshot{
		Phase:        s.phase.Phase(),
		End:          s.end,
		Body:         s.body,
		BodySize:     s.cfg.Body.Size,
		Obstacle:     s.obstacle,
		ObstacleLeft: s.obstacle.Left(s.field.Width),
		Field:        s.field,
		GroundMargin: s.cfg.Field.GroundMargin,
		Score:        s.score.Current,
		Best:         s.score.Best,
		Ticks:        s.ticks,
	}
}

// TopRect returns the upper obstacle rectangle for the snapshot's field.
func (s Snapshot) TopRect() core.Rect {
	return s.Obstacle.TopRect(s.Field.Width)
}

// BottomRect returns the lower obstacle rectangle for the snapshot's field.
func (s Snapshot) BottomRect() core.Rect {
	return s.Obstacle.BottomRect(s.Field.Width, s.Field.Height)
}

// GroundY returns the y-coordinate of the ground line.
func (s Snapshot) GroundY() float64 {
	return s.Field.Height - s.GroundMargin
}
