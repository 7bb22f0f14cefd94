package game

// Score tracks the current round score and the best score across rounds.
//
// Passed is an armed/disarmed edge trigger: it is set when the obstacle's
// trailing edge moves behind the body and cleared once an obstacle is ahead
// of the body again. A point is awarded only on the armed-to-disarmed edge,
// so coarse or uneven ticks can neither double count nor skip a crossing.
type Score struct {
	Current int
	Best    int
	Passed  bool
}

// Update evaluates one obstacle crossing. obstacleLeft is the obstacle's left
// edge in field coordinates. It reports whether a point was scored and
// whether that point raised the best score.
func (s *Score) Update(bodyX, obstacleLeft, width float64) (scored, newBest bool) {
	switch {
	case obstacleLeft+width < bodyX && !s.Passed:
		s.Current++
		s.Passed = true
		if s.Current > s.Best {
			s.Best = s.Current
			newBest = true
		}
		return true, newBest
	case obstacleLeft > bodyX:
		s.Passed = false
	}
	return false, false
}

// ResetRound clears the round score and re-arms the trigger. Best is kept.
func (s *Score) ResetRound() {
	s.Current = 0
	s.Passed = false
}
