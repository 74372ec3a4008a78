package blockfall

import "time"

// Stats is the running tally of one game.
type Stats struct {
	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration
}

// NewStats returns the stats of a fresh game.
func NewStats(r Rules) Stats {
	return Stats{Level: 1, DropInterval: r.BaseInterval}
}

// Apply scores one lock that cleared n rows and returns the points added.
// The level used for scoring is the one in effect before the clear.
// Nothing changes when n is zero.
func (s *Stats) Apply(n int, r Rules) int {
	if n <= 0 {
		return 0
	}
	idx := n
	if idx >= len(r.BaseScores) {
		idx = len(r.BaseScores) - 1
	}
	delta := r.BaseScores[idx] * s.Level
	s.Score += delta
	s.Lines += n
	s.Level = s.Lines/r.LinesPerLevel + 1
	s.DropInterval = max(r.MinInterval, r.BaseInterval-time.Duration(s.Level-1)*r.IntervalStep)
	return delta
}
