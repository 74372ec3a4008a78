package blockfall

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsApply(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name      string
		start     Stats
		cleared   int
		wantDelta int
		want      Stats
	}{
		{
			name:      "no clear changes nothing",
			start:     Stats{Score: 500, Lines: 7, Level: 1, DropInterval: time.Second},
			cleared:   0,
			wantDelta: 0,
			want:      Stats{Score: 500, Lines: 7, Level: 1, DropInterval: time.Second},
		},
		{
			name:      "single at level 1",
			start:     NewStats(rules),
			cleared:   1,
			wantDelta: 40,
			want:      Stats{Score: 40, Lines: 1, Level: 1, DropInterval: time.Second},
		},
		{
			name:      "tetris at level 3",
			start:     Stats{Score: 0, Lines: 25, Level: 3, DropInterval: 900 * time.Millisecond},
			cleared:   4,
			wantDelta: 3600,
			want:      Stats{Score: 3600, Lines: 29, Level: 3, DropInterval: 900 * time.Millisecond},
		},
		{
			name:      "crossing a level boundary",
			start:     Stats{Score: 100, Lines: 9, Level: 1, DropInterval: time.Second},
			cleared:   4,
			wantDelta: 1200,
			want:      Stats{Score: 1300, Lines: 13, Level: 2, DropInterval: 950 * time.Millisecond},
		},
		{
			name:      "interval floors at 50ms",
			start:     Stats{Lines: 248, Level: 25, DropInterval: 50 * time.Millisecond},
			cleared:   2,
			wantDelta: 2500,
			want:      Stats{Score: 2500, Lines: 250, Level: 26, DropInterval: 50 * time.Millisecond},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			assert.Equal(t, tt.wantDelta, s.Apply(tt.cleared, rules))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestNewStats(t *testing.T) {
	assert.Equal(t, Stats{Score: 0, Lines: 0, Level: 1, DropInterval: time.Second}, NewStats(DefaultRules()))
}

func TestDropIntervalByLevel(t *testing.T) {
	rules := DefaultRules()
	s := NewStats(rules)
	for level := 2; level <= 20; level++ {
		s.Apply(10, rules)
		assert.Equal(t, level, s.Level)
		assert.Equal(t, time.Duration(1000-(level-1)*50)*time.Millisecond, s.DropInterval)
	}
}
