package blockfall

import (
	"errors"
	"fmt"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Rules holds the scoring and speed tunables.
type Rules struct {
	// BaseScores is indexed by lines cleared in one lock.
	BaseScores    [5]int
	LinesPerLevel int
	BaseInterval  time.Duration
	IntervalStep  time.Duration
	MinInterval   time.Duration
	QueueLength   int
}

// DefaultRules returns the standard single/double/triple/tetris table
// with a 1000ms start speed that quickens by 50ms per level down to 50ms.
func DefaultRules() Rules {
	return Rules{
		BaseScores:    [5]int{0, 40, 100, 300, 1200},
		LinesPerLevel: 10,
		BaseInterval:  1000 * time.Millisecond,
		IntervalStep:  50 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
		QueueLength:   3,
	}
}

var ErrInvalidRules = errors.New("invalid rules")

// Validate rejects tunables the engine cannot run with.
func (r Rules) Validate() error {
	switch {
	case r.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines_per_level must be positive", ErrInvalidRules)
	case r.MinInterval <= 0:
		return fmt.Errorf("%w: min_interval_ms must be positive", ErrInvalidRules)
	case r.BaseInterval < r.MinInterval:
		return fmt.Errorf("%w: base_interval_ms below min_interval_ms", ErrInvalidRules)
	case r.IntervalStep < 0:
		return fmt.Errorf("%w: interval_step_ms must not be negative", ErrInvalidRules)
	case r.QueueLength <= 0:
		return fmt.Errorf("%w: queue_length must be positive", ErrInvalidRules)
	}
	for i, s := range r.BaseScores {
		if s < 0 {
			return fmt.Errorf("%w: base score %d is negative", ErrInvalidRules, i)
		}
	}
	return nil
}

// LoadRules reads a Lua script that returns a `blockfall` table, e.g.
//
//	return { rules = { lines_per_level = 10, base_scores = {0, 40, 100, 300, 1200} } }
//
// Keys left out keep their default. A missing file is not an error. On any
// failure the defaults are returned together with the error.
func LoadRules(path string) (Rules, error) {
	defaults := DefaultRules()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaults, nil
	}

	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return defaults, fmt.Errorf("failed to run rules script %s: %w", path, err)
	}

	root, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return defaults, fmt.Errorf("%w: %s must return a table", ErrInvalidRules, path)
	}
	tbl, ok := root.RawGetString("rules").(*lua.LTable)
	if !ok {
		return defaults, fmt.Errorf("%w: %s has no rules table", ErrInvalidRules, path)
	}

	r := Rules{
		BaseScores:    defaults.BaseScores,
		LinesPerLevel: luaInt(tbl, "lines_per_level", defaults.LinesPerLevel),
		BaseInterval:  luaMillis(tbl, "base_interval_ms", defaults.BaseInterval),
		IntervalStep:  luaMillis(tbl, "interval_step_ms", defaults.IntervalStep),
		MinInterval:   luaMillis(tbl, "min_interval_ms", defaults.MinInterval),
		QueueLength:   luaInt(tbl, "queue_length", defaults.QueueLength),
	}
	if scores, ok := tbl.RawGetString("base_scores").(*lua.LTable); ok {
		if scores.Len() != len(r.BaseScores) {
			return defaults, fmt.Errorf("%w: base_scores needs %d entries, got %d",
				ErrInvalidRules, len(r.BaseScores), scores.Len())
		}
		for i := range r.BaseScores {
			num, ok := scores.RawGetInt(i + 1).(lua.LNumber)
			if !ok {
				return defaults, fmt.Errorf("%w: base_scores[%d] is not a number", ErrInvalidRules, i+1)
			}
			r.BaseScores[i] = int(num)
		}
	}

	if err := r.Validate(); err != nil {
		return defaults, err
	}
	return r, nil
}

func luaInt(tbl *lua.LTable, key string, fallback int) int {
	if num, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(num)
	}
	return fallback
}

func luaMillis(tbl *lua.LTable, key string, fallback time.Duration) time.Duration {
	if num, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return time.Duration(float64(num) * float64(time.Millisecond))
	}
	return fallback
}
