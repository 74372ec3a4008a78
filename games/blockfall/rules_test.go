package blockfall

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.lua")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRulesMissingFile(t *testing.T) {
	r, err := LoadRules(filepath.Join(t.TempDir(), "nope.lua"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), r)
}

func TestLoadRulesShippedScript(t *testing.T) {
	r, err := LoadRules("blockfall.lua")
	require.NoError(t, err)
	assert.Equal(t, DefaultRules(), r)
}

func TestLoadRulesOverrides(t *testing.T) {
	path := writeScript(t, `
return {
    rules = {
        base_scores = { 0, 100, 300, 500, 800 },
        base_interval_ms = 800,
        queue_length = 5,
    },
}`)

	r, err := LoadRules(path)
	require.NoError(t, err)

	want := DefaultRules()
	want.BaseScores = [5]int{0, 100, 300, 500, 800}
	want.BaseInterval = 800 * time.Millisecond
	want.QueueLength = 5
	assert.Equal(t, want, r)
}

func TestLoadRulesErrors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		invalid bool
	}{
		{"syntax error", `return {`, false},
		{"not a table", `return 42`, true},
		{"no rules key", `return { other = {} }`, true},
		{"short score table", `return { rules = { base_scores = { 0, 40 } } }`, true},
		{"non-numeric score", `return { rules = { base_scores = { 0, 40, "x", 300, 1200 } } }`, true},
		{"zero lines per level", `return { rules = { lines_per_level = 0 } }`, true},
		{"base below minimum", `return { rules = { base_interval_ms = 10 } }`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LoadRules(writeScript(t, tt.script))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidRules)
			}
			assert.Equal(t, DefaultRules(), r, "defaults come back with the error")
		})
	}
}

func TestRulesValidate(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())

	r := DefaultRules()
	r.BaseScores[2] = -1
	assert.ErrorIs(t, r.Validate(), ErrInvalidRules)

	r = DefaultRules()
	r.QueueLength = 0
	assert.ErrorIs(t, r.Validate(), ErrInvalidRules)
}
