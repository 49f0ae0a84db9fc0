package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threefiveeight/internal/domain"
)

func TestDefaultDelays(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, 1200*time.Millisecond, c.DelayFor(domain.PhaseTrickPlay))
	assert.Equal(t, 2800*time.Millisecond, c.DelayFor(domain.PhaseCutterPick))
	assert.Equal(t, 800*time.Millisecond, c.DelayFor(domain.PhaseGameOver))
	assert.Equal(t, 4*time.Second, c.NextHandDelay())
	assert.Equal(t, domain.DefaultVictoryTarget, c.VictoryTarget)
}

func TestParseKeepsDefaults(t *testing.T) {
	c, err := Parse([]byte(`{"victory_target": 5, "bots_enabled": true, "phase_delay_ms": {"TRICK_PLAY": 300}}`))
	require.NoError(t, err)

	assert.Equal(t, 5, c.VictoryTarget)
	assert.Equal(t, 300*time.Millisecond, c.DelayFor(domain.PhaseTrickPlay))
	assert.Equal(t, 1000*time.Millisecond, c.DelayFor(domain.PhaseDealerDiscard))
	assert.Equal(t, "pro", c.BotLevel)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"victory_target":`},
		{"zero target", `{"victory_target": 0}`},
		{"inverted delays", `{"bot_min_delay_sec": 4, "bot_max_delay_sec": 2}`},
		{"negative phase delay", `{"phase_delay_ms": {"TRICK_PLAY": -1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	c := Default()
	err := c.ApplyEnv(map[string]string{
		"threefiveeight_bots_enabled":            "false",
		"THREEFIVEEIGHT_VICTORY_TARGET":          " 7 ",
		"threefiveeight_bot_level":               "basic",
		"threefiveeight_delay_trick_play":        "250",
		"threefiveeight_bot_auto_fill_delay_sec": "0",
		"unrelated_key":                          "x",
	})
	require.NoError(t, err)

	assert.False(t, c.BotsEnabled)
	assert.Equal(t, 7, c.VictoryTarget)
	assert.Equal(t, "basic", c.BotLevel)
	assert.Equal(t, 250*time.Millisecond, c.DelayFor(domain.PhaseTrickPlay))
	assert.Equal(t, time.Duration(0), c.AutoFillDelay())
}

func TestApplyEnvErrorLeavesConfig(t *testing.T) {
	c := Default()
	err := c.ApplyEnv(map[string]string{
		"threefiveeight_victory_target": "3",
		"threefiveeight_bots_enabled":   "maybe",
	})
	require.Error(t, err)
	assert.Equal(t, domain.DefaultVictoryTarget, c.VictoryTarget)
	assert.True(t, c.BotsEnabled)

	require.Error(t, c.ApplyEnv(map[string]string{"threefiveeight_victory_target": "-2"}))
	assert.Equal(t, domain.DefaultVictoryTarget, c.VictoryTarget)
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"victory_target": 12, "bot_level": "basic"}`), 0o600))

	require.NoError(t, LoadGameConfig(path))
	c := GetGameConfig()
	assert.Equal(t, 12, c.VictoryTarget)
	assert.Equal(t, "basic", c.BotLevel)
}
