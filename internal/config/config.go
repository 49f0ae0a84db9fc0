package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"threefiveeight/internal/domain"
)

// EnvPrefix prefixes the Nakama runtime env keys read by ApplyEnv.
const EnvPrefix = "threefiveeight_"

type GameConfig struct {
	VictoryTarget int    `json:"victory_target"`
	BotsEnabled   bool   `json:"bots_enabled"`
	BotLevel      string `json:"bot_level"`
	BotMinDelay   int    `json:"bot_min_delay_sec"`
	BotMaxDelay   int    `json:"bot_max_delay_sec"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before filling a solo human lobby with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_sec"`
	// PhaseDelayMs maps a phase name (or "default") to the bot think time in milliseconds.
	PhaseDelayMs map[string]int `json:"phase_delay_ms"`
	// NextHandDelayMs is how long a dealer bot waits on the scoring screen.
	NextHandDelayMs int `json:"next_hand_delay_ms"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns the built-in configuration.
func Default() *GameConfig {
	delays := map[string]int{
		string(domain.PhaseSetupDeal):       1500,
		string(domain.PhaseReshuffleWindow): 1500,
		string(domain.PhaseExchangeGive):    600,
		string(domain.PhaseExchangeReturn):  600,
		string(domain.PhaseCutterPick):      2800,
		string(domain.PhaseDealerDiscard):   1000,
		string(domain.PhaseTrickPlay):       1200,
		"default":                           800,
	}
	return &GameConfig{
		VictoryTarget:           domain.DefaultVictoryTarget,
		BotsEnabled:             true,
		BotLevel:                "pro",
		BotMinDelay:             1,
		BotMaxDelay:             3,
		BotAutoFillDelaySeconds: 5,
		PhaseDelayMs:            delays,
		NextHandDelayMs:         4000,
	}
}

// LoadGameConfig loads the game configuration from the given path. Keys
// missing from the file keep their defaults.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := Parse(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// Parse decodes a JSON config on top of Default.
func Parse(data []byte) (*GameConfig, error) {
	c := Default()
	delays := c.PhaseDelayMs
	c.PhaseDelayMs = nil
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	for phase, ms := range c.PhaseDelayMs {
		delays[phase] = ms
	}
	c.PhaseDelayMs = delays
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// GetGameConfig returns the global game configuration, or the defaults when
// nothing was loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}

// Validate checks the numeric ranges.
func (c *GameConfig) Validate() error {
	if c.VictoryTarget <= 0 {
		return fmt.Errorf("victory_target must be positive, got %d", c.VictoryTarget)
	}
	if c.BotMinDelay < 0 || c.BotMaxDelay < c.BotMinDelay {
		return fmt.Errorf("bot delay range [%d, %d] is invalid", c.BotMinDelay, c.BotMaxDelay)
	}
	if c.BotAutoFillDelaySeconds < 0 {
		return fmt.Errorf("bot_auto_fill_delay_sec must not be negative")
	}
	for phase, ms := range c.PhaseDelayMs {
		if ms < 0 {
			return fmt.Errorf("phase_delay_ms[%s] must not be negative", phase)
		}
	}
	return nil
}

// ApplyEnv overrides fields from Nakama runtime env values such as
// threefiveeight_bots_enabled. Unknown keys are ignored; a malformed value is
// an error and leaves c unchanged.
func (c *GameConfig) ApplyEnv(env map[string]string) error {
	next := *c
	next.PhaseDelayMs = make(map[string]int, len(c.PhaseDelayMs))
	for k, v := range c.PhaseDelayMs {
		next.PhaseDelayMs[k] = v
	}

	for key, raw := range env {
		name, ok := strings.CutPrefix(strings.ToLower(key), EnvPrefix)
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		var err error
		switch name {
		case "victory_target":
			next.VictoryTarget, err = strconv.Atoi(value)
		case "bots_enabled":
			next.BotsEnabled, err = strconv.ParseBool(value)
		case "bot_level":
			next.BotLevel = value
		case "bot_min_delay_sec":
			next.BotMinDelay, err = strconv.Atoi(value)
		case "bot_max_delay_sec":
			next.BotMaxDelay, err = strconv.Atoi(value)
		case "bot_auto_fill_delay_sec":
			next.BotAutoFillDelaySeconds, err = strconv.Atoi(value)
		case "next_hand_delay_ms":
			next.NextHandDelayMs, err = strconv.Atoi(value)
		default:
			if phase, ok := strings.CutPrefix(name, "delay_"); ok {
				var ms int
				ms, err = strconv.Atoi(value)
				next.PhaseDelayMs[strings.ToUpper(phase)] = ms
			}
		}
		if err != nil {
			return fmt.Errorf("env %s: %w", key, err)
		}
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// DelayFor returns the bot think time for a phase.
func (c *GameConfig) DelayFor(phase domain.Phase) time.Duration {
	if ms, ok := c.PhaseDelayMs[string(phase)]; ok {
		return time.Duration(ms) * time.Millisecond
	}
	if ms, ok := c.PhaseDelayMs["default"]; ok {
		return time.Duration(ms) * time.Millisecond
	}
	return 800 * time.Millisecond
}

// NextHandDelay is the pause before a dealer bot starts the next hand.
func (c *GameConfig) NextHandDelay() time.Duration {
	return time.Duration(c.NextHandDelayMs) * time.Millisecond
}

// AutoFillDelay is how long a solo human waits before bots take the empty seats.
func (c *GameConfig) AutoFillDelay() time.Duration {
	return time.Duration(c.BotAutoFillDelaySeconds) * time.Second
}
