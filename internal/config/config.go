// Package config provides YAML-based game configuration loading and
// difficulty management for Boulder Dash.
package config

import "fmt"

// BoulderConfig contains all configuration for the Boulder Dash game.
type BoulderConfig struct {
	Timing     BoulderTiming    `yaml:"timing"`
	View       BoulderView      `yaml:"view"`
	Sound      BoulderSound     `yaml:"sound"`
	Levels     BoulderLevels    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoulderTiming defines tick-based timing. All values count main ticks
// except IdleThreshold, which counts time units.
type BoulderTiming struct {
	SimEveryTicks      int `yaml:"sim_every_ticks"`      // main ticks per physics/creature cycle
	TimePeriodTicks    int `yaml:"time_period_ticks"`    // main ticks per time unit
	IdleThreshold      int `yaml:"idle_threshold"`       // time units before the idle animation starts
	LevelCompleteTicks int `yaml:"level_complete_ticks"` // how long the level banner is shown
}

// BoulderView bounds the camera window in board cells.
type BoulderView struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BoulderSound controls the terminal bell.
type BoulderSound struct {
	Enabled bool `yaml:"enabled"`
}

// BoulderLevels selects the level pack. Empty means the built-in pack.
type BoulderLevels struct {
	Path string `yaml:"path"`
}

// DifficultyConfig defines the time budget scaling and its progression
// over the levels of a run.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	TimeScale    float64           `yaml:"time_scale"`    // multiplier for every level's time budget
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeReduction float64 `yaml:"time_reduction"` // fraction of the time budget removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. The empty string means no
// preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate rejects configurations the game cannot run with.
func (c BoulderConfig) Validate() error {
	t := c.Timing
	switch {
	case t.SimEveryTicks <= 0:
		return fmt.Errorf("config: timing.sim_every_ticks must be positive, got %d", t.SimEveryTicks)
	case t.TimePeriodTicks <= 0:
		return fmt.Errorf("config: timing.time_period_ticks must be positive, got %d", t.TimePeriodTicks)
	case t.IdleThreshold <= 0:
		return fmt.Errorf("config: timing.idle_threshold must be positive, got %d", t.IdleThreshold)
	case t.LevelCompleteTicks <= 0:
		return fmt.Errorf("config: timing.level_complete_ticks must be positive, got %d", t.LevelCompleteTicks)
	case c.View.Width <= 0 || c.View.Height <= 0:
		return fmt.Errorf("config: view size must be positive, got %dx%d", c.View.Width, c.View.Height)
	case c.Difficulty.TimeScale <= 0:
		return fmt.Errorf("config: difficulty.time_scale must be positive, got %g", c.Difficulty.TimeScale)
	case c.Difficulty.Scaling.TimeReduction < 0 || c.Difficulty.Scaling.TimeReduction >= 1:
		return fmt.Errorf("config: difficulty.scaling.time_reduction must be in [0, 1), got %g",
			c.Difficulty.Scaling.TimeReduction)
	}
	return nil
}
