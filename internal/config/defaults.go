package config

import (
	_ "embed"
)

//go:embed defaults/boulder.yaml
var defaultBoulderYAML []byte

// DefaultBoulderConfig returns the default Boulder Dash configuration.
func DefaultBoulderConfig() BoulderConfig {
	return BoulderConfig{
		Timing: BoulderTiming{
			SimEveryTicks:      12,
			TimePeriodTicks:    60,
			IdleThreshold:      5,
			LevelCompleteTicks: 120,
		},
		View: BoulderView{
			Width:  40,
			Height: 20,
		},
		Sound: BoulderSound{
			Enabled: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			TimeScale:    1.0,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				TimeReduction: 0.3,
			},
		},
	}
}
