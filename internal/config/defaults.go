package config

import (
	_ "embed"
)

//go:embed defaults/tilerush.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the hardcoded fallback configuration, used only
// if the embedded default YAML fails to parse.
func DefaultConfig() GameConfig {
	return GameConfig{
		Lanes:      4,
		Mode:       ModeEndless,
		TargetType: "cat",
		OtherTypes: []string{"dog", "fox", "owl"},
		Speed: SpeedConfig{
			StartPxPerSec: 340,
			AccelPxPerMin: 240,
			MaxPxPerSec:   760,
		},
		Classic: ClassicConfig{
			RowsTotal:          40,
			AdvanceAnimationMS: 160,
		},
		HitWindow: HitWindowConfig{
			Good: 120,
		},
		Controls: ControlsConfig{
			Keys: []string{"d", "f", "j", "k"},
		},
	}
}
