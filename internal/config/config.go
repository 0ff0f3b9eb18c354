// Package config provides YAML-based game configuration loading, startup
// validation and difficulty presets for tilerush.
package config

// Mode selects which run controller the simulation constructs.
type Mode string

const (
	ModeEndless Mode = "endless" // continuous scroll, speed ramp, miss-by-crossing
	ModeClassic Mode = "classic" // fixed row count, advance on correct tap
)

// GameConfig contains the full validated configuration for a run.
// The simulation assumes it is only ever constructed with a config that
// passed Validate and does not re-check it at runtime.
type GameConfig struct {
	Lanes      int             `yaml:"lanes"`
	Mode       Mode            `yaml:"mode"`
	TargetType string          `yaml:"target_type"`
	OtherTypes []string        `yaml:"other_types"`
	Speed      SpeedConfig     `yaml:"speed"`
	Classic    ClassicConfig   `yaml:"classic"`
	HitWindow  HitWindowConfig `yaml:"hit_window_ms"`
	Controls   ControlsConfig  `yaml:"controls"`
	SpritePack string          `yaml:"sprite_pack"`
}

// SpeedConfig defines the endless-mode scroll ramp.
// Acceleration is configured per minute and applied as a closed-form
// linear ramp: speed never decreases and never exceeds MaxPxPerSec.
type SpeedConfig struct {
	StartPxPerSec float64 `yaml:"start_px_per_sec"`
	AccelPxPerMin float64 `yaml:"accel_px_per_min"`
	MaxPxPerSec   float64 `yaml:"max_px_per_sec"`
}

// ClassicConfig defines the classic-mode block.
type ClassicConfig struct {
	RowsTotal          int `yaml:"rows_total"`
	AdvanceAnimationMS int `yaml:"advance_animation_ms"`
}

// HitWindowConfig defines tap timing tolerances in milliseconds.
// Only the "good" window is used; the window is converted to a spatial
// tolerance at the current scroll speed so the timing tolerance in
// seconds stays constant as the run speeds up.
type HitWindowConfig struct {
	Good int `yaml:"good"`
}

// ControlsConfig maps keyboard keys to lanes, index for index.
type ControlsConfig struct {
	Keys []string `yaml:"keys"`
}

// TileTypes returns the target type followed by the other types.
func (c GameConfig) TileTypes() []string {
	types := make([]string, 0, 1+len(c.OtherTypes))
	types = append(types, c.TargetType)
	types = append(types, c.OtherTypes...)
	return types
}
