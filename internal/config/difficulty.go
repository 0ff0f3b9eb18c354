package config

// DifficultyPreset names a speed-ramp adjustment applied before a run
// is constructed. Presets only rescale the endless speed block; the
// in-run ramp itself stays a closed-form linear function of time.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // no acceleration at all
)

// KnownPreset reports whether the preset name is recognized.
func KnownPreset(p DifficultyPreset) bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// ApplyPreset returns a copy of the config with the preset's speed
// scaling applied. An empty preset leaves the config untouched.
func ApplyPreset(cfg GameConfig, preset DifficultyPreset) GameConfig {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.StartPxPerSec *= 0.75
		cfg.Speed.AccelPxPerMin *= 0.5
	case DifficultyHard:
		cfg.Speed.StartPxPerSec *= 1.25
		cfg.Speed.AccelPxPerMin *= 1.5
		cfg.Speed.MaxPxPerSec *= 1.25
	case DifficultyFixed:
		cfg.Speed.AccelPxPerMin = 0
	}
	// Keep the validated invariant max >= start after scaling.
	if cfg.Speed.MaxPxPerSec < cfg.Speed.StartPxPerSec {
		cfg.Speed.MaxPxPerSec = cfg.Speed.StartPxPerSec
	}
	return cfg
}
