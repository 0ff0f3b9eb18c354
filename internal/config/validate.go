package config

import (
	"fmt"
	"strings"
)

// Lane bounds: one key per lane, so more than a keyboard row of lanes is
// not playable.
const (
	MinLanes = 2
	MaxLanes = 9
)

// Validate checks the configuration shape before a run is constructed.
// Any error here is fatal at startup; the simulation core never
// re-validates at runtime.
func Validate(cfg GameConfig) error {
	if cfg.Mode != ModeEndless && cfg.Mode != ModeClassic {
		return fmt.Errorf("config: unknown mode %q", cfg.Mode)
	}
	if cfg.Lanes < MinLanes || cfg.Lanes > MaxLanes {
		return fmt.Errorf("config: lanes must be in [%d, %d], got %d", MinLanes, MaxLanes, cfg.Lanes)
	}
	if cfg.TargetType == "" {
		return fmt.Errorf("config: target_type must be provided")
	}
	for _, other := range cfg.OtherTypes {
		if other == cfg.TargetType {
			return fmt.Errorf("config: other_types must not contain the target type %q", cfg.TargetType)
		}
		if other == "" {
			return fmt.Errorf("config: other_types must not contain empty names")
		}
	}

	if cfg.HitWindow.Good <= 0 {
		return fmt.Errorf("config: hit_window_ms.good must be positive, got %d", cfg.HitWindow.Good)
	}

	if err := validateControls(cfg); err != nil {
		return err
	}

	switch cfg.Mode {
	case ModeEndless:
		return validateSpeed(cfg.Speed)
	case ModeClassic:
		return validateClassic(cfg.Classic)
	}
	return nil
}

func validateControls(cfg GameConfig) error {
	if len(cfg.Controls.Keys) != cfg.Lanes {
		return fmt.Errorf("config: controls.keys length %d must equal lanes %d", len(cfg.Controls.Keys), cfg.Lanes)
	}
	seen := make(map[string]bool, len(cfg.Controls.Keys))
	for _, key := range cfg.Controls.Keys {
		if len([]rune(key)) != 1 {
			return fmt.Errorf("config: controls.keys entries must be single characters, got %q", key)
		}
		lower := strings.ToLower(key)
		if seen[lower] {
			return fmt.Errorf("config: controls.keys must be unique, %q repeats", key)
		}
		seen[lower] = true
	}
	return nil
}

func validateSpeed(s SpeedConfig) error {
	if s.StartPxPerSec <= 0 || s.MaxPxPerSec <= 0 {
		return fmt.Errorf("config: speed start and max must be positive")
	}
	if s.AccelPxPerMin < 0 {
		return fmt.Errorf("config: speed accel must be non-negative")
	}
	if s.MaxPxPerSec < s.StartPxPerSec {
		return fmt.Errorf("config: max_px_per_sec %.1f must be >= start_px_per_sec %.1f", s.MaxPxPerSec, s.StartPxPerSec)
	}
	return nil
}

func validateClassic(c ClassicConfig) error {
	if c.RowsTotal <= 0 {
		return fmt.Errorf("config: classic.rows_total must be positive, got %d", c.RowsTotal)
	}
	if c.AdvanceAnimationMS < 0 {
		return fmt.Errorf("config: classic.advance_animation_ms must be non-negative, got %d", c.AdvanceAnimationMS)
	}
	return nil
}
