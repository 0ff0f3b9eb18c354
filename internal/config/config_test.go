package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func validConfig() GameConfig {
	return DefaultConfig()
}

func TestValidateAcceptsDefault(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateAcceptsEmptyOtherTypes(t *testing.T) {
	cfg := validConfig()
	cfg.OtherTypes = nil
	if err := Validate(cfg); err != nil {
		t.Fatalf("empty other_types is legal (rows spawn with only the target): %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"unknown mode", func(c *GameConfig) { c.Mode = "frenzy" }},
		{"too few lanes", func(c *GameConfig) { c.Lanes = 1; c.Controls.Keys = []string{"f"} }},
		{"empty target", func(c *GameConfig) { c.TargetType = "" }},
		{"target in other_types", func(c *GameConfig) { c.OtherTypes = []string{"dog", "cat"} }},
		{"empty other type name", func(c *GameConfig) { c.OtherTypes = []string{""} }},
		{"zero hit window", func(c *GameConfig) { c.HitWindow.Good = 0 }},
		{"keys length mismatch", func(c *GameConfig) { c.Controls.Keys = []string{"d", "f", "j"} }},
		{"duplicate keys case-insensitive", func(c *GameConfig) { c.Controls.Keys = []string{"d", "f", "j", "D"} }},
		{"multi-rune key", func(c *GameConfig) { c.Controls.Keys = []string{"d", "f", "j", "space"} }},
		{"non-positive start speed", func(c *GameConfig) { c.Speed.StartPxPerSec = 0 }},
		{"negative accel", func(c *GameConfig) { c.Speed.AccelPxPerMin = -10 }},
		{"max below start", func(c *GameConfig) { c.Speed.MaxPxPerSec = c.Speed.StartPxPerSec - 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Errorf("Validate should reject config with %s", tc.name)
			}
		})
	}
}

func TestValidateClassicBlock(t *testing.T) {
	cfg := validConfig()
	cfg.Mode = ModeClassic

	if err := Validate(cfg); err != nil {
		t.Fatalf("classic default should validate: %v", err)
	}

	cfg.Classic.RowsTotal = 0
	if err := Validate(cfg); err == nil {
		t.Error("Validate should reject non-positive rows_total")
	}

	cfg = validConfig()
	cfg.Mode = ModeClassic
	cfg.Classic.AdvanceAnimationMS = -1
	if err := Validate(cfg); err == nil {
		t.Error("Validate should reject negative advance_animation_ms")
	}

	// Endless speed errors must not block a classic config.
	cfg = validConfig()
	cfg.Mode = ModeClassic
	cfg.Speed.StartPxPerSec = 0
	if err := Validate(cfg); err != nil {
		t.Errorf("classic config should not validate the speed block: %v", err)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("embedded default YAML should validate: %v", err)
	}
	if cfg.Lanes != len(cfg.Controls.Keys) {
		t.Error("embedded default should have one key per lane")
	}
}

func TestApplyPreset(t *testing.T) {
	base := validConfig()

	easy := ApplyPreset(base, DifficultyEasy)
	if easy.Speed.StartPxPerSec >= base.Speed.StartPxPerSec {
		t.Error("easy preset should lower the start speed")
	}

	hard := ApplyPreset(base, DifficultyHard)
	if hard.Speed.AccelPxPerMin <= base.Speed.AccelPxPerMin {
		t.Error("hard preset should raise acceleration")
	}
	if hard.Speed.MaxPxPerSec < hard.Speed.StartPxPerSec {
		t.Error("preset must preserve max >= start")
	}

	fixed := ApplyPreset(base, DifficultyFixed)
	if fixed.Speed.AccelPxPerMin != 0 {
		t.Error("fixed preset should zero acceleration")
	}

	same := ApplyPreset(base, "")
	if same.Speed != base.Speed {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestTileTypes(t *testing.T) {
	cfg := validConfig()
	types := cfg.TileTypes()
	if len(types) != 1+len(cfg.OtherTypes) || types[0] != cfg.TargetType {
		t.Errorf("TileTypes() = %v, expected target first then others", types)
	}
}

func TestKnownPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if !KnownPreset(p) {
			t.Errorf("KnownPreset(%q) should be true", p)
		}
	}
	if KnownPreset("brutal") {
		t.Error("KnownPreset should reject unknown names")
	}
}
