package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tilerush/tilerush/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultPackYAML []byte

// packFile is the YAML shape of a sprite pack.
type packFile struct {
	Types map[string]packType `yaml:"types"`
}

type packType struct {
	Color   string       `yaml:"color"`
	Sprites []packSprite `yaml:"sprites"`
}

type packSprite struct {
	Art []string `yaml:"art"`
}

// Load builds a catalog from a sprite pack.
// Search order: customPath -> ~/.tilerush/configs/sprites.yaml ->
// ./configs/sprites.yaml -> embedded default pack.
func Load(customPath string, seed int64) (*Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: cannot read sprite pack %s: %w", customPath, err)
		}
		return parsePack(data, seed)
	}

	if userPath := userPackPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := parsePack(data, seed); err == nil {
				return c, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "sprites.yaml")); err == nil {
		if c, err := parsePack(data, seed); err == nil {
			return c, nil
		}
	}

	return parsePack(defaultPackYAML, seed)
}

// userPackPath returns the sprite pack path under the user's home
// directory, or empty if the home directory cannot be resolved.
func userPackPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilerush", "configs", "sprites.yaml")
}

func parsePack(data []byte, seed int64) (*Catalog, error) {
	var pack packFile
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("catalog: cannot parse sprite pack: %w", err)
	}
	if len(pack.Types) == 0 {
		return nil, fmt.Errorf("catalog: sprite pack defines no types")
	}

	c := New(seed)
	for name, t := range pack.Types {
		color, err := ParseColor(t.Color)
		if err != nil {
			return nil, fmt.Errorf("catalog: type %q: %w", name, err)
		}
		if len(t.Sprites) == 0 {
			return nil, fmt.Errorf("catalog: type %q has no sprites", name)
		}
		for i, s := range t.Sprites {
			if len(s.Art) == 0 {
				return nil, fmt.Errorf("catalog: type %q sprite %d has no art", name, i)
			}
			c.Add(name, &Sprite{Art: s.Art, Color: color})
		}
	}
	return c, nil
}

// ParseColor maps a sprite pack color name to a screen color.
func ParseColor(name string) (core.Color, error) {
	colors := map[string]core.Color{
		"":               core.ColorDefault,
		"default":        core.ColorDefault,
		"red":            core.ColorRed,
		"green":          core.ColorGreen,
		"yellow":         core.ColorYellow,
		"blue":           core.ColorBlue,
		"magenta":        core.ColorMagenta,
		"cyan":           core.ColorCyan,
		"white":          core.ColorWhite,
		"bright_red":     core.ColorBrightRed,
		"bright_green":   core.ColorBrightGreen,
		"bright_yellow":  core.ColorBrightYellow,
		"bright_blue":    core.ColorBrightBlue,
		"bright_magenta": core.ColorBrightMagenta,
		"bright_cyan":    core.ColorBrightCyan,
		"bright_white":   core.ColorBrightWhite,
		"orange":         core.ColorOrange,
		"gray":           core.ColorGray,
	}
	c, ok := colors[name]
	if !ok {
		return core.ColorDefault, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
