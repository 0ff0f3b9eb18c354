// Package catalog resolves tile type names to glyph sprites.
// It is the only component that knows how tile art is stored; the
// simulation consumes it through a narrow two-method interface and treats
// sprite handles as opaque immutable values.
package catalog

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/tilerush/tilerush/internal/core"
)

// Sprite is one immutable glyph-art variant for a tile type.
// Art rows are drawn top to bottom, centered inside the tile's lane box.
type Sprite struct {
	Art   []string
	Color core.Color
}

// Width returns the widest art row in runes.
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.Art {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of art rows.
func (s *Sprite) Height() int {
	return len(s.Art)
}

// Catalog holds the preloaded sprites for every configured tile type.
// It is read-only after Preload and safe to share across a run.
type Catalog struct {
	types map[string][]*Sprite
	rng   *rand.Rand
}

// New creates an empty catalog. Sprite variant selection uses its own
// rand source: variant choice is visual only and deliberately excluded
// from the simulation's determinism guarantees.
func New(seed int64) *Catalog {
	return &Catalog{
		types: make(map[string][]*Sprite),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Add registers a sprite variant for a type.
func (c *Catalog) Add(typeName string, s *Sprite) {
	c.types[typeName] = append(c.types[typeName], s)
}

// Preload verifies that every expected type is present with at least one
// sprite. Called once before the first frame; a failure here is fatal at
// startup so the simulation never sees an unresolvable type.
func (c *Catalog) Preload(expected []string) error {
	var missing []string
	for _, name := range expected {
		if len(c.types[name]) == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("catalog: no sprites for types %v", missing)
	}
	return nil
}

// HasType reports whether the catalog has at least one sprite for the type.
func (c *Catalog) HasType(typeName string) bool {
	return len(c.types[typeName]) > 0
}

// RandomSprite returns a uniformly chosen sprite variant for the type.
// Panics on unknown types: Preload guarantees they cannot reach here.
func (c *Catalog) RandomSprite(typeName string) *Sprite {
	variants := c.types[typeName]
	if len(variants) == 0 {
		panic(fmt.Sprintf("catalog: type %q not preloaded", typeName))
	}
	return variants[c.rng.Intn(len(variants))]
}

// Thumbnail returns a stable sprite for HUD display of a type.
// Always the first variant so the target indicator does not flicker.
func (c *Catalog) Thumbnail(typeName string) *Sprite {
	variants := c.types[typeName]
	if len(variants) == 0 {
		return nil
	}
	return variants[0]
}

// Types returns all registered type names, sorted.
func (c *Catalog) Types() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariantCount returns the number of sprite variants for a type.
func (c *Catalog) VariantCount(typeName string) int {
	return len(c.types[typeName])
}
