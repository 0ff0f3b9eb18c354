package sim

import (
	"math/rand"

	"github.com/tilerush/tilerush/internal/catalog"
)

// Catalog is the simulation's view of the type catalog. It must be fully
// preloaded before the first Advance call; the simulation never issues
// type-discovery calls itself.
type Catalog interface {
	RandomSprite(typeName string) *catalog.Sprite
	HasType(typeName string) bool
}

// Generator produces tile rows: exactly one target tile in a uniformly
// chosen lane, every other lane drawn uniformly (with replacement) from
// the other types, or left empty when there are no other types.
//
// All randomness flows through the single shared rand source handed in at
// construction, so a fixed seed reproduces the exact row sequence.
type Generator struct {
	target string
	others []string
	lanes  int
	cat    Catalog
	rng    *rand.Rand

	rows int // rows generated so far
	seq  int // tiles generated so far
}

// NewGenerator creates a row generator for the given type set.
func NewGenerator(target string, others []string, lanes int, cat Catalog, rng *rand.Rand) *Generator {
	return &Generator{
		target: target,
		others: others,
		lanes:  lanes,
		cat:    cat,
		rng:    rng,
	}
}

// Row generates the next row with every tile at vertical position y.
// Lanes without a tile are simply absent from the returned slice.
func (g *Generator) Row(y float64) []*Tile {
	row := g.rows
	g.rows++

	targetLane := g.rng.Intn(g.lanes)

	tiles := make([]*Tile, 0, g.lanes)
	for lane := 0; lane < g.lanes; lane++ {
		var typeName string
		switch {
		case lane == targetLane:
			typeName = g.target
		case len(g.others) > 0:
			typeName = g.others[g.rng.Intn(len(g.others))]
		default:
			continue
		}

		g.seq++
		tiles = append(tiles, &Tile{
			Lane:   lane,
			Type:   typeName,
			Sprite: g.cat.RandomSprite(typeName),
			Y:      y,
			Row:    row,
			Seq:    g.seq,
			State:  TileActive,
		})
	}
	return tiles
}

// Rows returns how many rows have been generated.
func (g *Generator) Rows() int {
	return g.rows
}
