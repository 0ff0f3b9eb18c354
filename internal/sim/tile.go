// Package sim implements the tilerush simulation core: row generation,
// tap resolution, the endless and classic run controllers and the run
// state machine. The package is UI-agnostic and deterministic: all state
// is owned by a single Run instance, time is an injected dt parameter and
// randomness comes from a seeded source, so independent runs never
// cross-contaminate and identical inputs replay identically.
package sim

import "github.com/tilerush/tilerush/internal/catalog"

// TileState is the lifecycle state of a spawned tile.
// Transitions are one-way: Active -> Hit or Active -> Missed. A tile is
// mutated only by the tap resolver (on hit) or its owning controller (on
// crossing detection); rendering code only ever sees snapshot copies.
type TileState uint8

const (
	TileActive TileState = iota
	TileHit
	TileMissed
)

// String returns a human-readable name for the state.
func (s TileState) String() string {
	switch s {
	case TileActive:
		return "active"
	case TileHit:
		return "hit"
	case TileMissed:
		return "missed"
	default:
		return "unknown"
	}
}

// Tile is one spawned tile instance.
//
// Y is the tile's scoring position: the vertical center of the tile in
// field pixels for endless mode, or the row index for classic mode where
// tiles never move on their own.
type Tile struct {
	Lane   int
	Type   string
	Sprite *catalog.Sprite
	Y      float64
	Row    int // spawn row index
	Seq    int // global spawn sequence, used for stable tie-breaks
	State  TileState
}

// Geometry fixes the simulation's spatial frame in field pixels.
// It is injected at construction so the simulation never reads the
// terminal; the platform maps field pixels to screen cells when drawing.
type Geometry struct {
	FieldHeight float64 // full scroll field height
	TileHeight  float64 // one row of tiles; also the spawn spacing
	HitLine     float64 // fixed tap target position
}

// HitLineFraction places the hit line near the bottom of the field,
// leaving room to see a tile after its tap moment has passed.
const HitLineFraction = 0.8

// RowsVisible is how many tile rows fit in the field vertically.
const RowsVisible = 5

// DefaultGeometry returns the standard playfield frame.
func DefaultGeometry() Geometry {
	const fieldHeight = 800.0
	return Geometry{
		FieldHeight: fieldHeight,
		TileHeight:  fieldHeight / RowsVisible,
		HitLine:     fieldHeight * HitLineFraction,
	}
}
