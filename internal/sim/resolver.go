package sim

import "math"

// TapKind classifies what a tap resolved against.
type TapKind uint8

const (
	// TapNoTile means no active tile in the lane was within the window.
	// Neither mode treats this as a wrong tap: there was nothing present
	// to mis-resolve against.
	TapNoTile TapKind = iota
	// TapHit means the nearest in-window tile is the target type.
	TapHit
	// TapWrongType means the nearest in-window tile is not the target.
	TapWrongType
)

// TapResult is the outcome of resolving a single tap.
// Tile is nil for TapNoTile.
type TapResult struct {
	Kind TapKind
	Tile *Tile
}

// ResolveTap decides what a tap in the given lane hits.
//
// Among active tiles in the lane it selects the one closest to the hit
// line; tiles farther than tolerancePx are out of the window and never
// resolve, not even as a wrong tap. Ties prefer the tile that has not yet
// passed the line, then the earlier-spawned tile.
//
// tolerancePx is the configured timing window converted to field pixels
// at the current scroll speed (window_ms / 1000 * speed), so the timing
// tolerance in seconds stays constant as the run speeds up. Classic mode
// passes its row positions and a sub-row tolerance instead.
//
// On TapHit the tile transitions Active -> Hit here; deciding the run
// outcome is the controller's job, which keeps the resolver mode-agnostic.
func ResolveTap(lane int, tiles []*Tile, hitLine, tolerancePx float64, targetType string) TapResult {
	var best *Tile
	var bestDist float64

	for _, t := range tiles {
		if t.Lane != lane || t.State != TileActive {
			continue
		}
		dist := math.Abs(t.Y - hitLine)
		if dist > tolerancePx {
			continue
		}
		if best == nil || closer(t, dist, best, bestDist, hitLine) {
			best = t
			bestDist = dist
		}
	}

	if best == nil {
		return TapResult{Kind: TapNoTile}
	}
	if best.Type == targetType {
		best.State = TileHit
		return TapResult{Kind: TapHit, Tile: best}
	}
	return TapResult{Kind: TapWrongType, Tile: best}
}

// closer reports whether candidate a (at distance da) should be preferred
// over the current best b (at distance db).
func closer(a *Tile, da float64, b *Tile, db, hitLine float64) bool {
	if da != db {
		return da < db
	}
	// Equidistant: prefer the tile still approaching the line, the one
	// the player is more likely to intend.
	aPast := a.Y > hitLine
	bPast := b.Y > hitLine
	if aPast != bPast {
		return !aPast
	}
	// Still tied: stable ordering by spawn sequence.
	return a.Seq < b.Seq
}
