package sim

import (
	"github.com/tilerush/tilerush/internal/catalog"
	"github.com/tilerush/tilerush/internal/config"
)

// TileView is the read-only projection of a tile for the boundary layer.
type TileView struct {
	Lane   int
	Type   string
	Y      float64 // field pixels (endless) or row index (classic)
	Row    int
	State  TileState
	Sprite *catalog.Sprite
}

// Snapshot is the run's read model. It is the only window the boundary
// layer gets into run state: rendering and input dispatch read it and
// never write back.
type Snapshot struct {
	Mode    config.Mode
	Score   int
	Elapsed float64 // seconds; advances only while the run is Running
	Outcome Outcome

	// Endless only.
	Speed float64

	// Classic only.
	RowsTotal       int
	RowsCleared     int
	AnimRemainingMS float64

	Tiles []TileView
}

// Progress returns rows cleared over total for classic runs and the raw
// score otherwise.
func (s Snapshot) Progress() (current, total int) {
	if s.Mode == config.ModeClassic {
		return s.RowsCleared, s.RowsTotal
	}
	return s.Score, 0
}
