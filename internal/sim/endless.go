package sim

import "github.com/tilerush/tilerush/internal/config"

// endlessRun is the continuous-scroll controller: tiles advance every
// frame at the current speed, the speed ramps linearly toward its cap,
// rows spawn above the field one tile-height apart and a target tile
// crossing the hit line unanswered ends the run.
//
// State machine: Running -> GameOver. There is no Finished state in this
// mode.
type endlessRun struct {
	cfg  config.GameConfig
	geom Geometry
	gen  *Generator

	tiles    []*Tile
	lastRowY float64 // position of the most recently spawned row
	speed    float64
	elapsed  float64
	score    int
	outcome  Outcome
}

func newEndlessRun(cfg config.GameConfig, geom Geometry, gen *Generator) *endlessRun {
	e := &endlessRun{
		cfg:   cfg,
		geom:  geom,
		gen:   gen,
		speed: cfg.Speed.StartPxPerSec,
	}
	e.seedRows()
	return e
}

// seedRows stacks the opening rows above the visible field, bottom row
// first so spawn order matches scroll order.
func (e *endlessRun) seedRows() {
	spawnY := e.spawnPosition()
	for i := 0; i <= RowsVisible; i++ {
		y := spawnY - float64(i)*e.geom.TileHeight
		e.tiles = append(e.tiles, e.gen.Row(y)...)
		e.lastRowY = y
	}
}

// spawnPosition is where a new row appears: centered one half tile above
// the field so its bottom edge touches the top of the view.
func (e *endlessRun) spawnPosition() float64 {
	return -e.geom.TileHeight / 2
}

// toleranceDistance converts the configured timing window to field pixels
// at the current speed. This keeps the effective timing tolerance in
// seconds constant as the run speeds up; a fixed pixel tolerance would
// silently shrink the window at high speed.
func (e *endlessRun) toleranceDistance() float64 {
	return float64(e.cfg.HitWindow.Good) / 1000 * e.speed
}

func (e *endlessRun) advance(dt float64) {
	if e.outcome.Terminal() {
		return
	}

	e.elapsed += dt

	// Closed-form linear ramp, clamped at the cap.
	accelPerSec := e.cfg.Speed.AccelPxPerMin / 60
	e.speed += accelPerSec * dt
	if e.speed > e.cfg.Speed.MaxPxPerSec {
		e.speed = e.cfg.Speed.MaxPxPerSec
	}

	step := e.speed * dt
	for _, t := range e.tiles {
		t.Y += step
	}
	e.lastRowY += step

	e.detectMisses()
	if e.outcome.Terminal() {
		return
	}

	e.spawnDueRows()
	e.pruneOffscreen()
}

// detectMisses ends the run when an unanswered target tile has passed the
// hit line by more than the timing tolerance. Non-target tiles cross
// freely and are discarded once they scroll out.
func (e *endlessRun) detectMisses() {
	tolerance := e.toleranceDistance()
	for _, t := range e.tiles {
		if t.State != TileActive || t.Type != e.cfg.TargetType {
			continue
		}
		if t.Y-e.geom.HitLine > tolerance {
			t.State = TileMissed
			e.outcome = Outcome{
				Kind:     OutcomeGameOver,
				Reason:   ReasonMissedTarget,
				TileType: t.Type,
			}
			return
		}
	}
}

// spawnDueRows inserts new rows whenever the most recent row has advanced
// a full tile height past the spawn position.
func (e *endlessRun) spawnDueRows() {
	for e.lastRowY >= e.spawnPosition()+e.geom.TileHeight {
		y := e.lastRowY - e.geom.TileHeight
		e.tiles = append(e.tiles, e.gen.Row(y)...)
		e.lastRowY = y
	}
}

// pruneOffscreen drops tiles whose top edge has left the bottom of the
// field. An active target can never get here: miss detection fires first.
func (e *endlessRun) pruneOffscreen() {
	kept := e.tiles[:0]
	for _, t := range e.tiles {
		if t.Y-e.geom.TileHeight/2 <= e.geom.FieldHeight {
			kept = append(kept, t)
		}
	}
	e.tiles = kept
}

func (e *endlessRun) onTap(lane int) {
	if e.outcome.Terminal() {
		return
	}

	res := ResolveTap(lane, e.tiles, e.geom.HitLine, e.toleranceDistance(), e.cfg.TargetType)
	switch res.Kind {
	case TapHit:
		e.score++
	case TapWrongType:
		e.outcome = Outcome{
			Kind:     OutcomeGameOver,
			Reason:   ReasonWrongTap,
			TileType: res.Tile.Type,
		}
	case TapNoTile:
		// Tapping an empty lane or out of window is not penalized here.
	}
}

func (e *endlessRun) snapshot() Snapshot {
	tiles := make([]TileView, 0, len(e.tiles))
	for _, t := range e.tiles {
		if t.State != TileActive {
			continue
		}
		tiles = append(tiles, TileView{
			Lane:   t.Lane,
			Type:   t.Type,
			Y:      t.Y,
			Row:    t.Row,
			State:  t.State,
			Sprite: t.Sprite,
		})
	}
	return Snapshot{
		Mode:    config.ModeEndless,
		Score:   e.score,
		Elapsed: e.elapsed,
		Speed:   e.speed,
		Outcome: e.outcome,
		Tiles:   tiles,
	}
}
