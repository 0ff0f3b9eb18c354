package sim

import "github.com/tilerush/tilerush/internal/config"

// rowTolerance is the resolver window for classic mode, in row units.
// Tiles in the current row sit exactly at the row line, so any value
// below half a row accepts them and rejects every other row.
const rowTolerance = 0.25

// classicRun is the discrete controller: a fixed number of rows is
// generated up front, only the current row is visible and tappable, and a
// correct tap advances to the next row, optionally through a short
// input-gating animation. Nothing moves on its own; the "scroll" is just
// which row index is current.
//
// State machine: Running -> GameOver or Running -> Finished, mutually
// exclusive and both terminal.
type classicRun struct {
	cfg  config.GameConfig
	rows [][]*Tile

	current int
	cleared int
	animMS  float64 // remaining advance animation, gates input while > 0
	started bool    // first accepted tap seen; the timer runs from here
	elapsed float64
	score   int
	outcome Outcome
}

func newClassicRun(cfg config.GameConfig, gen *Generator) *classicRun {
	c := &classicRun{cfg: cfg}

	// Pre-generate every row so the run is fully determined by the seed;
	// there is no autonomous spawning during play.
	c.rows = make([][]*Tile, cfg.Classic.RowsTotal)
	for i := range c.rows {
		c.rows[i] = gen.Row(float64(i))
	}
	return c
}

func (c *classicRun) advance(dt float64) {
	if c.outcome.Terminal() {
		return
	}

	// The timer is frozen at 0 until the first accepted tap and stops
	// the instant the final hit lands (the outcome turns terminal).
	if c.started {
		c.elapsed += dt
	}

	if c.animMS > 0 {
		c.animMS -= dt * 1000
		if c.animMS <= 0 {
			c.animMS = 0
			c.current++
		}
	}
}

func (c *classicRun) onTap(lane int) {
	if c.outcome.Terminal() {
		return
	}
	// Input is gated while the advance animation runs.
	if c.animMS > 0 {
		return
	}

	res := ResolveTap(lane, c.rows[c.current], float64(c.current), rowTolerance, c.cfg.TargetType)
	switch res.Kind {
	case TapHit:
		c.started = true
		c.score++
		c.cleared++
		if c.cleared == c.cfg.Classic.RowsTotal {
			c.outcome = Outcome{Kind: OutcomeFinished}
			return
		}
		if c.cfg.Classic.AdvanceAnimationMS > 0 {
			c.animMS = float64(c.cfg.Classic.AdvanceAnimationMS)
		} else {
			// Instantaneous advance: no animation state entered.
			c.current++
		}
	case TapWrongType:
		c.started = true
		c.outcome = Outcome{
			Kind:     OutcomeGameOver,
			Reason:   ReasonWrongTap,
			TileType: res.Tile.Type,
		}
	case TapNoTile:
		// Empty lane in the current row: ignored, same as endless.
	}
}

func (c *classicRun) snapshot() Snapshot {
	// Only the current row is visible; rows beyond it are not tappable
	// and cleared rows are consumed.
	var tiles []TileView
	if !c.outcome.Terminal() || c.current < len(c.rows) {
		row := c.rows[min(c.current, len(c.rows)-1)]
		tiles = make([]TileView, 0, len(row))
		for _, t := range row {
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
	}
	return Snapshot{
		Mode:            config.ModeClassic,
		Score:           c.score,
		Elapsed:         c.elapsed,
		RowsTotal:       c.cfg.Classic.RowsTotal,
		RowsCleared:     c.cleared,
		AnimRemainingMS: c.animMS,
		Outcome:         c.outcome,
		Tiles:           tiles,
	}
}
