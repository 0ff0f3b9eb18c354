package sim

import (
	"math/rand"

	"github.com/tilerush/tilerush/internal/config"
)

// controller is the mode-specific half of a run. Exactly one controller
// is constructed per run and never switched; the endless and classic
// variants implement the same stepping contract so the boundary layer
// does not need to know which mode is active.
type controller interface {
	advance(dt float64)
	onTap(lane int)
	snapshot() Snapshot
}

// Run is the state machine wrapping the active controller. It owns all
// run state (score, timer, tiles, outcome); the boundary layer drives it
// through exactly two mutating entry points, Advance and OnTap, and reads
// it through Snapshot.
//
// Stepping is single-threaded and cooperative: the platform delivers the
// frame's taps one at a time in arrival order, then calls Advance once
// with the frame's dt, so every tap is evaluated against the positions of
// the previous frame. Nothing blocks and no locking is needed.
type Run struct {
	cfg  config.GameConfig
	geom Geometry
	cat  Catalog
	seed int64
	ctrl controller
}

// NewRun constructs a run for the validated configuration. The catalog
// must already be preloaded with every configured type.
func NewRun(cfg config.GameConfig, geom Geometry, cat Catalog, seed int64) *Run {
	r := &Run{
		cfg:  cfg,
		geom: geom,
		cat:  cat,
	}
	r.Reset(seed)
	return r
}

// Reset discards all prior state and rebuilds the controller from the
// original configuration with a fresh rand source for the given seed.
// This is the only way a terminal outcome is ever cleared.
func (r *Run) Reset(seed int64) {
	r.seed = seed
	rng := rand.New(rand.NewSource(seed))
	gen := NewGenerator(r.cfg.TargetType, r.cfg.OtherTypes, r.cfg.Lanes, r.cat, rng)

	if r.cfg.Mode == config.ModeClassic {
		r.ctrl = newClassicRun(r.cfg, gen)
	} else {
		r.ctrl = newEndlessRun(r.cfg, r.geom, gen)
	}
}

// Advance steps the simulation by dt seconds. After a terminal outcome
// this is a no-op, so a boundary layer that is slightly late to stop
// driving the run cannot corrupt it.
func (r *Run) Advance(dt float64) {
	if dt < 0 {
		return
	}
	r.ctrl.advance(dt)
}

// OnTap delivers a tap in the given lane. Lanes outside [0, lanes) are
// ignored; after a terminal outcome the call is a no-op.
func (r *Run) OnTap(lane int) {
	if lane < 0 || lane >= r.cfg.Lanes {
		return
	}
	r.ctrl.onTap(lane)
}

// Snapshot returns the current read model.
func (r *Run) Snapshot() Snapshot {
	return r.ctrl.snapshot()
}

// Seed returns the seed the current controller was built with.
func (r *Run) Seed() int64 {
	return r.seed
}

// Mode returns the run's mode, fixed at construction.
func (r *Run) Mode() config.Mode {
	return r.cfg.Mode
}

// Lanes returns the configured lane count.
func (r *Run) Lanes() int {
	return r.cfg.Lanes
}
