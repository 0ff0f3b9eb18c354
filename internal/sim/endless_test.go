package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tilerush/tilerush/internal/config"
)

// With the default geometry the first row spawns centered at -80 and the
// hit line sits at 640, so at a fixed 400 px/s the first target reaches
// the line after 1.8 s and rows follow every 0.4 s.
const (
	timeToFirstRow = 1.8
	timePerRow     = 0.4
)

func TestEndlessThreeHits(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 1)

	r.Advance(timeToFirstRow)
	for i := 0; i < 3; i++ {
		if i > 0 {
			r.Advance(timePerRow)
		}
		r.OnTap(targetLaneNearLine(t, r))
	}

	snap := r.Snapshot()
	if snap.Score != 3 {
		t.Errorf("score = %d, expected 3", snap.Score)
	}
	if snap.Outcome.Terminal() {
		t.Errorf("run should still be going, got %v", snap.Outcome)
	}
}

func TestEndlessWrongTap(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 2)

	r.Advance(timeToFirstRow)
	r.OnTap(otherLaneNearLine(t, r))

	snap := r.Snapshot()
	if snap.Outcome.Kind != OutcomeGameOver || snap.Outcome.Reason != ReasonWrongTap {
		t.Fatalf("outcome = %v, expected wrong-tap game over", snap.Outcome)
	}
	if snap.Outcome.TileType != "b" {
		t.Errorf("outcome tile type %q, expected b", snap.Outcome.TileType)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, wrong tap must not score", snap.Score)
	}
}

func TestEndlessMissedTarget(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 3)

	// Let the first target scroll past the line by more than the
	// 48 px window (120 ms at 400 px/s) without tapping.
	r.Advance(timeToFirstRow + 0.2)

	snap := r.Snapshot()
	if snap.Outcome.Kind != OutcomeGameOver || snap.Outcome.Reason != ReasonMissedTarget {
		t.Fatalf("outcome = %v, expected missed-target game over", snap.Outcome)
	}
	if snap.Outcome.TileType != "a" {
		t.Errorf("outcome tile type %q, expected the target type", snap.Outcome.TileType)
	}
}

func TestEndlessNoTileTapIgnored(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 4)

	// Nothing is near the line yet: taps must change nothing.
	r.Advance(0.5)
	for lane := 0; lane < 4; lane++ {
		r.OnTap(lane)
	}

	snap := r.Snapshot()
	if snap.Score != 0 || snap.Outcome.Terminal() {
		t.Errorf("taps with no tile in window must have no effect, got score=%d outcome=%v", snap.Score, snap.Outcome)
	}
}

func TestEndlessNonTargetCrossingIsDiscarded(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 5)

	// Keep hitting targets; the non-target tiles of each cleared row
	// cross the line and scroll out without ending the run.
	r.Advance(timeToFirstRow)
	for i := 0; i < 5; i++ {
		if i > 0 {
			r.Advance(timePerRow)
		}
		r.OnTap(targetLaneNearLine(t, r))
	}

	snap := r.Snapshot()
	if snap.Outcome.Terminal() {
		t.Fatalf("non-target crossings must never end the run: %v", snap.Outcome)
	}
	if snap.Score != 5 {
		t.Errorf("score = %d, expected 5", snap.Score)
	}
}

func TestEndlessSpeedMonotonicAndCapped(t *testing.T) {
	cfg := endlessConfig()
	cfg.Speed.AccelPxPerMin = 600 // 10 px/s^2
	cfg.Speed.MaxPxPerSec = 460

	r := newTestRun(t, cfg, 6)
	e := r.ctrl.(*endlessRun)

	rng := rand.New(rand.NewSource(99))
	prev := e.speed
	for i := 0; i < 400; i++ {
		e.elapsed = 0 // keep the run from ending on a missed target
		e.tiles = nil
		r.Advance(rng.Float64() * 0.05)

		if e.speed < prev {
			t.Fatalf("speed decreased: %f after %f", e.speed, prev)
		}
		if e.speed > cfg.Speed.MaxPxPerSec {
			t.Fatalf("speed %f exceeds cap %f", e.speed, cfg.Speed.MaxPxPerSec)
		}
		prev = e.speed
	}

	// 400 steps of up to 50 ms at 10 px/s^2 average ~5 s of ramp; force
	// the cap explicitly to check the clamp.
	e.tiles = nil
	r.Advance(60)
	if e.speed != cfg.Speed.MaxPxPerSec {
		t.Errorf("speed = %f, expected cap %f after a long ramp", e.speed, cfg.Speed.MaxPxPerSec)
	}
}

func TestEndlessLinearRamp(t *testing.T) {
	cfg := endlessConfig()
	cfg.Speed.AccelPxPerMin = 600 // 10 px/s^2
	cfg.Speed.MaxPxPerSec = 10000

	r := newTestRun(t, cfg, 11)
	e := r.ctrl.(*endlessRun)
	e.tiles = nil // positions are irrelevant here

	r.Advance(2.0)
	want := 400 + 10*2.0
	if math.Abs(e.speed-want) > 1e-9 {
		t.Errorf("speed after 2s = %f, expected linear ramp to %f", e.speed, want)
	}
}

// The spatial tolerance must track the current speed so the timing
// window in seconds stays constant across the ramp.
func TestEndlessToleranceScalesWithSpeed(t *testing.T) {
	cfg := endlessConfig()
	cfg.Speed.AccelPxPerMin = 6000 // 100 px/s^2
	cfg.Speed.MaxPxPerSec = 800

	r := newTestRun(t, cfg, 7)
	e := r.ctrl.(*endlessRun)

	wantSeconds := float64(cfg.HitWindow.Good) / 1000

	check := func(label string) {
		t.Helper()
		got := e.toleranceDistance() / e.speed
		if math.Abs(got-wantSeconds) > 1e-9 {
			t.Errorf("%s: effective window %f s, expected %f s", label, got, wantSeconds)
		}
	}

	check("at start speed")

	e.tiles = nil
	r.Advance(2.0) // ramp to 600 px/s
	check("mid ramp")

	r.Advance(10.0) // capped at 800 px/s
	check("at cap")
}

func TestEndlessSpawnSpacing(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 8)
	e := r.ctrl.(*endlessRun)

	// Step the run for a while, clearing targets before they can be
	// missed so rows keep spawning.
	for i := 0; i < 30; i++ {
		for _, tile := range e.tiles {
			if tile.Type == "a" && tile.Y > e.geom.HitLine-100 {
				tile.State = TileHit
			}
		}
		r.Advance(0.1)
	}

	seeded := RowsVisible + 1
	if e.gen.Rows() <= seeded {
		t.Fatalf("no rows spawned past the seeded %d", seeded)
	}

	// Rows must sit exactly one tile height apart.
	rowY := map[int]float64{}
	for _, tile := range e.tiles {
		rowY[tile.Row] = tile.Y
	}
	tileH := e.geom.TileHeight
	for row, y := range rowY {
		next, ok := rowY[row+1]
		if !ok {
			continue
		}
		if math.Abs((y-next)-tileH) > 1e-6 {
			t.Errorf("rows %d and %d are %f apart, expected %f", row, row+1, y-next, tileH)
		}
	}
}

func TestEndlessTerminalIsIdempotent(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 9)

	r.Advance(timeToFirstRow)
	r.OnTap(otherLaneNearLine(t, r)) // wrong tap ends the run
	before := r.Snapshot()
	if !before.Outcome.Terminal() {
		t.Fatal("setup: run should be over")
	}

	for i := 0; i < 10; i++ {
		r.Advance(0.5)
		r.OnTap(i % 4)
	}

	after := r.Snapshot()
	if after.Score != before.Score {
		t.Errorf("score changed after terminal outcome: %d -> %d", before.Score, after.Score)
	}
	if after.Elapsed != before.Elapsed {
		t.Errorf("elapsed changed after terminal outcome: %f -> %f", before.Elapsed, after.Elapsed)
	}
	if after.Outcome != before.Outcome {
		t.Errorf("outcome changed after terminal outcome: %v -> %v", before.Outcome, after.Outcome)
	}
}

func TestEndlessElapsedTime(t *testing.T) {
	r := newTestRun(t, endlessConfig(), 10)

	r.Advance(0.5)
	r.Advance(0.25)

	snap := r.Snapshot()
	if math.Abs(snap.Elapsed-0.75) > 1e-9 {
		t.Errorf("elapsed = %f, expected 0.75", snap.Elapsed)
	}
	if snap.Mode != config.ModeEndless {
		t.Errorf("mode = %q, expected endless", snap.Mode)
	}
}
