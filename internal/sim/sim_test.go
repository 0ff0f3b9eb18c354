package sim

import (
	"math/rand"
	"testing"

	"github.com/tilerush/tilerush/internal/catalog"
	"github.com/tilerush/tilerush/internal/config"
)

// fakeCatalog hands out one static sprite per type so tests never depend
// on sprite pack contents.
type fakeCatalog struct{}

var stubSprite = &catalog.Sprite{Art: []string{"##"}}

func (fakeCatalog) RandomSprite(string) *catalog.Sprite { return stubSprite }
func (fakeCatalog) HasType(string) bool                 { return true }

/// endlessConfig matches the fixed-speed scenario setup: four lanes,
// target "a" against "b", 400 px/s with no ramp, 120 ms window.
func endlessConfig() config.GameConfig {
	return config.GameConfig{
		Lanes:      4,
		Mode:       config.ModeEndless,
		TargetType: "a",
		OtherTypes: []string{"b"},
		Speed: config.SpeedConfig{
			StartPxPerSec: 400,
			AccelPxPerMin: 0,
			MaxPxPerSec:   400,
		},
		HitWindow: config.HitWindowConfig{Good: 120},
		Controls:  config.ControlsConfig{Keys: []string{"d", "f", "j", "k"}},
	}
}

func classicConfig(rowsTotal, animMS int) config.GameConfig {
	cfg := endlessConfig()
	cfg.Mode = config.ModeClassic
	cfg.Classic = config.ClassicConfig{
		RowsTotal:          rowsTotal,
		AdvanceAnimationMS: animMS,
	}
	return cfg
}

func newTestRun(t *testing.T, cfg config.GameConfig, seed int64) *Run {
	t.Helper()
	return NewRun(cfg, DefaultGeometry(), fakeCatalog{}, seed)
}

func newTestGenerator(cfg config.GameConfig, seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return NewGenerator(cfg.TargetType, cfg.OtherTypes, cfg.Lanes, fakeCatalog{}, rng)
}

// nearestTarget returns the active target tile closest to the hit line.
// For classic snapshots the visible row is the current one, so any target
// tile in the snapshot qualifies.
func nearestTarget(t *testing.T, snap Snapshot) TileView {
	t.Helper()

	hitLine := DefaultGeometry().HitLine
	if snap.Mode == config.ModeClassic {
		hitLine = 0 // row positions are row indices; distance ranking still works
	}

	found := false
	var best TileView
	bestDist := 0.0
	for _, tile := range snap.Tiles {
		if tile.Type != "a" {
			continue
		}
		dist := tile.Y - hitLine
		if dist < 0 {
			dist = -dist
		}
		if !found || dist < bestDist {
			found = true
			best = tile
			bestDist = dist
		}
	}
	if !found {
		t.Fatal("no active target tile in snapshot")
	}
	return best
}

// targetLaneNearLine returns the lane to tap for a hit.
func targetLaneNearLine(t *testing.T, r *Run) int {
	t.Helper()
	return nearestTarget(t, r.Snapshot()).Lane
}

// otherLaneNearLine returns a lane holding a non-target tile in the same
// row as the nearest target tile.
func otherLaneNearLine(t *testing.T, r *Run) int {
	t.Helper()
	snap := r.Snapshot()
	target := nearestTarget(t, snap)

	for _, tile := range snap.Tiles {
		if tile.Row == target.Row && tile.Type != "a" {
			return tile.Lane
		}
	}
	t.Fatal("no non-target tile beside the target")
	return -1
}
