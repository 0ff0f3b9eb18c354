package sim

import "testing"

func tile(lane int, typeName string, y float64, seq int) *Tile {
	return &Tile{Lane: lane, Type: typeName, Y: y, Seq: seq, State: TileActive}
}

func TestResolveTapNearestInWindow(t *testing.T) {
	tiles := []*Tile{
		tile(0, "a", 600, 1),
		tile(0, "a", 640, 2), // exactly on the line
		tile(0, "a", 700, 3),
	}

	res := ResolveTap(0, tiles, 640, 48, "a")
	if res.Kind != TapHit {
		t.Fatalf("Kind = %v, expected hit", res.Kind)
	}
	if res.Tile.Seq != 2 {
		t.Errorf("resolved tile seq %d, expected the tile on the line", res.Tile.Seq)
	}
	if res.Tile.State != TileHit {
		t.Error("hit tile should transition to TileHit inside the resolver")
	}
}

func TestResolveTapNoTileInWindow(t *testing.T) {
	tiles := []*Tile{
		tile(0, "a", 400, 1), // 240 above the line
		tile(1, "a", 640, 2), // wrong lane
	}

	res := ResolveTap(0, tiles, 640, 48, "a")
	if res.Kind != TapNoTile || res.Tile != nil {
		t.Errorf("expected no tile in window, got %v", res.Kind)
	}
	if tiles[0].State != TileActive || tiles[1].State != TileActive {
		t.Error("unresolved tiles must stay active")
	}
}

func TestResolveTapWrongTypeInWindow(t *testing.T) {
	tiles := []*Tile{
		tile(2, "b", 630, 1),
	}

	res := ResolveTap(2, tiles, 640, 48, "a")
	if res.Kind != TapWrongType {
		t.Fatalf("Kind = %v, expected wrong type", res.Kind)
	}
	if res.Tile.Type != "b" {
		t.Errorf("resolved type %q, expected b", res.Tile.Type)
	}
	if res.Tile.State != TileActive {
		t.Error("wrong-type tile is flagged by the controller, not mutated here")
	}
}

// A non-target tile outside the window never resolves as a wrong tap;
// out-of-window taps are ignored in both modes.
func TestResolveTapOutOfWindowWrongTypeIgnored(t *testing.T) {
	tiles := []*Tile{
		tile(0, "b", 500, 1), // 140 above the line, window is 48
	}

	res := ResolveTap(0, tiles, 640, 48, "a")
	if res.Kind != TapNoTile {
		t.Errorf("out-of-window non-target should be no-tile, got %v", res.Kind)
	}
}

func TestResolveTapTieBreakPrefersNotPast(t *testing.T) {
	approaching := tile(0, "a", 610, 5) // 30 before the line
	past := tile(0, "a", 670, 1)        // 30 past the line, spawned earlier

	res := ResolveTap(0, []*Tile{past, approaching}, 640, 48, "a")
	if res.Tile != approaching {
		t.Error("equidistant tie should prefer the tile not past the line")
	}
}

func TestResolveTapTieBreakPrefersEarlierSpawn(t *testing.T) {
	first := tile(0, "a", 610, 1)
	second := tile(0, "a", 610, 2)

	res := ResolveTap(0, []*Tile{second, first}, 640, 48, "a")
	if res.Tile != first {
		t.Error("full tie should prefer the earlier-spawned tile")
	}
}

func TestResolveTapSkipsNonActive(t *testing.T) {
	already := tile(0, "a", 640, 1)
	already.State = TileHit
	behind := tile(0, "a", 600, 2)

	res := ResolveTap(0, []*Tile{already, behind}, 640, 48, "a")
	if res.Kind != TapHit || res.Tile != behind {
		t.Error("resolver must skip tiles that are no longer active")
	}
}

func TestResolveTapEmptyLane(t *testing.T) {
	res := ResolveTap(3, nil, 640, 48, "a")
	if res.Kind != TapNoTile {
		t.Errorf("empty lane should be no-tile, got %v", res.Kind)
	}
}
