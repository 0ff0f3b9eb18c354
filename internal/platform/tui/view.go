package tui

import (
	"fmt"

	"github.com/tilerush/tilerush/internal/catalog"
	"github.com/tilerush/tilerush/internal/config"
	"github.com/tilerush/tilerush/internal/core"
	"github.com/tilerush/tilerush/internal/sim"
)

// HUD occupies the top rows; the playfield gets the rest.
const hudRows = 2

// timerBarSeconds is the span of the HUD session bar.
const timerBarSeconds = 60

// BoardView projects run snapshots onto a screen buffer. It owns no run
// state; everything it draws comes from the snapshot passed to Draw.
type BoardView struct {
	cfg  config.GameConfig
	geom sim.Geometry
	cat  *catalog.Catalog
}

// NewBoardView creates a view for the given game configuration.
func NewBoardView(cfg config.GameConfig, geom sim.Geometry, cat *catalog.Catalog) *BoardView {
	return &BoardView{cfg: cfg, geom: geom, cat: cat}
}

// Draw renders the snapshot to the screen buffer.
func (v *BoardView) Draw(dst *core.Screen, snap sim.Snapshot, paused bool) {
	dst.Clear()

	v.drawLanes(dst)
	v.drawHitLine(dst)
	for _, t := range snap.Tiles {
		v.drawTile(dst, t)
	}
	v.drawHUD(dst, snap)

	if paused && !snap.Outcome.Terminal() {
		v.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Outcome.Terminal() {
		v.drawOutcome(dst, snap)
	}
}

// laneWidth returns the screen width of one lane column.
func (v *BoardView) laneWidth(dst *core.Screen) int {
	return dst.Width() / v.cfg.Lanes
}

// fieldToRow converts a field position to a screen row inside the playfield.
func (v *BoardView) fieldToRow(dst *core.Screen, y float64) int {
	playH := dst.Height() - hudRows
	return hudRows + int(y/v.geom.FieldHeight*float64(playH))
}

func (v *BoardView) drawLanes(dst *core.Screen) {
	laneW := v.laneWidth(dst)
	for lane := 1; lane < v.cfg.Lanes; lane++ {
		dst.DrawVLine(lane*laneW, hudRows, dst.Height()-hudRows, '│', core.ColorGray)
	}

	// Lane key hints on the bottom row
	for lane, key := range v.cfg.Controls.Keys {
		x := lane*laneW + laneW/2
		dst.DrawTextColored(x, dst.Height()-1, key, core.ColorGray)
	}
}

func (v *BoardView) drawHitLine(dst *core.Screen) {
	row := v.fieldToRow(dst, v.geom.HitLine)
	dst.DrawHLine(0, row, dst.Width(), '═', core.ColorBrightWhite)
}

// drawTile renders one tile sprite centered in its lane. Endless tiles
// sit at their field position; classic rows always sit on the hit line.
func (v *BoardView) drawTile(dst *core.Screen, t sim.TileView) {
	row := v.fieldToRow(dst, v.geom.HitLine)
	if v.cfg.Mode == config.ModeEndless {
		row = v.fieldToRow(dst, t.Y)
	}

	laneW := v.laneWidth(dst)
	cx := t.Lane*laneW + laneW/2

	if t.Sprite == nil || len(t.Sprite.Art) == 0 {
		dst.SetColored(cx, row, '■', core.ColorWhite)
		return
	}

	top := row - t.Sprite.Height()/2
	for i, line := range t.Sprite.Art {
		y := top + i
		if y < hudRows || y >= dst.Height()-1 {
			continue
		}
		runes := []rune(line)
		dst.DrawTextColored(cx-len(runes)/2, y, line, t.Sprite.Color)
	}
}

func (v *BoardView) drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	// Target reminder in the top-right corner, in the target's color
	label := fmt.Sprintf(" Tap: %s ", v.cfg.TargetType)
	color := core.ColorDefault
	if thumb := v.cat.Thumbnail(v.cfg.TargetType); thumb != nil {
		color = thumb.Color
	}
	dst.DrawTextColored(dst.Width()-len(label)-2, 0, label, color)

	switch snap.Mode {
	case config.ModeEndless:
		mid := fmt.Sprintf(" %.1fs | %.0f px/s ", snap.Elapsed, snap.Speed)
		dst.DrawTextCentered(0, mid)
		v.drawTimerBar(dst, snap.Elapsed)
	case config.ModeClassic:
		cur, total := snap.Progress()
		dst.DrawTextCentered(0, fmt.Sprintf(" Row %d/%d | %.1fs ", cur, total, snap.Elapsed))
	}
}

// drawTimerBar fills the second HUD row over a 60 second session span.
func (v *BoardView) drawTimerBar(dst *core.Screen, elapsed float64) {
	frac := elapsed / timerBarSeconds
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(dst.Width()))
	dst.DrawHLine(0, 1, filled, '█', core.ColorGreen)
	dst.DrawHLine(filled, 1, dst.Width()-filled, '░', core.ColorGray)
}

func (v *BoardView) drawOutcome(dst *core.Screen, snap sim.Snapshot) {
	switch snap.Outcome.Kind {
	case sim.OutcomeFinished:
		subtitle := fmt.Sprintf("Cleared in %.1fs  |  R: again  Esc: menu", snap.Elapsed)
		v.drawCenteredMessage(dst, "FINISHED", subtitle)
	case sim.OutcomeGameOver:
		title := "GAME OVER"
		var subtitle string
		switch snap.Outcome.Reason {
		case sim.ReasonWrongTap:
			subtitle = fmt.Sprintf("Tapped %s  |  Score: %d  |  R: restart", snap.Outcome.TileType, snap.Score)
		case sim.ReasonMissedTarget:
			subtitle = fmt.Sprintf("Missed a %s  |  Score: %d  |  R: restart", snap.Outcome.TileType, snap.Score)
		default:
			subtitle = fmt.Sprintf("Score: %d  |  R: restart", snap.Score)
		}
		v.drawCenteredMessage(dst, title, subtitle)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (v *BoardView) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
