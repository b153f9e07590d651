package racer

import (
	"github.com/vovakirdan/lane-racer/internal/core"
)

// Visual characters for terminal rendering
const (
	CarChar     = '█'
	BarrierChar = '▓'
	LaneChar    = '┊'
	EdgeChar    = '▐'
)

// dashRows is the number of lane-marking dashes per screen height.
const dashRows = 9

// Render draws the current game state into a terminal cell grid. The
// logical field is scaled to fill dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(g.Snapshot(), g.cfg.Obstacles.LaneCount, dst)
}

// RenderSnapshot draws a snapshot into dst.
func RenderSnapshot(s Snapshot, lanes int, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	drawTrack(dst, s, lanes)

	for _, r := range s.Obstacles {
		dst.DrawRect(scale(r, s, dst), BarrierChar, core.ColorOrange)
	}

	if s.Session != Waiting {
		dst.DrawRect(scale(s.Player, s, dst), CarChar, core.ColorBrightRed)
	}

	// HUD
	if s.Session == Playing {
		dst.DrawText(1, 0, " "+s.ScoreText()+" ", core.ColorBrightWhite)
	}

	if lines := s.Overlay(); len(lines) > 0 {
		drawCenteredMessage(dst, lines)
	}
}

// drawTrack draws the road edges and scrolling lane markings. A dash is
// lit at field row y when (y - offset) mod height falls in the first half
// of a dash period, which tiles the pattern seamlessly as the offset wraps.
func drawTrack(dst *core.Screen, s Snapshot, lanes int) {
	w, h := dst.Width(), dst.Height()

	dst.DrawVLine(0, 0, h, EdgeChar, core.ColorGray)
	dst.DrawVLine(w-1, 0, h, EdgeChar, core.ColorGray)

	if lanes < 2 || s.FieldH <= 0 {
		return
	}
	period := core.Max(s.FieldH/dashRows, 2)
	for lane := 1; lane < lanes; lane++ {
		x := lane * w / lanes
		for y := 0; y < h; y++ {
			fy := y * s.FieldH / h
			pos := ((fy-s.TrackOffset)%s.FieldH + s.FieldH) % s.FieldH
			if pos%period < period/2 {
				dst.SetColored(x, y, LaneChar, core.ColorWhite)
			}
		}
	}
}

func scale(r core.Rect, s Snapshot, dst *core.Screen) core.Rect {
	return r.Scale(s.FieldW, s.FieldH, dst.Width(), dst.Height())
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string) {
	w := dst.Width()
	h := dst.Height()

	longest := 0
	for _, l := range lines {
		longest = core.Max(longest, len([]rune(l)))
	}

	// Calculate box dimensions
	boxW := core.Min(longest+4, w)
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)

	// Draw text
	for i, l := range lines {
		dst.DrawTextCentered(boxY+1+i*2, l, core.ColorBrightWhite)
	}
}
