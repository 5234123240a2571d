package boulder

import (
	"fmt"

	platformcore "github.com/boulder-tui/boulder/internal/core"
	"github.com/boulder-tui/boulder/internal/games/boulder/core"
)

const (
	hudRows  = 2 // status line and separator
	minViewW = 10
	minViewH = 5

	BorderHoriz = '─'
)

var tileColors = map[core.Tile]platformcore.Color{
	core.Wall:    platformcore.ColorOrange,
	core.Ground:  platformcore.ColorYellow,
	core.Metal:   platformcore.ColorWhite,
	core.Rock:    platformcore.ColorGray,
	core.Diamond: platformcore.ColorBrightCyan,
	core.Box:     platformcore.ColorMagenta,
	core.Door:    platformcore.ColorBrightGreen,
	core.Fly:     platformcore.ColorBrightRed,
	core.Crash:   platformcore.ColorRed,
}

// Render draws the HUD, the viewport and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.fatal != nil {
		g.drawCenteredBox(dst, "No playable level", g.fatal.Error())
		return
	}

	view, ok := g.view(dst)
	if !ok {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minViewW, minViewH+hudRows)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst, view)
	g.renderOverlay(dst)
}

// view sizes the camera window for dst. It fails when dst cannot hold the
// minimum window below the HUD.
func (g *Game) view(dst *platformcore.Screen) (core.View, bool) {
	w := platformcore.Min(g.cfg.View.Width, dst.Width())
	h := platformcore.Min(g.cfg.View.Height, dst.Height()-hudRows)
	if w < minViewW || h < minViewH {
		return core.View{}, false
	}
	return g.sim.Viewport(w, h), true
}

// renderHUD draws the status line, level name and score.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	dst.DrawTextWithColor(1, 0, g.sim.StatusLine(), platformcore.ColorBrightWhite)

	if lvl, err := g.catalog.Level(g.sim.Level); err == nil && lvl.Name != "" {
		dst.DrawTextCentered(0, lvl.Name)
	}

	scoreText := fmt.Sprintf("Score: %d", g.sim.Score)
	dst.DrawText(dst.Width()-len(scoreText)-1, 0, scoreText)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderBoard draws the viewport centered below the HUD.
func (g *Game) renderBoard(dst *platformcore.Screen, v core.View) {
	area := platformcore.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	frame := area.Centered(v.Width, v.Height)

	for row, line := range g.sim.Glyphs(v) {
		col := 0
		for _, r := range line {
			kind, _ := core.ParseTile(r)
			dst.SetWithColor(frame.X+col, frame.Y+row, r, g.tileColor(kind))
			col++
		}
	}
}

func (g *Game) tileColor(kind core.Tile) platformcore.Color {
	if kind != core.Hero {
		return tileColors[kind]
	}
	switch {
	case g.sim.Mode == core.MoveGhost:
		return platformcore.ColorBrightBlue
	case g.sim.Hero == core.FacingIdle2:
		return platformcore.ColorYellow
	default:
		return platformcore.ColorBrightYellow
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *platformcore.Screen) {
	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press ESC to resume")
		return
	}

	switch g.sim.Phase() {
	case core.LevelComplete:
		title := fmt.Sprintf("* Level %02d *", g.nextLevelNumber())
		g.drawCenteredBox(dst, title, fmt.Sprintf("Score: %d", g.sim.Score))

	case core.GameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press SPACE to start over", g.sim.Score)
		g.drawCenteredBox(dst, "* Game Over *", subtitle)

	case core.Dead:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to retry the level")
	}
}

// nextLevelNumber is the 1-based number of the level that follows the
// current one, wrapping to 1 after the last level.
func (g *Game) nextLevelNumber() int {
	next := g.sim.Level + 1
	if next >= g.catalog.Len() {
		next = 0
	}
	return next + 1
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *platformcore.Screen, title, subtitle string) {
	boxW := platformcore.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
