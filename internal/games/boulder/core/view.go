package core

// View is a camera window onto the board.
type View struct {
	Origin Pos // top-left board cell
	Width  int
	Height int
}

// Viewport centers a width×height window on the hero, or on its last known
// position when the hero is gone, and clamps it to the board. Windows larger
// than the board are shrunk to fit.
func (s *Sim) Viewport(width, height int) View {
	width = min(max(width, 0), Cols)
	height = min(max(height, 0), Rows)

	center, ok := s.Board.Find(Hero)
	if !ok {
		center = s.LastPos
	}
	return View{
		Origin: P(
			clamp(center.Row-height/2, 0, Rows-height),
			clamp(center.Col-width/2, 0, Cols-width),
		),
		Width:  width,
		Height: height,
	}
}

// Contains reports whether board position p is inside the window.
func (v View) Contains(p Pos) bool {
	return p.Row >= v.Origin.Row && p.Row < v.Origin.Row+v.Height &&
		p.Col >= v.Origin.Col && p.Col < v.Origin.Col+v.Width
}

// Glyphs returns the window contents, one string per row.
func (s *Sim) Glyphs(v View) []string {
	return s.Board.Window(v.Origin, v.Width, v.Height)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
