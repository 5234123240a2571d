package core

import "strings"

// Board dimensions shared by every level.
const (
	Rows = 22
	Cols = 60
)

// Cell is one board position. The three state fields are independent of
// Kind and only carry meaning for objects that fall or wander; changing the
// kind leaves them untouched.
type Cell struct {
	Kind        Tile
	RockFalling bool      // moved by the physics step on its last pass
	MoverActive bool      // moved by the creature step during the current pass
	MoverDir    Direction // heading of the last creature move
}

// Board is the fixed-size grid. Accessors do not check bounds beyond Go's
// own array indexing: levels must keep a solid outer ring so nothing ever
// steps off the grid.
type Board struct {
	cells [Rows][Cols]Cell
}

// Get returns the cell at (row, col).
func (b *Board) Get(row, col int) Cell {
	return b.cells[row][col]
}

// Kind returns the tile at (row, col).
func (b *Board) Kind(row, col int) Tile {
	return b.cells[row][col].Kind
}

// KindAt is Kind for a Pos.
func (b *Board) KindAt(p Pos) Tile {
	return b.cells[p.Row][p.Col].Kind
}

// Set changes the tile at (row, col) and nothing else.
func (b *Board) Set(row, col int, kind Tile) {
	b.cells[row][col].Kind = kind
}

// SetAt is Set for a Pos.
func (b *Board) SetAt(p Pos, kind Tile) {
	b.cells[p.Row][p.Col].Kind = kind
}

func (b *Board) RockFalling(row, col int) bool {
	return b.cells[row][col].RockFalling
}

func (b *Board) SetRockFalling(row, col int, v bool) {
	b.cells[row][col].RockFalling = v
}

func (b *Board) MoverActive(row, col int) bool {
	return b.cells[row][col].MoverActive
}

func (b *Board) SetMoverActive(row, col int, v bool) {
	b.cells[row][col].MoverActive = v
}

func (b *Board) MoverDir(row, col int) Direction {
	return b.cells[row][col].MoverDir
}

func (b *Board) SetMoverDir(row, col int, d Direction) {
	b.cells[row][col].MoverDir = d.Turn(0)
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Find returns the first interior cell holding kind, scanning rows top to
// bottom and columns left to right.
func (b *Board) Find(kind Tile) (Pos, bool) {
	for row := 1; row < Rows-1; row++ {
		for col := 1; col < Cols-1; col++ {
			if b.cells[row][col].Kind == kind {
				return P(row, col), true
			}
		}
	}
	return Pos{}, false
}

// Has reports whether kind occurs anywhere in the interior.
func (b *Board) Has(kind Tile) bool {
	_, ok := b.Find(kind)
	return ok
}

// Count returns how many cells on the whole board hold kind.
func (b *Board) Count(kind Tile) int {
	n := 0
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col].Kind == kind {
				n++
			}
		}
	}
	return n
}

// Fill sets every cell to kind and clears all state fields.
func (b *Board) Fill(kind Tile) {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col] = Cell{Kind: kind}
		}
	}
}

// Clone returns a copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal reports whether both boards hold identical cells.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// Window returns the glyph rows of the rectangle starting at origin.
func (b *Board) Window(origin Pos, width, height int) []string {
	lines := make([]string, 0, height)
	for row := origin.Row; row < origin.Row+height && row < Rows; row++ {
		var sb strings.Builder
		for col := origin.Col; col < origin.Col+width && col < Cols; col++ {
			sb.WriteRune(b.cells[row][col].Kind.Glyph())
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String dumps the whole board as glyphs, one line per row.
func (b *Board) String() string {
	return strings.Join(b.Window(Pos{}, Cols, Rows), "\n")
}
