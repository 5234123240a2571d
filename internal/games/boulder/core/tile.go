// Package core implements the Boulder Dash board simulation: the board store,
// level decoding, falling objects, creatures, hero actions and the level state
// machine. It has no terminal or platform dependencies.
package core

import "fmt"

// Tile is the kind of object occupying a board cell.
// The numeric order is stable and shared with level files.
type Tile uint8

const (
	Tunnel Tile = iota
	Wall
	Hero
	Rock
	Diamond
	Ground
	Metal
	Box
	Door
	Fly
	Crash
	tileCount
)

var tileGlyphs = [tileCount]rune{
	Tunnel:  ' ',
	Wall:    '=',
	Hero:    'R',
	Rock:    'o',
	Diamond: '*',
	Ground:  '~',
	Metal:   '#',
	Box:     '@',
	Door:    '>',
	Fly:     '%',
	Crash:   '^',
}

var tileNames = [tileCount]string{
	"tunnel", "wall", "hero", "rock", "diamond", "ground",
	"metal", "box", "door", "fly", "crash",
}

// Glyph returns the character used to draw the tile.
func (t Tile) Glyph() rune {
	if t < tileCount {
		return tileGlyphs[t]
	}
	return '?'
}

func (t Tile) String() string {
	if t < tileCount {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// ParseTile maps a level glyph back to its tile.
func ParseTile(r rune) (Tile, bool) {
	for t, g := range tileGlyphs {
		if g == r {
			return Tile(t), true
		}
	}
	return Tunnel, false
}

// falls reports whether the tile is moved by the physics step.
func (t Tile) falls() bool {
	return t == Rock || t == Diamond
}

// wanders reports whether the tile is moved by the creature step.
func (t Tile) wanders() bool {
	return t == Box || t == Fly
}

// supports reports whether a falling object resting on t may slide sideways.
func (t Tile) supports() bool {
	switch t {
	case Rock, Diamond, Wall, Door, Metal:
		return true
	}
	return false
}

// Direction is a creature heading. Values wrap modulo 4.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Turn rotates the direction by delta quarter turns clockwise.
// Negative deltas turn counterclockwise.
func (d Direction) Turn(delta int) Direction {
	return Direction(((int(d)+delta)%4 + 4) % 4)
}

// Delta returns the row and column offsets of one step in this direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d.Turn(0) {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d.Turn(0) {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}

// Pos is a board position. Row grows downward, Col grows to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// Add returns the position offset by (dRow, dCol).
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns the neighbouring position in direction d.
func (p Pos) Step(d Direction) Pos {
	return p.Add(d.Delta())
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
