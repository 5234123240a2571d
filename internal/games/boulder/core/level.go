package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a level index is outside the catalog.
	ErrOutOfRange = errors.New("level index out of range")

	// ErrNoPlayableLevel is returned when neither the requested level nor
	// level 0 can be started.
	ErrNoPlayableLevel = errors.New("no playable level")
)

// Level is a static level definition: Rows strings of Cols glyphs each,
// plus the diamond goal and time budget.
type Level struct {
	ID       string
	Name     string
	Diamonds int
	Time     int
	Rows     []string
}

// Decode copies the level grid into b, one glyph per cell. All state
// fields are reset. On error b is left unchanged.
func (l Level) Decode(b *Board) error {
	if len(l.Rows) != Rows {
		return fmt.Errorf("level %q: %d rows, expected %d", l.ID, len(l.Rows), Rows)
	}
	var next Board
	for row, line := range l.Rows {
		glyphs := []rune(line)
		if len(glyphs) != Cols {
			return fmt.Errorf("level %q: row %d has %d columns, expected %d", l.ID, row, len(glyphs), Cols)
		}
		for col, g := range glyphs {
			kind, ok := ParseTile(g)
			if !ok {
				return fmt.Errorf("level %q: unknown glyph %q at %v", l.ID, g, P(row, col))
			}
			next.cells[row][col] = Cell{Kind: kind}
		}
	}
	*b = next
	return nil
}

// LevelSource is a read-only catalog of levels indexed 0..Len()-1.
type LevelSource interface {
	Len() int
	Level(index int) (Level, error)
}

// LevelList is an in-memory LevelSource.
type LevelList []Level

func (l LevelList) Len() int {
	return len(l)
}

func (l LevelList) Level(index int) (Level, error) {
	if index < 0 || index >= len(l) {
		return Level{}, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return l[index], nil
}
