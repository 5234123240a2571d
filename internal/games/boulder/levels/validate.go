package levels

import (
	"fmt"

	"github.com/boulder-tui/boulder/internal/games/boulder/core"
)

// Validate checks a level against the board contract: Rows×Cols known
// glyphs, a Metal border, exactly one hero and positive budgets.
func Validate(l core.Level) error {
	if l.Diamonds <= 0 {
		return fmt.Errorf("levels: level %q: diamonds must be positive, got %d", l.ID, l.Diamonds)
	}
	if l.Time <= 0 {
		return fmt.Errorf("levels: level %q: time must be positive, got %d", l.ID, l.Time)
	}

	var b core.Board
	if err := l.Decode(&b); err != nil {
		return fmt.Errorf("levels: %w", err)
	}

	for row := 0; row < core.Rows; row++ {
		for col := 0; col < core.Cols; col++ {
			border := row == 0 || col == 0 || row == core.Rows-1 || col == core.Cols-1
			if border && b.Kind(row, col) != core.Metal {
				return fmt.Errorf("levels: level %q: border cell %v is %v, expected metal",
					l.ID, core.P(row, col), b.Kind(row, col))
			}
		}
	}

	if n := b.Count(core.Hero); n != 1 {
		return fmt.Errorf("levels: level %q: %d heroes, expected 1", l.ID, n)
	}
	return nil
}
