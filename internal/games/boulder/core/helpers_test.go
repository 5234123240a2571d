package core_test

import (
	"testing"

	"github.com/boulder-tui/boulder/internal/games/boulder/core"
)

// grid is a mutable level layout used to build test boards.
type grid [core.Rows][core.Cols]core.Tile

// newGrid returns a layout bordered by border with a tunnel interior.
func newGrid(border core.Tile) *grid {
	var g grid
	for r := 0; r < core.Rows; r++ {
		for c := 0; c < core.Cols; c++ {
			if r == 0 || c == 0 || r == core.Rows-1 || c == core.Cols-1 {
				g[r][c] = border
			}
		}
	}
	return &g
}

func (g *grid) put(row, col int, t core.Tile) *grid {
	g[row][col] = t
	return g
}

func (g *grid) level(id string, diamonds, time int) core.Level {
	rows := make([]string, core.Rows)
	for r := range g {
		line := make([]rune, core.Cols)
		for c, t := range g[r] {
			line[c] = t.Glyph()
		}
		rows[r] = string(line)
	}
	return core.Level{ID: id, Name: "test " + id, Diamonds: diamonds, Time: time, Rows: rows}
}

// newSim starts level 0 of the given levels with a fixed seed.
func newSim(t *testing.T, levels ...core.Level) *core.Sim {
	t.Helper()
	opts := core.DefaultOptions()
	opts.Seed = 1
	s := core.New(core.LevelList(levels), opts)
	if err := s.StartLevel(0); err != nil {
		t.Fatalf("StartLevel(0) failed: %v", err)
	}
	s.DrainEvents()
	return s
}

// simWith starts a single-level simulation built from g.
func simWith(t *testing.T, g *grid) *core.Sim {
	t.Helper()
	return newSim(t, g.level("01", 5, 100))
}

func expectKind(t *testing.T, s *core.Sim, row, col int, want core.Tile) {
	t.Helper()
	if got := s.Board.Kind(row, col); got != want {
		t.Errorf("cell (%d,%d) = %v, expected %v", row, col, got, want)
	}
}

func heroAt(t *testing.T, s *core.Sim) core.Pos {
	t.Helper()
	p, ok := s.Board.Find(core.Hero)
	if !ok {
		t.Fatal("hero not found on board")
	}
	return p
}

func eventKinds(events []core.Event) []core.EventKind {
	kinds := make([]core.EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	return kinds
}
