package core_test

import (
	"strings"
	"testing"

	"github.com/boulder-tui/boulder/internal/games/boulder/core"
)

func TestTileGlyphs(t *testing.T) {
	glyphs := " =Ro*~#@>%^"
	for i, g := range glyphs {
		tile := core.Tile(i)
		if tile.Glyph() != g {
			t.Errorf("%v.Glyph() = %q, expected %q", tile, tile.Glyph(), g)
		}
		parsed, ok := core.ParseTile(g)
		if !ok || parsed != tile {
			t.Errorf("ParseTile(%q) = %v, %v", g, parsed, ok)
		}
	}

	if _, ok := core.ParseTile('x'); ok {
		t.Error("ParseTile should reject unknown glyphs")
	}
}

func TestSetKeepsStateFields(t *testing.T) {
	var b core.Board
	b.Set(3, 4, core.Fly)
	b.SetRockFalling(3, 4, true)
	b.SetMoverActive(3, 4, true)
	b.SetMoverDir(3, 4, core.West)

	b.Set(3, 4, core.Tunnel)

	cell := b.Get(3, 4)
	if cell.Kind != core.Tunnel {
		t.Errorf("Kind = %v, expected tunnel", cell.Kind)
	}
	if !cell.RockFalling || !cell.MoverActive || cell.MoverDir != core.West {
		t.Errorf("state fields changed by Set: %+v", cell)
	}

	b.SetRockFalling(3, 4, false)
	if b.MoverActive(3, 4) != true || b.MoverDir(3, 4) != core.West {
		t.Error("state fields should be independent")
	}
}

func TestFindScansInteriorInReadingOrder(t *testing.T) {
	var b core.Board
	b.Set(0, 5, core.Diamond) // border row is never searched
	b.Set(3, 1, core.Diamond)
	b.Set(2, 10, core.Diamond)

	p, ok := b.Find(core.Diamond)
	if !ok || p != core.P(2, 10) {
		t.Errorf("Find = %v, %v; expected (2,10)", p, ok)
	}
	if b.Count(core.Diamond) != 3 {
		t.Errorf("Count = %d, expected 3", b.Count(core.Diamond))
	}
	if _, ok := b.Find(core.Hero); ok {
		t.Error("Find should report a missing tile")
	}
}

func TestDirectionTurn(t *testing.T) {
	tests := []struct {
		from  core.Direction
		delta int
		want  core.Direction
	}{
		{core.North, -1, core.West},
		{core.West, 1, core.North},
		{core.East, 2, core.West},
		{core.South, -5, core.East},
		{core.North, 4, core.North},
	}
	for _, tc := range tests {
		if got := tc.from.Turn(tc.delta); got != tc.want {
			t.Errorf("%v.Turn(%d) = %v, expected %v", tc.from, tc.delta, got, tc.want)
		}
	}
}

func TestBoardWindowAndString(t *testing.T) {
	var b core.Board
	b.Fill(core.Wall)
	b.Set(1, 1, core.Hero)
	b.Set(1, 2, core.Diamond)

	win := b.Window(core.P(0, 0), 4, 3)
	expected := []string{"====", "=R*=", "===="}
	if strings.Join(win, "|") != strings.Join(expected, "|") {
		t.Errorf("Window = %q, expected %q", win, expected)
	}

	lines := strings.Split(b.String(), "\n")
	if len(lines) != core.Rows || len([]rune(lines[0])) != core.Cols {
		t.Errorf("String() has %d lines of %d glyphs", len(lines), len([]rune(lines[0])))
	}
}

func TestBoardCloneEqual(t *testing.T) {
	s := simWith(t, newGrid(core.Wall).put(2, 2, core.Hero))
	clone := s.Board.Clone()
	if !clone.Equal(&s.Board) {
		t.Fatal("clone should equal the original")
	}
	clone.Set(2, 3, core.Rock)
	if clone.Equal(&s.Board) {
		t.Error("clone should not share cells with the original")
	}
}
