package core_test

import (
	"testing"

	"github.com/boulder-tui/boulder/internal/games/boulder/core"
)

func TestViewportClamping(t *testing.T) {
	tests := []struct {
		name string
		hero core.Pos
		want core.Pos
	}{
		{"centered", core.P(11, 30), core.P(1, 10)},
		{"top left", core.P(1, 1), core.P(0, 0)},
		{"bottom right", core.P(20, 58), core.P(1, 20)},
		{"top edge", core.P(3, 40), core.P(0, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := simWith(t, newGrid(core.Metal).put(tt.hero.Row, tt.hero.Col, core.Hero))
			v := s.Viewport(40, 21)
			if v.Origin != tt.want {
				t.Errorf("origin = %v, expected %v", v.Origin, tt.want)
			}
			if !v.Contains(tt.hero) {
				t.Errorf("view %+v does not contain hero at %v", v, tt.hero)
			}
		})
	}
}

func TestViewportFollowsLastPosition(t *testing.T) {
	s := simWith(t, newGrid(core.Metal).put(18, 50, core.Hero))
	s.KillHero()
	s.RemoveCrashes()

	v := s.Viewport(20, 10)
	if v.Origin != core.P(12, 40) {
		t.Errorf("origin = %v, expected the window around the last position", v.Origin)
	}
}

func TestViewportLargerThanBoard(t *testing.T) {
	s := simWith(t, newGrid(core.Metal).put(5, 5, core.Hero))

	v := s.Viewport(200, 80)
	if v.Origin != core.P(0, 0) || v.Width != core.Cols || v.Height != core.Rows {
		t.Errorf("view = %+v, expected the whole board", v)
	}
	glyphs := s.Glyphs(v)
	if len(glyphs) != core.Rows || len([]rune(glyphs[0])) != core.Cols {
		t.Fatalf("glyphs are %d rows", len(glyphs))
	}
	if got := []rune(glyphs[5])[5]; got != core.Hero.Glyph() {
		t.Errorf("glyph at hero = %q", got)
	}
}
