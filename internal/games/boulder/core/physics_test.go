package core_test

import (
	"math/rand"
	"testing"

	"github.com/boulder-tui/boulder/internal/games/boulder/core"
)

// fixedSide returns a side chooser that always picks side and counts calls.
func fixedSide(side int, calls *int) func() int {
	return func() int {
		*calls++
		return side
	}
}

func TestRemoveCrashesIdempotent(t *testing.T) {
	g := newGrid(core.Wall).put(2, 2, core.Hero).put(8, 8, core.Box)
	s := simWith(t, g)
	s.MakeCrash(core.Crash, 8, 8)
	s.MakeCrash(core.Crash, 1, 1)

	s.RemoveCrashes()
	after := s.Board.Clone()
	s.RemoveCrashes()

	if !s.Board.Equal(after) {
		t.Error("second RemoveCrashes changed the board")
	}
	if n := s.Board.Count(core.Crash); n != 0 {
		t.Errorf("%d crash cells left", n)
	}
	expectKind(t, s, 0, 0, core.Tunnel) // wall border was blown away
}

func TestMakeCrashSparesMetal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []core.Tile{core.Tunnel, core.Wall, core.Rock, core.Diamond, core.Ground, core.Metal, core.Box, core.Door, core.Fly}

	for trial := 0; trial < 50; trial++ {
		g := newGrid(core.Metal)
		for r := 1; r < core.Rows-1; r++ {
			for c := 1; c < core.Cols-1; c++ {
				g.put(r, c, kinds[rng.Intn(len(kinds))])
			}
		}
		s := simWith(t, g)
		before := s.Board.Clone()

		center := core.P(rng.Intn(core.Rows), rng.Intn(core.Cols))
		center.Row = min(max(center.Row, 1), core.Rows-2)
		center.Col = min(max(center.Col, 1), core.Cols-2)
		debris := core.Crash
		if trial%2 == 1 {
			debris = core.Diamond
		}
		s.MakeCrash(debris, center.Row, center.Col)

		for r := center.Row - 1; r <= center.Row+1; r++ {
			for c := center.Col - 1; c <= center.Col+1; c++ {
				want := debris
				if before.Kind(r, c) == core.Metal {
					want = core.Metal
				}
				if got := s.Board.Kind(r, c); got != want {
					t.Fatalf("trial %d: cell (%d,%d) = %v, expected %v", trial, r, c, got, want)
				}
			}
		}
		if s.Board.Count(core.Metal) != before.Count(core.Metal) {
			t.Fatalf("trial %d: metal count changed", trial)
		}
		if s.PendingSound() != core.SoundExplosion {
			t.Fatalf("trial %d: pending sound = %v", trial, s.PendingSound())
		}
	}
}

func TestRockFallsStraightWhenFree(t *testing.T) {
	s := simWith(t, newGrid(core.Wall).put(5, 5, core.Rock))
	calls := 0
	s.SetSideChooser(fixedSide(-1, &calls))

	s.MoveRocks()

	expectKind(t, s, 5, 5, core.Tunnel)
	expectKind(t, s, 6, 5, core.Rock)
	if !s.Board.RockFalling(6, 5) {
		t.Error("fallen rock should be marked falling")
	}
	if calls != 0 {
		t.Errorf("side chooser called %d times for an unblocked rock", calls)
	}
}

func TestSideSlip(t *testing.T) {
	tests := []struct {
		name      string
		side      int
		wantCol   int
		wantFalls bool
	}{
		{"left is open", -1, 4, true},
		{"right is blocked", 1, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(core.Wall).
				put(5, 5, core.Rock).
				put(6, 5, core.Wall).
				put(5, 6, core.Wall).
				put(6, 6, core.Wall)
			s := simWith(t, g)
			calls := 0
			s.SetSideChooser(fixedSide(tc.side, &calls))

			s.MoveRocks()

			expectKind(t, s, 5, tc.wantCol, core.Rock)
			expectKind(t, s, 6, 4, core.Tunnel)
			if got := s.Board.RockFalling(5, tc.wantCol); got != tc.wantFalls {
				t.Errorf("RockFalling = %v, expected %v", got, tc.wantFalls)
			}
			if calls != 1 {
				t.Errorf("side chooser called %d times, expected exactly once", calls)
			}
		})
	}
}

func TestSlipAheadOfSweepMovesOnce(t *testing.T) {
	// Row 4 is swept left to right, so a rock slipping right lands on a
	// cell the sweep has not reached yet.
	g := newGrid(core.Wall).
		put(4, 5, core.Diamond).
		put(5, 5, core.Rock).
		put(6, 5, core.Wall).
		put(6, 6, core.Wall)
	s := simWith(t, g)
	calls := 0
	s.SetSideChooser(fixedSide(1, &calls))

	s.MoveRocks()

	expectKind(t, s, 4, 6, core.Diamond)
	expectKind(t, s, 5, 6, core.Tunnel)
}

func TestRockOnRestingHeroIsHarmless(t *testing.T) {
	s := simWith(t, newGrid(core.Wall).put(5, 5, core.Rock).put(6, 5, core.Hero))

	s.MoveRocks()

	expectKind(t, s, 5, 5, core.Rock)
	expectKind(t, s, 6, 5, core.Hero)
}

func TestFallingRockKillsHero(t *testing.T) {
	s := simWith(t, newGrid(core.Wall).put(3, 5, core.Rock).put(5, 5, core.Hero))

	s.MoveRocks() // rock drops to (4,5)
	expectKind(t, s, 4, 5, core.Rock)
	expectKind(t, s, 5, 5, core.Hero)

	s.MoveRocks() // still falling onto the hero
	for r := 4; r <= 6; r++ {
		for c := 4; c <= 6; c++ {
			expectKind(t, s, r, c, core.Crash)
		}
	}
	if s.PendingSound() != core.SoundExplosion {
		t.Errorf("pending sound = %v, expected explosion", s.PendingSound())
	}
}

func TestRockLandingOnCreatures(t *testing.T) {
	tests := []struct {
		name     string
		creature core.Tile
		debris   core.Tile
	}{
		{"box explodes", core.Box, core.Crash},
		{"fly turns into diamonds", core.Fly, core.Diamond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := simWith(t, newGrid(core.Metal).put(9, 9, core.Rock).put(10, 9, tc.creature))

			s.MoveRocks()

			for r := 9; r <= 11; r++ {
				for c := 8; c <= 10; c++ {
					expectKind(t, s, r, c, tc.debris)
				}
			}
		})
	}
}

func TestRockRestsOnGround(t *testing.T) {
	s := simWith(t, newGrid(core.Wall).put(5, 5, core.Rock).put(6, 5, core.Ground))
	calls := 0
	s.SetSideChooser(fixedSide(-1, &calls))

	s.MoveRocks()

	expectKind(t, s, 5, 5, core.Rock)
	if calls != 0 {
		t.Error("ground does not let objects slide off")
	}
}
