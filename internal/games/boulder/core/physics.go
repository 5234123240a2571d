package core

// MakeCrash fills the 3×3 block centered on (row, col) with kind, sparing
// Metal, and requests the explosion sound. kind is Crash for explosions and
// Diamond when a fly is destroyed.
func (s *Sim) MakeCrash(kind Tile, row, col int) {
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if s.Board.Kind(r, c) != Metal {
				s.Board.Set(r, c, kind)
			}
		}
	}
	s.RequestSound(SoundExplosion)
}

// RemoveCrashes turns every Crash cell back into Tunnel.
func (s *Sim) RemoveCrashes() {
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Cols; col++ {
			if s.Board.Kind(row, col) == Crash {
				s.Board.Set(row, col, Tunnel)
			}
		}
	}
}

// MoveRocks runs one pass of the falling rules over rocks and diamonds.
// Rows are scanned bottom up; even rows left to right and odd rows right to
// left. An object moves at most one cell per pass.
func (s *Sim) MoveRocks() {
	var moved [Rows][Cols]bool
	b := &s.Board

	for row := Rows - 2; row >= 1; row-- {
		col, end, step := 1, Cols-1, 1
		if row%2 == 1 {
			col, end, step = Cols-2, 0, -1
		}
		for ; col != end; col += step {
			kind := b.Kind(row, col)
			if !kind.falls() || moved[row][col] {
				continue
			}

			below := b.Kind(row+1, col)
			switch {
			case below.supports():
				side := s.side()
				if b.Kind(row, col+side) == Tunnel && b.Kind(row+1, col+side) == Tunnel {
					b.Set(row, col+side, kind)
					b.SetRockFalling(row, col+side, true)
					b.Set(row, col, Tunnel)
					moved[row][col+side] = true
				}
			case below == Tunnel:
				b.Set(row+1, col, kind)
				b.SetRockFalling(row+1, col, true)
				b.Set(row, col, Tunnel)
			case below == Hero && b.RockFalling(row, col):
				s.MakeCrash(Crash, row+1, col)
			case below == Box:
				s.MakeCrash(Crash, row+1, col)
			case below == Fly:
				s.MakeCrash(Diamond, row+1, col)
			}
			b.SetRockFalling(row, col, false)
		}
	}
}
