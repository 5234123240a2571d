package core

// MoveHero resolves one hero action toward (row+dRow, col+dCol).
//
// Diamonds are collected, rocks can be pushed sideways into a tunnel, and
// touching a box or fly sets it off. Walls, metal, unpushed rocks and a
// door with diamonds still to collect block the move. In ghost mode the
// target is cleared but the hero stays put.
func (s *Sim) MoveHero(dRow, dCol int) {
	b := &s.Board
	from, ok := b.Find(Hero)
	if !ok {
		return
	}
	to := from.Add(dRow, dCol)
	target := b.KindAt(to)

	switch target {
	case Diamond:
		if s.Diamonds > 0 {
			s.Diamonds--
		}
		s.Score += DiamondPoints
		s.RequestSound(SoundDiamond)
	case Rock:
		if dRow == 0 {
			beyond := to.Add(0, dCol)
			if b.KindAt(beyond) == Tunnel {
				b.SetAt(beyond, Rock)
				b.SetAt(to, Tunnel)
			}
		}
		target = b.KindAt(to)
	case Box:
		s.MakeCrash(Crash, to.Row, to.Col)
		return
	case Fly:
		s.MakeCrash(Diamond, to.Row, to.Col)
		return
	}

	if s.canEnter(target) {
		if s.Mode == MoveReal {
			b.SetAt(from, Tunnel)
			b.SetAt(to, Hero)
		} else {
			b.SetAt(to, Tunnel)
		}
		if s.sound == SoundNone {
			s.RequestSound(SoundMove)
		}
	}
	s.Mode = MoveReal
	s.MoveTime = s.Time
}

func (s *Sim) canEnter(target Tile) bool {
	switch target {
	case Wall, Rock, Metal:
		return false
	case Door:
		return s.Diamonds == 0
	}
	return true
}

// Walk moves the hero one step in direction d and turns it to face the
// step when it is horizontal.
func (s *Sim) Walk(d Direction) {
	s.MoveHero(d.Delta())
	if s.Hero == Killed {
		return
	}
	switch d {
	case East:
		s.Hero = FacingRight
	case West:
		s.Hero = FacingLeft
	}
}

// KillHero sets off an explosion on the hero, if there is one.
func (s *Sim) KillHero() {
	if p, ok := s.Board.Find(Hero); ok {
		s.MakeCrash(Crash, p.Row, p.Col)
	}
}
