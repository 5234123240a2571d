package core

// MoveCreatures runs one pass of the box and fly wander rules.
//
// Every creature tries up to four headings, starting one quarter turn
// counterclockwise of its last move and turning clockwise, and takes the
// first that works. Walking into the hero blows it up; walking into a
// tunnel moves the creature. Anything else blocks that heading.
func (s *Sim) MoveCreatures() {
	b := &s.Board
	for row := 1; row < Rows-1; row++ {
		for col := 1; col < Cols-1; col++ {
			b.SetMoverActive(row, col, false)
		}
	}

	for row := Rows - 2; row >= 1; row-- {
		for col := 1; col < Cols-1; col++ {
			if !b.Kind(row, col).wanders() || b.MoverActive(row, col) {
				continue
			}
			last := b.MoverDir(row, col)
			for turn := 0; turn < 4; turn++ {
				if s.moveCreature(P(row, col), last.Turn(turn-1)) {
					break
				}
			}
		}
	}
}

// moveCreature attempts one heading and reports whether it resolved the
// creature's turn.
func (s *Sim) moveCreature(from Pos, d Direction) bool {
	b := &s.Board
	kind := b.KindAt(from)
	to := from.Step(d)

	switch b.KindAt(to) {
	case Hero:
		debris := Crash
		if kind == Fly {
			debris = Diamond
		}
		s.MakeCrash(debris, to.Row, to.Col)
		return true
	case Tunnel:
		b.SetAt(to, kind)
		b.SetMoverActive(to.Row, to.Col, true)
		b.SetMoverDir(to.Row, to.Col, d)
		b.SetAt(from, Tunnel)
		return true
	}
	return false
}
