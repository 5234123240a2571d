package core

import "fmt"

// Phase is the level state derived from the simulation.
type Phase uint8

const (
	Playing Phase = iota
	LevelComplete
	GameOver
	Dead
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case LevelComplete:
		return "level_complete"
	case GameOver:
		return "game_over"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// EventKind classifies an Event.
type EventKind uint8

const (
	EventLevelStarted EventKind = iota
	EventLevelComplete
	EventHeroKilled
	EventTimeUp
	EventCheat
)

func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventLevelComplete:
		return "level_complete"
	case EventHeroKilled:
		return "hero_killed"
	case EventTimeUp:
		return "time_up"
	case EventCheat:
		return "cheat"
	default:
		return "unknown"
	}
}

// Event records a state transition for the caller to report.
type Event struct {
	Kind   EventKind
	Level  int
	Score  int
	Detail string
}

func (s *Sim) emit(kind EventKind, detail string) {
	s.events = append(s.events, Event{Kind: kind, Level: s.Level, Score: s.Score, Detail: detail})
}

// DrainEvents returns and clears the events recorded since the last call.
func (s *Sim) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Phase reports the current level state.
func (s *Sim) Phase() Phase {
	switch {
	case s.complete > 0:
		return LevelComplete
	case s.Time <= 0:
		return GameOver
	case s.Hero == Killed:
		return Dead
	default:
		return Playing
	}
}

// Status checks for the end of the level. Running out of time kills the
// hero; collecting every diamond with no door left on the board starts the
// level-complete countdown and awards the time bonus.
func (s *Sim) Status() {
	if s.complete > 0 {
		return
	}
	if s.Time <= 0 {
		if !s.timeUp {
			s.timeUp = true
			s.emit(EventTimeUp, "")
		}
		s.KillHero()
		return
	}
	if s.Diamonds == 0 && !s.Board.Has(Door) {
		s.Score += s.Time * TimeBonus
		s.complete = s.opts.LevelCompleteTicks
		s.emit(EventLevelComplete, "")
	}
}

// AdvanceCompletion counts down the level-complete banner and starts the
// next level when it expires. After the last level play wraps to level 0.
func (s *Sim) AdvanceCompletion() error {
	if s.complete == 0 {
		return nil
	}
	s.complete--
	if s.complete > 0 {
		return nil
	}
	return s.StartLevel(s.Level + 1)
}

// CompletionTicks returns how long the level-complete banner stays up.
func (s *Sim) CompletionTicks() int {
	return s.complete
}

// TrackHero records where the hero is, or marks it Killed when it has
// vanished from the board.
func (s *Sim) TrackHero() {
	p, ok := s.Board.Find(Hero)
	if !ok {
		if s.Hero != Killed {
			s.Hero = Killed
			s.emit(EventHeroKilled, "")
		}
		return
	}
	s.LastPos = p
}

// DecrementTime advances the time counter by one main tick. Every
// TimePeriod ticks one time unit is spent; every half period the idle
// animation is updated. The counter stops while the hero is dead or the
// time is used up.
func (s *Sim) DecrementTime() {
	if s.Time <= 0 || s.Hero == Killed {
		return
	}
	period := s.opts.TimePeriod
	s.timeTick++
	if s.timeTick >= period {
		s.timeTick = 0
		s.Time--
		s.animate()
		return
	}
	if s.timeTick == period/2 {
		s.animate()
	}
}

// animate alternates the idle frames once the hero has stood still for more
// than IdleThreshold time units, and settles on the first frame otherwise.
func (s *Sim) animate() {
	if s.Hero == FacingIdle1 && s.MoveTime-s.Time > s.opts.IdleThreshold {
		s.Hero = FacingIdle2
	} else {
		s.Hero = FacingIdle1
	}
}

// Refresh runs one slow-cadence environment cycle and returns the sound to
// play, if any.
func (s *Sim) Refresh() Sound {
	s.RemoveCrashes()
	s.MoveRocks()
	s.MoveCreatures()
	s.Status()
	s.TrackHero()
	return s.FlushSound()
}

// Ghost arms the one-shot ghost mode. When the hero is dead it restarts the
// current level instead; after a time-out that also starts a fresh run.
func (s *Sim) Ghost() error {
	if s.Hero != Killed {
		s.Mode = MoveGhost
		return nil
	}
	if s.Time <= 0 {
		s.Score = 0
	}
	return s.StartLevel(s.Level)
}

// ToggleSound switches sound output on or off.
func (s *Sim) ToggleSound() {
	s.SoundOn = !s.SoundOn
}

// NextLevel skips to the following level.
func (s *Sim) NextLevel() error {
	s.emit(EventCheat, "next_level")
	return s.StartLevel(s.Level + 1)
}

// PrevLevel goes back one level. It does nothing on level 0.
func (s *Sim) PrevLevel() error {
	if s.Level == 0 {
		return nil
	}
	s.emit(EventCheat, "prev_level")
	return s.StartLevel(s.Level - 1)
}

// Suicide blows up the hero.
func (s *Sim) Suicide() {
	s.emit(EventCheat, "suicide")
	s.KillHero()
}

// Respawn puts the hero back on its last known position.
func (s *Sim) Respawn() {
	s.Board.SetAt(s.LastPos, Hero)
	s.Hero = FacingIdle1
	s.emit(EventCheat, "respawn")
}

// RefillTime restores the full time budget.
func (s *Sim) RefillTime() {
	s.Time = s.TimeBudget
	s.timeUp = false
	s.emit(EventCheat, "refill_time")
}

// StatusLine renders the classic status text, e.g. "L:01,D:008,T:150,M:1".
func (s *Sim) StatusLine() string {
	sound := 0
	if s.SoundOn {
		sound = 1
	}
	return fmt.Sprintf("L:%02d,D:%03d,T:%03d,M:%d", s.Level+1, s.Diamonds, s.Time, sound)
}
