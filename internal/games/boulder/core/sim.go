package core

import (
	"fmt"
	"math/rand"
)

// HeroState is the hero's animation frame, or Killed when it is gone.
type HeroState uint8

const (
	Killed HeroState = iota
	FacingIdle1
	FacingIdle2
	FacingRight
	FacingLeft
)

func (h HeroState) String() string {
	switch h {
	case Killed:
		return "killed"
	case FacingIdle1:
		return "idle1"
	case FacingIdle2:
		return "idle2"
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	default:
		return "unknown"
	}
}

// MoveMode selects what the next hero action does.
type MoveMode uint8

const (
	MoveReal  MoveMode = iota // step onto the target
	MoveGhost                 // clear the target without moving, once
)

// Scoring.
const (
	DiamondPoints = 10 // per collected diamond
	TimeBonus     = 1  // per remaining time unit when a level is completed
)

// Options tunes a simulation. Zero fields fall back to DefaultOptions.
type Options struct {
	Seed               int64
	TimePeriod         int     // main ticks per time unit
	IdleThreshold      int     // time units without a move before the idle frame alternates
	LevelCompleteTicks int     // main ticks the level-complete banner is held
	TimeScale          float64 // multiplier applied to every level's time budget
	SoundOn            bool

	// TimeScaleAt, when set, replaces TimeScale with a per-level multiplier.
	TimeScaleAt func(level int) float64
}

// DefaultOptions returns the classic timing: one time unit per second at 60Hz.
func DefaultOptions() Options {
	return Options{
		TimePeriod:         60,
		IdleThreshold:      5,
		LevelCompleteTicks: 120,
		TimeScale:          1.0,
		SoundOn:            true,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TimePeriod <= 0 {
		o.TimePeriod = d.TimePeriod
	}
	if o.IdleThreshold <= 0 {
		o.IdleThreshold = d.IdleThreshold
	}
	if o.LevelCompleteTicks <= 0 {
		o.LevelCompleteTicks = d.LevelCompleteTicks
	}
	if o.TimeScale <= 0 {
		o.TimeScale = d.TimeScale
	}
	return o
}

// Sim owns the board and all game state of one run.
type Sim struct {
	Board Board

	Level            int // current level index
	Diamonds         int // diamonds still to collect
	DiamondsRequired int
	Time             int // time units left
	TimeBudget       int
	MoveTime         int // value of Time at the last resolved hero action
	Hero             HeroState
	Mode             MoveMode
	LastPos          Pos // last position the hero was seen at
	SoundOn          bool
	Score            int

	levels   LevelSource
	opts     Options
	rng      *rand.Rand
	side     func() int
	sound    Sound
	timeTick int
	complete int // remaining level-complete ticks, 0 when not completing
	timeUp   bool
	events   []Event
}

// New creates a simulation over the given levels. Call StartLevel before
// stepping it.
func New(levels LevelSource, opts Options) *Sim {
	opts = opts.withDefaults()
	s := &Sim{
		levels:  levels,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		SoundOn: opts.SoundOn,
	}
	s.side = s.randomSide
	return s
}

// Options returns the effective options.
func (s *Sim) Options() Options {
	return s.opts
}

// Levels returns the level catalog.
func (s *Sim) Levels() LevelSource {
	return s.levels
}

// SetSideChooser overrides the random left/right choice used by side-slips.
// f must return -1 or +1.
func (s *Sim) SetSideChooser(f func() int) {
	if f == nil {
		f = s.randomSide
	}
	s.side = f
}

func (s *Sim) randomSide() int {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Load decodes level index into the board and sets the level budgets.
// Nothing changes when the index is unknown or the level fails to decode.
func (s *Sim) Load(index int) error {
	if index < 0 || index >= s.levels.Len() {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	lvl, err := s.levels.Level(index)
	if err != nil {
		return err
	}
	var b Board
	if err := lvl.Decode(&b); err != nil {
		return err
	}
	s.Board = b
	s.DiamondsRequired = lvl.Diamonds
	s.TimeBudget = s.scaleTime(index, lvl.Time)
	return nil
}

func (s *Sim) scaleTime(index, t int) int {
	scale := s.opts.TimeScale
	if s.opts.TimeScaleAt != nil {
		scale = s.opts.TimeScaleAt(index)
	}
	scaled := int(float64(t) * scale)
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

// StartLevel loads level index and resets the per-level counters. When the
// level cannot be loaded it falls back to level 0 once; if that fails too
// ErrNoPlayableLevel is returned.
func (s *Sim) StartLevel(index int) error {
	s.Level = index
	if err := s.Load(index); err != nil {
		if s.Level == 0 {
			return fmt.Errorf("%w: %v", ErrNoPlayableLevel, err)
		}
		s.Level = 0
		if err := s.Load(0); err != nil {
			return fmt.Errorf("%w: %v", ErrNoPlayableLevel, err)
		}
	}

	s.Diamonds = s.DiamondsRequired
	s.Time = s.TimeBudget
	s.MoveTime = s.TimeBudget
	s.Hero = FacingIdle1
	s.timeTick = 0
	s.complete = 0
	s.timeUp = false
	if p, ok := s.Board.Find(Hero); ok {
		s.LastPos = p
	}
	s.emit(EventLevelStarted, "")
	return nil
}
