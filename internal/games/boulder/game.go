// Package boulder adapts the Boulder Dash engine to the platform Game
// interface: it maps actions to engine operations, drives the tick cadence
// and renders the HUD and viewport.
package boulder

import (
	"fmt"

	"github.com/boulder-tui/boulder/internal/config"
	platformcore "github.com/boulder-tui/boulder/internal/core"
	"github.com/boulder-tui/boulder/internal/games/boulder/core"
	"github.com/boulder-tui/boulder/internal/games/boulder/levels"
	"github.com/boulder-tui/boulder/internal/registry"
)

const (
	GameID = "boulder"
	Title  = "Boulder Dash"
)

// Game implements the Boulder Dash game.
type Game struct {
	opts       platformcore.GameOptions
	cfg        config.BoulderConfig
	catalog    *levels.Catalog
	difficulty *config.DifficultyManager

	sim       *core.Sim
	runtime   platformcore.RuntimeConfig
	tick      uint64
	simTicker int // main ticks until the next environment cycle
	paused    bool
	lastSound core.Sound

	// fatal is set when no level can be started; the game stops.
	fatal error
}

func init() {
	registry.Register(GameID, Title, func(opts platformcore.GameOptions) (registry.Game, error) {
		g, err := New(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// New loads the configuration and level pack selected by opts.
func New(opts platformcore.GameOptions) (*Game, error) {
	cfg, err := config.LoadBoulder(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyBoulderPreset(&cfg, preset)

	path := opts.LevelsPath
	if path == "" {
		path = cfg.Levels.Path
	}
	catalog, err := levels.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.StartLevel < 0 || opts.StartLevel >= catalog.Len() {
		return nil, fmt.Errorf("boulder: start level %d: %w (pack has %d levels)",
			opts.StartLevel+1, core.ErrOutOfRange, catalog.Len())
	}

	return &Game{
		opts:       opts,
		cfg:        cfg,
		catalog:    catalog,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title
}

// Catalog returns the loaded level pack.
func (g *Game) Catalog() *levels.Catalog {
	return g.catalog
}

// Config returns the effective configuration, after presets.
func (g *Game) Config() config.BoulderConfig {
	return g.cfg
}

// Reset starts a new run at the configured start level.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.runtime = rc
	g.tick = 0
	g.simTicker = 0
	g.paused = false
	g.lastSound = core.SoundNone
	g.fatal = nil

	g.sim = core.New(g.catalog, core.Options{
		Seed:               rc.Seed,
		TimePeriod:         g.cfg.Timing.TimePeriodTicks,
		IdleThreshold:      g.cfg.Timing.IdleThreshold,
		LevelCompleteTicks: g.cfg.Timing.LevelCompleteTicks,
		TimeScale:          g.cfg.Difficulty.TimeScale,
		TimeScaleAt:        g.difficulty.TimeScale,
		SoundOn:            g.cfg.Sound.Enabled,
	})
	g.fail(g.sim.StartLevel(g.opts.StartLevel))
}

func (g *Game) fail(err error) {
	if err != nil && g.fatal == nil {
		g.fatal = err
	}
}

// Step advances the game by one main tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.fatal != nil {
		return g.result(core.SoundNone)
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(core.SoundNone)
	}

	g.tick++

	// The level banner freezes input and simulation
	if g.sim.Phase() == core.LevelComplete {
		g.fail(g.sim.AdvanceCompletion())
		return g.result(core.SoundNone)
	}

	var snd core.Sound
	if g.handleInput(in) {
		g.sim.TrackHero()
		snd = g.sim.FlushSound()
	}

	g.sim.DecrementTime()

	if g.simTicker <= 0 {
		g.simTicker = g.cfg.Timing.SimEveryTicks
		if s := g.sim.Refresh(); s != core.SoundNone {
			snd = s
		}
	}
	g.simTicker--

	return g.result(snd)
}

// handleInput resolves at most one action and reports whether it was a
// hero move.
func (g *Game) handleInput(in platformcore.InputFrame) bool {
	switch {
	case in.Has(platformcore.ActionLeft):
		g.sim.Walk(core.West)
		return true
	case in.Has(platformcore.ActionRight):
		g.sim.Walk(core.East)
		return true
	case in.Has(platformcore.ActionUp):
		g.sim.Walk(core.North)
		return true
	case in.Has(platformcore.ActionDown):
		g.sim.Walk(core.South)
		return true
	case in.Has(platformcore.ActionGhost):
		g.fail(g.sim.Ghost())
	case in.Has(platformcore.ActionSoundToggle):
		g.sim.ToggleSound()
	case in.Has(platformcore.ActionNextLevel):
		g.fail(g.sim.NextLevel())
	case in.Has(platformcore.ActionPrevLevel):
		g.fail(g.sim.PrevLevel())
	case in.Has(platformcore.ActionSuicide):
		g.sim.Suicide()
	case in.Has(platformcore.ActionRespawn):
		g.sim.Respawn()
	case in.Has(platformcore.ActionRefillTime):
		g.sim.RefillTime()
	}
	return false
}

func (g *Game) result(snd core.Sound) platformcore.StepResult {
	if snd != core.SoundNone {
		g.lastSound = snd
	}
	res := platformcore.StepResult{
		State: g.State(),
		Bell:  snd == core.SoundDiamond,
	}
	if g.sim == nil {
		return res
	}
	for _, e := range g.sim.DrainEvents() {
		res.Events = append(res.Events, platformcore.Event{
			Kind:   e.Kind.String(),
			Level:  e.Level,
			Score:  e.Score,
			Detail: e.Detail,
		})
	}
	return res
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.sim.Score,
		Level:    g.sim.Level,
		GameOver: g.fatal != nil || g.sim.Phase() == core.GameOver,
		Paused:   g.paused,
	}
}

// Phase returns the engine phase.
func (g *Game) Phase() core.Phase {
	return g.sim.Phase()
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.fatal
}
