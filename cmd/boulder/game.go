package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/boulder-tui/boulder/internal/core"
	"github.com/boulder-tui/boulder/internal/games/boulder"
	"github.com/boulder-tui/boulder/internal/registry"
	"github.com/boulder-tui/boulder/internal/storage"
)

// newGame creates the game from the global flags. startLevel is 0-indexed.
func newGame(startLevel int) (*boulder.Game, error) {
	g, err := registry.Create(boulder.GameID, core.GameOptions{
		ConfigPath: flagConfig,
		LevelsPath: flagLevels,
		Difficulty: flagDifficulty,
		StartLevel: startLevel,
	})
	if err != nil {
		return nil, err
	}
	game, ok := g.(*boulder.Game)
	if !ok {
		return nil, fmt.Errorf("unexpected game type %T", g)
	}
	return game, nil
}

// runtimeConfig sizes the runtime to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
