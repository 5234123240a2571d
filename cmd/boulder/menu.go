package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/boulder-tui/boulder/internal/games/boulder"
	"github.com/boulder-tui/boulder/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start the level.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start level
  Tab          - High scores
  Q            - Quit

Examples:
  boulder menu
  boulder menu --fps 30
  boulder menu --levels ./packs`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	// The pack is loaded once up front so bad flags fail before the TUI starts
	probe, err := newGame(0)
	if err != nil {
		return err
	}
	catalog := probe.Catalog()
	names := make([]string, 0, catalog.Len())
	for _, lvl := range catalog.Levels() {
		names = append(names, lvl.Name)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(boulder.Title, catalog.Name, names, store, boulder.GameID, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, boulder.GameID, boulder.Title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := newGame(result.Level)
		if err != nil {
			return err
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, logger, cfg); err != nil {
			logger.Error("running game", "err", err)
		}
		if err := game.Err(); err != nil {
			return err
		}
	}
}
