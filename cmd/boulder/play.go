package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/boulder-tui/boulder/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Start playing",
	Long: `Start playing at the given 1-based level (default: 1).

Controls:
  Arrows/WASD  - Move and dig
  Space/Enter  - Dig without moving; retry after dying
  M            - Toggle sound
  Esc          - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Cheats:
  N/P          - Next/previous level
  R            - Blow up the hero
  J            - Respawn at the last position
  T            - Refill the time

Difficulty options:
  easy   - More time per level, slower rocks
  normal - Configured time, time shrinks on later levels
  hard   - Less time, faster rocks
  fixed  - No difficulty ramp

Examples:
  boulder play
  boulder play 2
  boulder play --difficulty hard
  boulder play --levels ./my-pack.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	start := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid level %q: expected a number from 1", args[0])
		}
		start = n - 1
	}

	game, err := newGame(start)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return game.Err()
}
