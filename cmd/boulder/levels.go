package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the active pack",
	Long: `Shows the levels of the built-in pack, or of the pack given with
--levels or BOULDER_LEVELS, with their diamond goals and time budgets.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	game, err := newGame(0)
	if err != nil {
		return err
	}
	catalog := game.Catalog()

	source := catalog.Source
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("%s (%s)\n\n", catalog.Name, source)

	maxNameLen := 4 // "Name" header
	for _, lvl := range catalog.Levels() {
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("  %-3s  %-*s  %8s  %4s\n", "#", maxNameLen, "Name", "Diamonds", "Time")
	fmt.Printf("  %-3s  %-*s  %8s  %4s\n", "--", maxNameLen, "----", "--------", "----")
	for i, lvl := range catalog.Levels() {
		fmt.Printf("  %-3d  %-*s  %8d  %4d\n", i+1, maxNameLen, lvl.Name, lvl.Diamonds, lvl.Time)
	}

	fmt.Println()
	fmt.Println("Run 'boulder play <#>' to start at a level.")
	return nil
}
