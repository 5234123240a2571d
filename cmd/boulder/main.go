// boulder is a Boulder Dash clone for the terminal.
//
// Usage:
//
//	boulder play [level]     - Play, optionally starting at a 1-based level
//	boulder menu             - Pick a level interactively
//	boulder levels           - List the levels of the active pack
//	boulder scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.boulder/scores.db)
//	--config <path>       - Custom boulder.yaml
//	--levels <path>       - Level pack file or directory
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write the game log to a file
//	--log-level <level>   - debug, info, warn or error
//
// Environment variables BOULDER_DB, BOULDER_CONFIG, BOULDER_LEVELS and
// BOULDER_LOG_FILE provide defaults for the matching flags. A .env file in
// the working directory is read first.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	// Import the game to register it
	_ "github.com/boulder-tui/boulder/internal/games/boulder"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// envFlags maps persistent flags to the environment variables that back them.
var envFlags = map[string]string{
	"db":       "BOULDER_DB",
	"config":   "BOULDER_CONFIG",
	"levels":   "BOULDER_LEVELS",
	"log-file": "BOULDER_LOG_FILE",
}

// logger is set up before any subcommand runs.
var logger = log.New(os.Stderr)

// logFile is the open --log-file, closed after the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boulder",
	Short: "Boulder Dash in your terminal",
	Long: `Dig through dirt, collect diamonds and dodge falling rocks
before the time runs out.

Available commands:
  play     - Start playing
  menu     - Interactive level picker
  levels   - List the levels of the active pack
  scores   - View high scores

Examples:
  boulder play
  boulder play 3 --difficulty hard
  boulder menu --levels ./packs
  boulder scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.boulder/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom boulder.yaml")
	flags.StringVar(&flagLevels, "levels", "", "Level pack file or directory (default: built-in pack)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogFile, "log-file", "", "Write the game log to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads .env, applies environment defaults and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	var envErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		env, ok := envFlags[f.Name]
		if !ok || f.Changed {
			return
		}
		if v, set := os.LookupEnv(env); set && envErr == nil {
			envErr = f.Value.Set(v)
		}
	})
	if envErr != nil {
		return envErr
	}

	l, err := newLogger()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// newLogger writes to --log-file when given. Otherwise only warnings and
// errors reach stderr, since the TUI owns the terminal.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	if flagLogFile == "" {
		return log.NewWithOptions(os.Stderr, log.Options{
			Level:  max(level, log.WarnLevel),
			Prefix: "boulder",
		}), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	logFile = f

	return log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "boulder",
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	}), nil
}
