// dash is a turn-based grid chase game for the terminal.
//
// Usage:
//
//	dash list              - List available boards
//	dash play [game]       - Play a board (default: dash)
//	dash menu              - Pick boards and difficulty interactively
//	dash scores [game]     - Show run history for a board
//	dash config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Input polling rate (default: config tick interval)
//	--seed <value>       - RNG seed for reproducible pursuer spawns
//	--db <path>          - Run history database (default: ~/.dash/dash.db)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file while the game is on screen
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-dash/internal/core"
	"github.com/vovakirdan/grid-dash/internal/storage"

	// Register the boards
	_ "github.com/vovakirdan/grid-dash/internal/games/dash"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

var (
	logger     *log.Logger
	gameLogger *log.Logger // nil unless --log-file is set
	logFile    io.Closer
)

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
	Use:   "dash",
	Short: "Dash - outrun the pursuers to the goal",
	Long: `Dash is a turn-based chase game played on a grid in your terminal.

Move the player (@) to the goal (G). Every move you make lets the
pursuers act: roamers (E) wander, chasers (Q) close in once you are
within their detection range, and new pursuers keep spawning.

Available commands:
  list     - Show all boards
  play     - Play a board directly
  menu     - Interactive board and difficulty picker
  scores   - View run history
  config   - Print the default YAML config

Examples:
  dash play
  dash play dash_maze --difficulty hard
  dash menu --seed 42
  dash scores dash`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Input polling rate per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/dash.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while a game is on screen")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging configures the CLI logger and, with --log-file, the logger
// handed to the game screens. Stderr is unusable while the alt screen is up.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "dash",
	})

	if flagLogFile == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	gameLogger = log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "dash",
		ReportTimestamp: true,
	})
	logger.Debug("logging to file", "path", flagLogFile)
	return nil
}

// runtimeConfig builds the platform config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history. A failure only disables recording.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}
