package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-dash/internal/config"
	"github.com/vovakirdan/grid-dash/internal/core"
	"github.com/vovakirdan/grid-dash/internal/games/dash"
	"github.com/vovakirdan/grid-dash/internal/platform/tui"
	"github.com/vovakirdan/grid-dash/internal/registry"
	"github.com/vovakirdan/grid-dash/internal/storage"
)

const defaultGameID = "dash"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a board",
	Long: `Start playing the given board (default: dash).

Controls:
  Arrows/WASD/hjkl  - Move one cell (one turn)
  P/Space           - Pause
  R                 - Restart (after the run ends)
  Esc/B             - Back
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow spawns, short-sighted chasers
  normal - Default pacing
  hard   - Fast spawns, pursuers act every turn

Examples:
  dash play
  dash play dash_maze
  dash play --difficulty hard --seed 7
  dash play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom YAML config")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q (run 'dash list' to see available boards)", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err := playGame(gameID, store, runtimeConfig())
	return err
}

// playGame applies the config flags, creates the board and runs it.
// Returns true if the player asked to go back to the menu.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	dash.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		dash.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return false, fmt.Errorf("cannot create board: %w", err)
	}

	goBack, err := tui.Run(game, store, tui.Options{
		Runtime:      cfg,
		TickInterval: tickInterval(),
		Preset:       dash.CurrentPreset(),
		Logger:       gameLogger,
	})
	if err != nil {
		return false, fmt.Errorf("cannot run board: %w", err)
	}
	return goBack, nil
}

// tickInterval reads the polling interval from the same config the board loads.
func tickInterval() time.Duration {
	dcfg, err := config.LoadDash(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		return config.DefaultDashConfig().Timing.TickInterval
	}
	return dcfg.Timing.TickInterval
}
