package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-dash/internal/games/dash"
	"github.com/vovakirdan/grid-dash/internal/platform/tui"
	"github.com/vovakirdan/grid-dash/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Pick a board, then a difficulty. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Run history
  Esc/B        - Back
  Q            - Quit

Examples:
  dash menu
  dash menu --seed 42
  dash menu --db ./runs.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom YAML config")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	seeded := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, defaultGameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		title := gameID
		if info, ok := registry.Info(gameID); ok {
			title = info.Title
		}

		preset, quit, err := tui.RunDifficultySelector(title, dash.CurrentPreset(), cfg)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if preset == "" {
			continue
		}
		dash.SetDifficultyPreset(string(preset))

		// --seed only pins the first run
		if !seeded {
			cfg.Seed = time.Now().UnixNano()
		}
		seeded = false

		goBack, err := playGame(gameID, store, cfg)
		if err != nil {
			logger.Error("run failed", "game", gameID, "err", err)
			continue
		}
		if !goBack {
			return nil
		}
	}
}
