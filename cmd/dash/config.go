package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-dash/internal/config"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default YAML config",
	Long: `Print the embedded default configuration, ready to be saved as
~/.dash/configs/dash.yaml or passed with --config.

With --check, load and validate a config file instead.

Examples:
  dash config > ~/.dash/configs/dash.yaml
  dash config --check ./my-board.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate the given config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigCheck == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadDash(flagConfigCheck)
	if err != nil {
		return err
	}

	fmt.Printf("%s: ok (%dx%d grid, %d layout rows, tick %s)\n",
		flagConfigCheck, cfg.Grid.Width, cfg.Grid.Height, len(cfg.Layout.Rows), cfg.Timing.TickInterval)
	fmt.Printf("pursuers: spawn every %d moves, act every %d moves, detect within %d\n",
		cfg.Pursuers.SpawnInterval, cfg.Pursuers.MoveInterval, cfg.Pursuers.DetectionRange)
	return nil
}
