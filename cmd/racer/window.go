package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-racer/internal/platform/window"
)

var (
	flagAssets string
	flagFont   string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 580x720 window and play Lane Racer with sprites.

The assets directory must contain car.png, barrier.png and road.png.
Text uses the built-in Go font unless --font names a TTF/OTF file.

Controls:
  O          - Start
  A/Left     - Steer left
  D/Right    - Steer right
  R          - Play again (after game over)
  Q/Esc      - Quit (after game over)

Examples:
  racer window
  racer window --assets ./assets --font ./fontGame.ttf`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding car.png, barrier.png and road.png")
	windowCmd.Flags().StringVar(&flagFont, "font", "", "Path to a TTF/OTF font (default: built-in Go Regular)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	assets, err := window.LoadAssets(flagAssets, flagFont)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	logger.Debug("assets loaded", "dir", flagAssets, "font", flagFont)

	seed := resolveSeed()
	logger.Info("opening window", "seed", seed, "tps", window.TPS(cfg.Screen))
	return window.Run(window.Options{
		Config: cfg,
		Seed:   seed,
		Assets: assets,
		Logger: logger,
	})
}
