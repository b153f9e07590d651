package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Lane Racer in the terminal. The 580x720 field is scaled to fit.

Controls:
  O          - Start
  A/Left     - Steer left
  D/Right    - Steer right
  R          - Play again (after game over)
  Q/Esc      - Quit (after game over)
  Ctrl+C     - Exit at any time

Terminals do not report key releases, so a steering key counts as held
while it keeps auto-repeating.

Examples:
  racer play
  racer play --difficulty easy
  racer play --seed 42 --log-file racer.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = resolveSeed()

	logger.Debug("starting terminal session", "seed", rt.Seed, "width", rt.ScreenW, "height", rt.ScreenH)
	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Logger:  sessionLogger(),
	})
}
