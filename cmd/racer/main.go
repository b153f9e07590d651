// racer is a lane-dodging arcade game: steer a car between barriers
// falling down a three-lane road that scrolls faster every few seconds.
//
// Usage:
//
//	racer              - Play in the terminal (same as racer play)
//	racer play         - Play in the terminal
//	racer window       - Play in a desktop window
//	racer config       - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--seed <value>       - RNG seed for reproducible obstacle placement
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("racer failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "racer",
	Short: "Lane Racer - dodge the barriers for as long as you can",
	Long: `Lane Racer is a small arcade game. Barriers fall down three lanes of a
scrolling road; steer the car left and right to avoid them. Every barrier
that passes scores a point, and the road speeds up every five seconds.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  racer
  racer play --difficulty hard
  racer window --assets ./assets
  racer config --config ./my-racer.yaml`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
	RunE:               runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
