package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-racer/internal/config"
)

var (
	logger  *log.Logger
	logFile *os.File
)

// setupLogging builds the command logger from --log-level and --log-file.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = newLogger(out, level)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "racer",
		Level:           level,
	})
}

// sessionLogger returns the logger a full-screen front end should use.
// Without --log-file, output would corrupt the terminal, so it is dropped.
func sessionLogger() *log.Logger {
	if logFile == nil {
		return log.New(io.Discard)
	}
	return logger
}

// loadConfig resolves the effective config: the file search order, then
// the difficulty preset on top.
func loadConfig() (config.RacerConfig, error) {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return config.RacerConfig{}, fmt.Errorf("load config: %w", err)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RacerConfig{}, err
	}
	cfg := loaded.Config
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.RacerConfig{}, fmt.Errorf("difficulty %q on %s: %w", preset, loaded.Source, err)
	}

	logger.Debug("config loaded", "source", loaded.Source, "difficulty", preset)
	return cfg, nil
}

// resolveSeed returns --seed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
