package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smartplay-ai/smartplay/lotto"
	"github.com/smartplay-ai/smartplay/lotto/history"
	"github.com/smartplay-ai/smartplay/lotto/store"
)

var (
	// Shared CLI flags
	logLevel  string // Log verbosity level
	seed      int64  // Seed for reproducible classification and generation
	gameName  string // Game profile name (lotto, super, powerball, or a games-spec entry)
	gamesSpec string // Optional YAML file with custom game profiles

	// History source flags shared by generate and classify
	historyPath string // CSV draw history
	archiveDir  string // Badger draw archive directory

	// Estimator flags
	lookback     int
	decay        float64
	hotFraction  float64
	coldFraction float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "smartplay",
	Short: "Hot/cold number analysis and ticket generation for lottery games",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging applies the --log flag before any subcommand work.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveProfile resolves --game against the built-ins, extended by
// --games-spec when provided.
func resolveProfile() lotto.GameProfile {
	profiles := lotto.BuiltinProfiles()
	if gamesSpec != "" {
		loaded, err := lotto.LoadGameSpecs(gamesSpec)
		if err != nil {
			logrus.Fatalf("Could not load game spec %s: %v", gamesSpec, err)
		}
		profiles = loaded
	}
	profile, ok := profiles[gameName]
	if !ok {
		logrus.Fatalf("Unknown game %q; built-ins are lotto, super, powerball", gameName)
	}
	return profile
}

// loadHistory resolves the draw history for a run: --history CSV first, then
// the --archive-dir archive. Absent or malformed history returns nil and the
// estimator falls back to simulation.
func loadHistory(profile lotto.GameProfile) []lotto.DrawRecord {
	if historyPath != "" {
		records, err := history.Load(historyPath, profile)
		if err != nil {
			logrus.Warnf("Draw history unavailable (%v); falling back to simulated history", err)
			return nil
		}
		logrus.Infof("Loaded %d draws from %s", len(records), historyPath)
		return records
	}

	if archiveDir != "" {
		archive, err := store.OpenDrawArchive(archiveDir)
		if err != nil {
			logrus.Warnf("Draw archive unavailable (%v); falling back to simulated history", err)
			return nil
		}
		defer archive.Close()

		records, err := archive.LoadDraws(profile.Name)
		if err != nil || len(records) == 0 {
			logrus.Warnf("No archived draws for %q; falling back to simulated history", profile.Name)
			return nil
		}
		logrus.Infof("Loaded %d archived draws for %q", len(records), profile.Name)
		return records
	}

	return nil
}

// estimatorConfig builds the estimator settings from CLI flags.
func estimatorConfig() lotto.EstimatorConfig {
	return lotto.NewEstimatorConfig(lookback, decay, hotFraction, coldFraction)
}

// init sets up shared CLI flags
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for reproducible runs")
	rootCmd.PersistentFlags().StringVar(&gameName, "game", "lotto", "Game profile (lotto, super, powerball)")
	rootCmd.PersistentFlags().StringVar(&gamesSpec, "games-spec", "", "YAML file with custom game profiles")
}
