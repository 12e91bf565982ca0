package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smartplay-ai/smartplay/lotto/history"
	"github.com/smartplay-ai/smartplay/lotto/store"
)

var (
	archiveFile string // CSV file for archive import
	archivePath string // archive directory for archive subcommands
)

// archiveCmd groups the draw-archive maintenance subcommands.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the persisted draw-history archive",
}

// archiveImportCmd parses a CSV history and persists it per game.
var archiveImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV draw history into the archive",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		profile := resolveProfile()
		records, err := history.Load(archiveFile, profile)
		if err != nil {
			logrus.Fatalf("Could not load draw history: %v", err)
		}

		archive, err := store.OpenDrawArchive(archivePath)
		if err != nil {
			logrus.Fatalf("Could not open archive: %v", err)
		}
		defer archive.Close()

		if err := archive.StoreDraws(profile.Name, records); err != nil {
			logrus.Fatalf("Could not store draws: %v", err)
		}
		fmt.Printf("Archived %d draws for %s in %s\n", len(records), profile.Name, archivePath)
	},
}

// archiveShowCmd reports what the archive holds for a game.
var archiveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the archived draw history for a game",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		profile := resolveProfile()
		archive, err := store.OpenDrawArchive(archivePath)
		if err != nil {
			logrus.Fatalf("Could not open archive: %v", err)
		}
		defer archive.Close()

		records, err := archive.LoadDraws(profile.Name)
		if err != nil {
			logrus.Fatalf("Could not load archived draws: %v", err)
		}

		fmt.Printf("%d archived draws for %s\n", len(records), profile.Name)
		show := 5
		if len(records) < show {
			show = len(records)
		}
		for _, rec := range records[len(records)-show:] {
			if rec.SpecialNumber != 0 {
				fmt.Printf("  #%d: %v + %d\n", rec.SequenceIndex, rec.MainNumbers, rec.SpecialNumber)
			} else {
				fmt.Printf("  #%d: %v\n", rec.SequenceIndex, rec.MainNumbers)
			}
		}
	},
}

// init sets up archive flags and attaches the subcommands
func init() {
	archiveImportCmd.Flags().StringVar(&archiveFile, "file", "", "CSV draw history to import")
	archiveImportCmd.Flags().StringVar(&archivePath, "dir", "smartplay-archive", "Archive directory")
	if err := archiveImportCmd.MarkFlagRequired("file"); err != nil {
		panic(err)
	}
	archiveShowCmd.Flags().StringVar(&archivePath, "dir", "smartplay-archive", "Archive directory")

	archiveCmd.AddCommand(archiveImportCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	rootCmd.AddCommand(archiveCmd)
}
