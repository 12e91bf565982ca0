package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smartplay-ai/smartplay/lotto"
	"github.com/smartplay-ai/smartplay/lotto/report"
)

var classifyOut string // optional CSV output path

// classifyCmd prints the hot/warm/cold bands for a game.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a game's numbers into hot/warm/cold bands",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		profile := resolveProfile()
		estimator, err := lotto.NewEstimator(profile, estimatorConfig())
		if err != nil {
			logrus.Fatalf("Invalid estimator configuration: %v", err)
		}

		records := loadHistory(profile)
		bands := estimator.Classify(records, lotto.NewPartitionedRNG(lotto.NewDrawKey(seed)))

		source := fmt.Sprintf("%d supplied draws", len(records))
		if bands.Simulated {
			source = fmt.Sprintf("%d simulated draws (seed %d)", lookback, seed)
		}
		fmt.Printf("Classification for %s over %s:\n", profile.Name, source)
		for _, s := range report.SummarizeBands(bands) {
			fmt.Printf("  %-4s (%4.1f%% weight): %v\n", s.Band, s.WeightShare*100, s.Members)
		}
		if profile.HasSpecial() {
			fmt.Printf("  special hot:  %v\n", bands.Special.Hot)
			fmt.Printf("  special cold: %v\n", bands.Special.Cold)
		}

		if classifyOut != "" {
			f, err := os.Create(classifyOut)
			if err != nil {
				logrus.Fatalf("Could not create %s: %v", classifyOut, err)
			}
			defer f.Close()
			if err := report.WriteClassificationCSV(f, bands); err != nil {
				logrus.Fatalf("Could not write %s: %v", classifyOut, err)
			}
			fmt.Printf("Wrote classification to %s\n", classifyOut)
		}
	},
}

// init sets up classify flags and attaches the subcommand
func init() {
	classifyCmd.Flags().StringVar(&historyPath, "history", "", "CSV draw history (date,n1..nk[,special] per row)")
	classifyCmd.Flags().StringVar(&archiveDir, "archive-dir", "", "Draw archive directory")
	classifyCmd.Flags().IntVar(&lookback, "lookback", lotto.DefaultLookback, "Number of most recent draws to weigh")
	classifyCmd.Flags().Float64Var(&decay, "decay", lotto.DefaultDecay, "Per-draw recency decay factor in (0, 1]")
	classifyCmd.Flags().Float64Var(&hotFraction, "hot-fraction", lotto.DefaultHotFraction, "Fraction of the pool classified hot")
	classifyCmd.Flags().Float64Var(&coldFraction, "cold-fraction", lotto.DefaultColdFraction, "Fraction of the pool classified cold")
	classifyCmd.Flags().StringVar(&classifyOut, "out", "", "Write the classification table to a CSV file")

	rootCmd.AddCommand(classifyCmd)
}
