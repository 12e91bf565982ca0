package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smartplay-ai/smartplay/lotto"
	"github.com/smartplay-ai/smartplay/lotto/report"
)

var (
	ticketCount  int
	strategyName string
	generateOut  string

	minHotCount        int
	minColdCount       int
	overdueCluster     []int
	overdueProbability float64
	parityTarget       int // -1 = unconstrained
	sumMin             int // 0 = unconstrained
	sumMax             int
	retryBudget        int
)

// generateCmd classifies the pool, then samples, nudges, and dedupes a
// ticket pack.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a deduplicated pack of suggested tickets",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		profile := resolveProfile()
		strategy, err := lotto.ParseStrategy(strategyName)
		if err != nil {
			logrus.Fatalf("Invalid strategy: %v", err)
		}

		estimator, err := lotto.NewEstimator(profile, estimatorConfig())
		if err != nil {
			logrus.Fatalf("Invalid estimator configuration: %v", err)
		}

		cfg := lotto.DefaultGeneratorConfig(strategy)
		cfg.MinHotCount = minHotCount
		cfg.MinColdCount = minColdCount
		cfg.OverdueCluster = overdueCluster
		cfg.OverdueProbability = overdueProbability
		cfg.RetryBudget = retryBudget
		if parityTarget >= 0 {
			cfg.ParityTarget = &parityTarget
		}
		if sumMin > 0 || sumMax > 0 {
			cfg.SumRange = &[2]int{sumMin, sumMax}
		}

		generator, err := lotto.NewGenerator(profile, cfg, lotto.NewDrawKey(seed))
		if err != nil {
			logrus.Fatalf("Invalid generator configuration: %v", err)
		}

		// Classification and generation share one seed: the estimator's
		// simulation fallback draws from the isolated history stream.
		bands := estimator.Classify(loadHistory(profile), generator.RNG())
		tickets := generator.Tickets(ticketCount, &bands.Main)

		details := report.NewRunDetails(profile.Name, strategy, len(tickets), seed)
		fmt.Printf("Ticket pack for %s (strategy: %s):\n", profile.Name, strategy)
		for i, t := range tickets {
			fmt.Printf("  %2d: %s\n", i+1, t)
		}
		fmt.Println("Run details:")
		for _, row := range details.Rows() {
			fmt.Printf("  %-18s %s\n", row[0], row[1])
		}

		if generateOut != "" {
			f, err := os.Create(generateOut)
			if err != nil {
				logrus.Fatalf("Could not create %s: %v", generateOut, err)
			}
			defer f.Close()
			if err := report.WriteTicketsCSV(f, profile, tickets); err != nil {
				logrus.Fatalf("Could not write %s: %v", generateOut, err)
			}
			fmt.Printf("Wrote ticket pack to %s\n", generateOut)
		}
	},
}

// init sets up generate flags and attaches the subcommand
func init() {
	generateCmd.Flags().IntVar(&ticketCount, "count", 5, "Number of unique tickets to generate")
	generateCmd.Flags().StringVar(&strategyName, "strategy", "blend", "Nudging strategy (none, blend, cold)")
	generateCmd.Flags().StringVar(&historyPath, "history", "", "CSV draw history (date,n1..nk[,special] per row)")
	generateCmd.Flags().StringVar(&archiveDir, "archive-dir", "", "Draw archive directory")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Write the ticket pack to a CSV file")

	generateCmd.Flags().IntVar(&lookback, "lookback", lotto.DefaultLookback, "Number of most recent draws to weigh")
	generateCmd.Flags().Float64Var(&decay, "decay", lotto.DefaultDecay, "Per-draw recency decay factor in (0, 1]")
	generateCmd.Flags().Float64Var(&hotFraction, "hot-fraction", lotto.DefaultHotFraction, "Fraction of the pool classified hot")
	generateCmd.Flags().Float64Var(&coldFraction, "cold-fraction", lotto.DefaultColdFraction, "Fraction of the pool classified cold")

	generateCmd.Flags().IntVar(&minHotCount, "min-hot", lotto.DefaultMinHotCount, "Blend: minimum hot numbers per ticket")
	generateCmd.Flags().IntVar(&minColdCount, "min-cold", lotto.DefaultMinColdCount, "Blend: minimum cold numbers per ticket")
	generateCmd.Flags().IntSliceVar(&overdueCluster, "overdue-cluster", lotto.DefaultOverdueCluster(), "Blend: overdue cluster numbers")
	generateCmd.Flags().Float64Var(&overdueProbability, "overdue-probability", lotto.DefaultOverdueProbability, "Blend: probability of unioning the overdue cluster")
	generateCmd.Flags().IntVar(&parityTarget, "parity", -1, "Required count of even main numbers (-1 to disable)")
	generateCmd.Flags().IntVar(&sumMin, "sum-min", 0, "Minimum main-number sum (0 to disable)")
	generateCmd.Flags().IntVar(&sumMax, "sum-max", 0, "Maximum main-number sum (0 to disable)")
	generateCmd.Flags().IntVar(&retryBudget, "retry-budget", lotto.DefaultRetryBudget, "Sampling attempts per requested ticket before underfilling")

	rootCmd.AddCommand(generateCmd)
}
