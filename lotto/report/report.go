// Package report provides pure data types and CSV writers consumed by the
// rendering layer. This package has no dependency on the CLI — it stores and
// formats plain results.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/smartplay-ai/smartplay/lotto"
)

// Version is the report schema version stamped into run details.
const Version = "v1.2"

// RunDetails captures the reproducibility block emitted with every
// generation run: given the same seed and settings, the engine regenerates
// the identical ticket pack.
type RunDetails struct {
	Game          string
	Strategy      string
	TicketCount   int
	Seed          int64
	GeneratedAt   time.Time
	ReportVersion string
}

// NewRunDetails stamps run details for a completed generation.
func NewRunDetails(game string, strategy lotto.Strategy, ticketCount int, seed int64) RunDetails {
	return RunDetails{
		Game:          game,
		Strategy:      string(strategy),
		TicketCount:   ticketCount,
		Seed:          seed,
		GeneratedAt:   time.Now().UTC(),
		ReportVersion: Version,
	}
}

// Rows returns the run details as label/value pairs in display order.
func (r RunDetails) Rows() [][2]string {
	return [][2]string{
		{"Game", r.Game},
		{"Strategy", r.Strategy},
		{"Tickets generated", strconv.Itoa(r.TicketCount)},
		{"Seed", strconv.FormatInt(r.Seed, 10)},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05 UTC")},
		{"Report version", r.ReportVersion},
	}
}

// BandSummary aggregates one classification band for the summary table.
type BandSummary struct {
	Band        string
	Members     []int
	WeightShare float64 // band weight / total pool weight, 0 when pool weight is 0
}

// SummarizeBands computes the main-pool band summaries from an estimation
// result. Order: hot, warm, cold.
func SummarizeBands(bands *lotto.Bands) []BandSummary {
	total := bands.MainWeights.TotalWeight()
	share := func(members []int) float64 {
		if total == 0 {
			return 0
		}
		sum := 0.0
		for _, n := range members {
			sum += bands.MainWeights[n]
		}
		return sum / total
	}
	return []BandSummary{
		{Band: "hot", Members: bands.Main.Hot, WeightShare: share(bands.Main.Hot)},
		{Band: "warm", Members: bands.Main.Warm, WeightShare: share(bands.Main.Warm)},
		{Band: "cold", Members: bands.Main.Cold, WeightShare: share(bands.Main.Cold)},
	}
}

// WriteTicketsCSV writes the generated ticket pack as CSV: one row per
// ticket with a label column, the joined main numbers, and the special
// number column when the game has one.
func WriteTicketsCSV(w io.Writer, profile lotto.GameProfile, tickets []lotto.Ticket) error {
	cw := csv.NewWriter(w)

	header := []string{"ticket", "numbers"}
	if profile.HasSpecial() {
		header = append(header, "special")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, t := range tickets {
		row := []string{
			fmt.Sprintf("%s %d", titleCase(profile.Name), i+1),
			joinNumbers(t.MainNumbers),
		}
		if profile.HasSpecial() {
			row = append(row, strconv.Itoa(t.SpecialNumber))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteClassificationCSV writes the hot/warm/cold summary table as CSV.
func WriteClassificationCSV(w io.Writer, bands *lotto.Bands) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"band", "numbers", "weight_share"}); err != nil {
		return err
	}
	for _, s := range SummarizeBands(bands) {
		row := []string{s.Band, joinNumbers(s.Members), fmt.Sprintf("%.4f", s.WeightShare)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinNumbers(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
