package lotto

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// FrequencyTable maps a pool number to its accumulated recency weight.
// Built fresh per estimation call; never persisted.
type FrequencyTable map[int]float64

// NewFrequencyTable returns a table with every number in [1, poolSize] at
// weight zero, so unseen numbers rank (and tie-break) deterministically.
func NewFrequencyTable(poolSize int) FrequencyTable {
	ft := make(FrequencyTable, poolSize)
	for n := 1; n <= poolSize; n++ {
		ft[n] = 0
	}
	return ft
}

// TotalWeight sums the accumulated weight across the pool.
func (ft FrequencyTable) TotalWeight() float64 {
	total := 0.0
	for _, w := range ft {
		total += w
	}
	return total
}

// Classification partitions a pool into hot, warm, and cold bands.
// The bands are disjoint, cover [1, poolSize] exactly, and each slice is
// sorted ascending. Warm may be empty when hot+cold cover the whole pool.
type Classification struct {
	Hot  []int
	Warm []int
	Cold []int
}

// Bands is the full estimation result for a game: the main-pool
// classification, the special-pool classification when the game has one,
// and the underlying weight tables for the report layer.
type Bands struct {
	Main           Classification
	Special        Classification
	MainWeights    FrequencyTable
	SpecialWeights FrequencyTable
	Simulated      bool // history was simulated rather than supplied
}

// Estimator converts an ordered draw history into hot/warm/cold bands.
// Construct once per (profile, config) pair; Classify is a pure function of
// its inputs plus the injected RNG (used only for the simulation fallback).
type Estimator struct {
	profile GameProfile
	cfg     EstimatorConfig
}

// NewEstimator validates the configuration and returns an Estimator.
func NewEstimator(profile GameProfile, cfg EstimatorConfig) (*Estimator, error) {
	if err := cfg.Validate(profile); err != nil {
		return nil, err
	}
	return &Estimator{profile: profile, cfg: cfg}, nil
}

// Classify computes the hot/warm/cold bands from history, ordered
// oldest to newest. Only the last Lookback records contribute. An empty
// history is not an error: a synthetic run of Lookback draws is simulated on
// the isolated history RNG stream and flagged via Bands.Simulated.
func (e *Estimator) Classify(history []DrawRecord, rng *PartitionedRNG) *Bands {
	bands := &Bands{}

	if len(history) == 0 {
		logrus.Infof("no draw history for %q; simulating %d draws", e.profile.Name, e.cfg.Lookback)
		history = SimulateHistory(e.profile, e.cfg.Lookback, rng)
		bands.Simulated = true
	}
	if len(history) > e.cfg.Lookback {
		history = history[len(history)-e.cfg.Lookback:]
	}

	bands.MainWeights = NewFrequencyTable(e.profile.MainPoolSize)
	for i, rec := range history {
		factor := math.Pow(e.cfg.Decay, float64(len(history)-1-i))
		for _, v := range rec.MainNumbers {
			if v >= 1 && v <= e.profile.MainPoolSize {
				bands.MainWeights[v] += factor
			}
		}
	}
	bands.Main = classifyPool(bands.MainWeights, e.profile.MainPoolSize,
		e.profile.MainPickCount, e.cfg.HotFraction, e.cfg.ColdFraction)

	if e.profile.HasSpecial() {
		bands.SpecialWeights = NewFrequencyTable(e.profile.SpecialPoolSize)
		for i, rec := range history {
			factor := math.Pow(e.cfg.Decay, float64(len(history)-1-i))
			if rec.SpecialNumber >= 1 && rec.SpecialNumber <= e.profile.SpecialPoolSize {
				bands.SpecialWeights[rec.SpecialNumber] += factor
			}
		}
		bands.Special = classifyPool(bands.SpecialWeights, e.profile.SpecialPoolSize,
			max(e.profile.SpecialPickCount, e.cfg.SpecialBand), e.cfg.HotFraction, e.cfg.ColdFraction)
	}

	return bands
}

// classifyPool ranks numbers by weight descending (ties broken by ascending
// numeric value, never map order) and slices the ranking into bands.
// hotCount = max(minBand, ceil(poolSize*hotFraction)); coldCount likewise,
// clamped so the bands never overlap.
func classifyPool(weights FrequencyTable, poolSize, minBand int, hotFraction, coldFraction float64) Classification {
	ranked := make([]int, poolSize)
	for n := 1; n <= poolSize; n++ {
		ranked[n-1] = n
	}
	sort.Slice(ranked, func(i, j int) bool {
		wi, wj := weights[ranked[i]], weights[ranked[j]]
		if wi != wj {
			return wi > wj
		}
		return ranked[i] < ranked[j]
	})

	hotCount := max(minBand, int(math.Ceil(float64(poolSize)*hotFraction)))
	hotCount = min(hotCount, poolSize)
	coldCount := max(minBand, int(math.Ceil(float64(poolSize)*coldFraction)))
	coldCount = min(coldCount, poolSize-hotCount)

	c := Classification{
		Hot:  append([]int(nil), ranked[:hotCount]...),
		Warm: append([]int(nil), ranked[hotCount:poolSize-coldCount]...),
		Cold: append([]int(nil), ranked[poolSize-coldCount:]...),
	}
	sort.Ints(c.Hot)
	sort.Ints(c.Warm)
	sort.Ints(c.Cold)
	return c
}
