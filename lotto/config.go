package lotto

import "fmt"

// Engine defaults. All tunables are explicit configuration so multiple game
// profiles can be evaluated side by side without cross-contamination.
const (
	DefaultLookback           = 120
	DefaultDecay              = 0.97
	DefaultHotFraction        = 0.18
	DefaultColdFraction       = 0.18
	DefaultSpecialBand        = 3
	DefaultMinHotCount        = 2
	DefaultMinColdCount       = 2
	DefaultOverdueProbability = 0.25
	DefaultRetryBudget        = 25
)

// DefaultOverdueCluster returns the curated overdue cluster used by the
// Lotto reports. Members outside a game's pool range are ignored at use time.
func DefaultOverdueCluster() []int {
	return []int{2, 4, 5, 37}
}

// EstimatorConfig tunes recency-weighted frequency estimation.
type EstimatorConfig struct {
	Lookback     int     // truncate history to the last N records
	Decay        float64 // per-draw multiplicative weight reduction, in (0, 1]
	HotFraction  float64 // fraction of the pool classified hot (floored at pick count)
	ColdFraction float64 // fraction of the pool classified cold (floored at pick count)
	SpecialBand  int     // minimum hot/cold band size for the special pool
}

// NewEstimatorConfig creates an EstimatorConfig.
func NewEstimatorConfig(lookback int, decay, hotFraction, coldFraction float64) EstimatorConfig {
	return EstimatorConfig{
		Lookback:     lookback,
		Decay:        decay,
		HotFraction:  hotFraction,
		ColdFraction: coldFraction,
		SpecialBand:  DefaultSpecialBand,
	}
}

// DefaultEstimatorConfig returns the standard estimator settings.
func DefaultEstimatorConfig() EstimatorConfig {
	return NewEstimatorConfig(DefaultLookback, DefaultDecay, DefaultHotFraction, DefaultColdFraction)
}

// Validate checks the estimator settings against a profile.
func (c EstimatorConfig) Validate(profile GameProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if c.Lookback <= 0 {
		return fmt.Errorf("%w: lookback %d must be positive", ErrInvalidConfig, c.Lookback)
	}
	if c.Decay <= 0 || c.Decay > 1 {
		return fmt.Errorf("%w: decay %v outside (0, 1]", ErrInvalidConfig, c.Decay)
	}
	if c.HotFraction < 0 || c.ColdFraction < 0 {
		return fmt.Errorf("%w: negative hot/cold fraction", ErrInvalidConfig)
	}
	return nil
}

// Strategy names a ticket nudging mode.
type Strategy string

const (
	StrategyNone  Strategy = "none"
	StrategyBlend Strategy = "blend"
	StrategyCold  Strategy = "cold"
)

// ParseStrategy resolves a strategy name from the CLI/UI layer.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategyNone, StrategyBlend, StrategyCold:
		return Strategy(name), nil
	case "":
		return StrategyNone, nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, name)
	}
}

// GeneratorConfig tunes ticket generation and strategy nudging.
type GeneratorConfig struct {
	Strategy           Strategy
	MinHotCount        int     // blend: minimum hot members per ticket
	MinColdCount       int     // blend: minimum cold members per ticket
	OverdueCluster     []int   // blend: cluster unioned in with OverdueProbability
	OverdueProbability float64 // in [0, 1]
	ParityTarget       *int    // required count of even main numbers (nil = unconstrained)
	SumRange           *[2]int // inclusive sum bounds for main numbers (nil = unconstrained)
	RetryBudget        int     // sampling attempts per requested ticket before underfilling
}

// DefaultGeneratorConfig returns the generation defaults for a strategy.
func DefaultGeneratorConfig(strategy Strategy) GeneratorConfig {
	return GeneratorConfig{
		Strategy:           strategy,
		MinHotCount:        DefaultMinHotCount,
		MinColdCount:       DefaultMinColdCount,
		OverdueCluster:     DefaultOverdueCluster(),
		OverdueProbability: DefaultOverdueProbability,
		RetryBudget:        DefaultRetryBudget,
	}
}

// Validate checks the generator settings against a profile.
func (c GeneratorConfig) Validate(profile GameProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if c.OverdueProbability < 0 || c.OverdueProbability > 1 {
		return fmt.Errorf("%w: overdue probability %v outside [0, 1]", ErrInvalidConfig, c.OverdueProbability)
	}
	if c.RetryBudget <= 0 {
		return fmt.Errorf("%w: retry budget %d must be positive", ErrInvalidConfig, c.RetryBudget)
	}
	if c.MinHotCount < 0 || c.MinColdCount < 0 {
		return fmt.Errorf("%w: negative hot/cold minimum", ErrInvalidConfig)
	}
	if c.SumRange != nil && c.SumRange[0] > c.SumRange[1] {
		return fmt.Errorf("%w: sum range [%d, %d] is empty", ErrInvalidConfig, c.SumRange[0], c.SumRange[1])
	}
	if c.ParityTarget != nil && (*c.ParityTarget < 0 || *c.ParityTarget > profile.MainPickCount) {
		return fmt.Errorf("%w: parity target %d outside [0, %d]", ErrInvalidConfig, *c.ParityTarget, profile.MainPickCount)
	}
	return nil
}
