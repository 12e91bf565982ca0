package lotto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lottoProfile() GameProfile {
	return GameProfile{Name: "lotto", MainPoolSize: 38, MainPickCount: 6, SpecialPoolSize: 38, SpecialPickCount: 1}
}

func TestNewGenerator_InvalidConfiguration(t *testing.T) {
	badSum := [2]int{50, 10}
	badParity := 9

	tests := []struct {
		name    string
		profile GameProfile
		cfg     GeneratorConfig
	}{
		{"pick exceeds pool", testProfile(5, 6), DefaultGeneratorConfig(StrategyNone)},
		{"unknown strategy", testProfile(38, 6), GeneratorConfig{Strategy: "lucky", RetryBudget: 10}},
		{"probability above one", testProfile(38, 6), GeneratorConfig{Strategy: StrategyBlend, OverdueProbability: 1.5, RetryBudget: 10}},
		{"zero retry budget", testProfile(38, 6), GeneratorConfig{Strategy: StrategyNone}},
		{"empty sum range", testProfile(38, 6), GeneratorConfig{Strategy: StrategyNone, SumRange: &badSum, RetryBudget: 10}},
		{"parity beyond pick count", testProfile(38, 6), GeneratorConfig{Strategy: StrategyNone, ParityTarget: &badParity, RetryBudget: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.profile, tt.cfg, NewDrawKey(1))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestGenerator_TicketShape(t *testing.T) {
	g, err := NewGenerator(lottoProfile(), DefaultGeneratorConfig(StrategyNone), NewDrawKey(42))
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		ticket := g.Ticket(nil)
		require.Len(t, ticket.MainNumbers, 6)
		for _, v := range ticket.MainNumbers {
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, 38)
		}
		assert.GreaterOrEqual(t, ticket.SpecialNumber, 1)
		assert.LessOrEqual(t, ticket.SpecialNumber, 38)
	}
}

func TestGenerator_SeedReproducibility(t *testing.T) {
	run := func() ([]Ticket, *Bands) {
		est, err := NewEstimator(lottoProfile(), DefaultEstimatorConfig())
		require.NoError(t, err)
		g, err := NewGenerator(lottoProfile(), DefaultGeneratorConfig(StrategyBlend), NewDrawKey(42))
		require.NoError(t, err)

		bands := est.Classify(nil, g.RNG())
		return g.Tickets(10, &bands.Main), bands
	}

	tickets1, bands1 := run()
	tickets2, bands2 := run()

	assert.Equal(t, bands1, bands2)
	assert.Equal(t, tickets1, tickets2)
}

func TestGenerator_DifferentSeedsDiverge(t *testing.T) {
	gen := func(seed int64) []Ticket {
		g, err := NewGenerator(lottoProfile(), DefaultGeneratorConfig(StrategyNone), NewDrawKey(seed))
		require.NoError(t, err)
		return g.Tickets(10, nil)
	}

	assert.NotEqual(t, gen(1), gen(2))
}

func TestGenerator_NoDuplicateIdentitiesWithinBatch(t *testing.T) {
	g, err := NewGenerator(lottoProfile(), DefaultGeneratorConfig(StrategyNone), NewDrawKey(7))
	require.NoError(t, err)

	tickets := g.Tickets(20, nil)
	require.Len(t, tickets, 20)

	seen := make(map[string]bool)
	for _, ticket := range tickets {
		key := ticket.Key()
		assert.False(t, seen[key], "duplicate identity %s", key)
		seen[key] = true
	}
}

func TestGenerator_ExcludesPriorBatch(t *testing.T) {
	g, err := NewGenerator(lottoProfile(), DefaultGeneratorConfig(StrategyNone), NewDrawKey(7))
	require.NoError(t, err)

	first := g.Tickets(10, nil)
	exclude := make(map[string]struct{}, len(first))
	for _, ticket := range first {
		exclude[ticket.Key()] = struct{}{}
	}

	second := g.TicketsExcluding(10, nil, exclude)
	for _, ticket := range second {
		_, dup := exclude[ticket.Key()]
		assert.False(t, dup, "ticket %s already present in first batch", ticket)
	}
}

func TestGenerator_UnderfillDegradesGracefully(t *testing.T) {
	// A pool of 6 picking 6 admits exactly one distinct ticket: requesting
	// three must return one, with no error and no infinite retry loop.
	profile := testProfile(6, 6)
	g, err := NewGenerator(profile, DefaultGeneratorConfig(StrategyNone), NewDrawKey(1))
	require.NoError(t, err)

	tickets := g.Tickets(3, nil)
	require.Len(t, tickets, 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, tickets[0].MainNumbers)
}

func TestGenerator_ParityConstraint(t *testing.T) {
	parity := 2
	cfg := DefaultGeneratorConfig(StrategyNone)
	cfg.ParityTarget = &parity

	g, err := NewGenerator(testProfile(20, 4), cfg, NewDrawKey(5))
	require.NoError(t, err)

	tickets := g.Tickets(5, nil)
	require.NotEmpty(t, tickets)
	for _, ticket := range tickets {
		even := 0
		for _, v := range ticket.MainNumbers {
			if v%2 == 0 {
				even++
			}
		}
		assert.Equal(t, 2, even, "ticket %s", ticket)
	}
}

func TestGenerator_SumRangeConstraint(t *testing.T) {
	sumRange := [2]int{30, 50}
	cfg := DefaultGeneratorConfig(StrategyNone)
	cfg.SumRange = &sumRange

	g, err := NewGenerator(testProfile(20, 4), cfg, NewDrawKey(5))
	require.NoError(t, err)

	tickets := g.Tickets(5, nil)
	require.NotEmpty(t, tickets)
	for _, ticket := range tickets {
		sum := 0
		for _, v := range ticket.MainNumbers {
			sum += v
		}
		assert.GreaterOrEqual(t, sum, 30, "ticket %s", ticket)
		assert.LessOrEqual(t, sum, 50, "ticket %s", ticket)
	}
}

func TestTicket_KeyIdentity(t *testing.T) {
	a := Ticket{MainNumbers: []int{1, 5, 9}, SpecialNumber: 7}
	b := Ticket{MainNumbers: []int{1, 5, 9}, SpecialNumber: 7}
	c := Ticket{MainNumbers: []int{1, 5, 9}, SpecialNumber: 8}
	d := Ticket{MainNumbers: []int{1, 5, 9}}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.NotEqual(t, a.Key(), d.Key())
}
