package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartplay-ai/smartplay/lotto"
)

func TestRunDetails_Rows(t *testing.T) {
	details := NewRunDetails("lotto", lotto.StrategyBlend, 5, 42)
	rows := details.Rows()

	require.Len(t, rows, 6)
	assert.Equal(t, [2]string{"Game", "lotto"}, rows[0])
	assert.Equal(t, [2]string{"Strategy", "blend"}, rows[1])
	assert.Equal(t, [2]string{"Tickets generated", "5"}, rows[2])
	assert.Equal(t, [2]string{"Seed", "42"}, rows[3])
	assert.Equal(t, [2]string{"Report version", Version}, rows[5])
}

func TestSummarizeBands_SharesSumToOne(t *testing.T) {
	profile := lotto.GameProfile{Name: "lotto", MainPoolSize: 38, MainPickCount: 6, SpecialPoolSize: 38, SpecialPickCount: 1}
	est, err := lotto.NewEstimator(profile, lotto.DefaultEstimatorConfig())
	require.NoError(t, err)

	bands := est.Classify(nil, lotto.NewPartitionedRNG(lotto.NewDrawKey(42)))
	summaries := SummarizeBands(bands)

	require.Len(t, summaries, 3)
	assert.Equal(t, "hot", summaries[0].Band)
	assert.Equal(t, "warm", summaries[1].Band)
	assert.Equal(t, "cold", summaries[2].Band)

	total := 0.0
	for _, s := range summaries {
		assert.GreaterOrEqual(t, s.WeightShare, 0.0)
		total += s.WeightShare
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	// Hot numbers carry more recency weight than cold numbers.
	assert.Greater(t, summaries[0].WeightShare, summaries[2].WeightShare)
}

func TestSummarizeBands_ZeroWeights(t *testing.T) {
	bands := &lotto.Bands{
		Main:        lotto.Classification{Hot: []int{1}, Warm: []int{2}, Cold: []int{3}},
		MainWeights: lotto.NewFrequencyTable(3),
	}

	for _, s := range SummarizeBands(bands) {
		assert.Zero(t, s.WeightShare)
	}
}

func TestWriteTicketsCSV(t *testing.T) {
	profile := lotto.GameProfile{Name: "super", MainPoolSize: 35, MainPickCount: 5, SpecialPoolSize: 10, SpecialPickCount: 1}
	tickets := []lotto.Ticket{
		{MainNumbers: []int{3, 14, 18, 24, 28}, SpecialNumber: 7},
		{MainNumbers: []int{5, 9, 19, 27, 33}, SpecialNumber: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTicketsCSV(&buf, profile, tickets))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ticket", "numbers", "special"}, rows[0])
	assert.Equal(t, []string{"Super 1", "3, 14, 18, 24, 28", "7"}, rows[1])
	assert.Equal(t, []string{"Super 2", "5, 9, 19, 27, 33", "2"}, rows[2])
}

func TestWriteTicketsCSV_NoSpecialColumn(t *testing.T) {
	profile := lotto.GameProfile{Name: "plain", MainPoolSize: 20, MainPickCount: 3}
	tickets := []lotto.Ticket{{MainNumbers: []int{4, 9, 17}}}

	var buf bytes.Buffer
	require.NoError(t, WriteTicketsCSV(&buf, profile, tickets))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ticket", "numbers"}, rows[0])
	assert.Equal(t, []string{"Plain 1", "4, 9, 17"}, rows[1])
}

func TestWriteClassificationCSV(t *testing.T) {
	bands := &lotto.Bands{
		Main: lotto.Classification{Hot: []int{1, 2}, Warm: []int{3}, Cold: []int{4}},
		MainWeights: lotto.FrequencyTable{
			1: 2.0, 2: 1.0, 3: 0.5, 4: 0.5,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClassificationCSV(&buf, bands))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"band", "numbers", "weight_share"}, rows[0])
	assert.Equal(t, []string{"hot", "1, 2", "0.7500"}, rows[1])
	assert.Equal(t, []string{"warm", "3", "0.1250"}, rows[2])
	assert.Equal(t, []string{"cold", "4", "0.1250"}, rows[3])
}
