package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-rebalancer/internal/dataset"
)

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	summary := Summarize(dataset.New([]string{"Account_ID"}, nil))

	assert.Zero(t, summary.Count)
	assert.Empty(t, summary.Accounts)
	assert.Nil(t, summary.Statistics)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	summary := Summarize(testAccounts())

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, []string{"A1", "A2", "A3", "A4"}, summary.Accounts)

	require.NotNil(t, summary.Statistics)
	require.NotNil(t, summary.Statistics.AvgAge)
	assert.InDelta(t, (34.0+58+42+29)/4, *summary.Statistics.AvgAge, 1e-9)

	// A3's income is "N/A" and is skipped by the average.
	require.NotNil(t, summary.Statistics.AvgAnnualIncome)
	assert.InDelta(t, (150000.0+90000+120000)/3, *summary.Statistics.AvgAnnualIncome, 1e-9)

	assert.Equal(t, map[string]int{"Aggressive": 1, "Conservative": 1, "Moderate": 2}, summary.Statistics.RiskDistribution)
	assert.Equal(t, map[string]int{"NY": 2, "CA": 1, "NJ": 1}, summary.Statistics.StateDistribution)
	assert.Empty(t, summary.Statistics.TimeHorizonDistribution)
}

func TestSummarizeMissingColumns(t *testing.T) {
	t.Parallel()

	tbl := dataset.New(
		[]string{"Account_ID", "State"},
		[]dataset.Row{
			{"Account_ID": "A1", "State": "NY"},
		},
	)

	summary := Summarize(tbl)

	assert.Equal(t, 1, summary.Count)
	require.NotNil(t, summary.Statistics)
	assert.Nil(t, summary.Statistics.AvgAge)
	assert.Nil(t, summary.Statistics.AvgAnnualIncome)
	assert.Nil(t, summary.Statistics.RiskDistribution)
	assert.Equal(t, map[string]int{"NY": 1}, summary.Statistics.StateDistribution)
}
