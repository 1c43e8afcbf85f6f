package rebalance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-rebalancer/internal/dataset"
	"portfolio-rebalancer/internal/models"
)

func testHoldings() []models.Holding {
	return []models.Holding{
		{AccountID: "A1", Ticker: "AAPL", Qty: 10, Price: 150, PositionTotal: 1500},
		{AccountID: "A1", Ticker: "XOM", Qty: 5, Price: 100, PositionTotal: 500},
		{AccountID: "A2", Ticker: "MSFT", Qty: 20, Price: 300, PositionTotal: 6000},
	}
}

func TestJoinHoldingsLeftOuter(t *testing.T) {
	t.Parallel()

	accounts := dataset.New(
		[]string{"Account_ID"},
		[]dataset.Row{
			{"Account_ID": "A1"},
			{"Account_ID": "A3"}, // no holdings
			{"Account_ID": "A2"},
		},
	)

	joined := JoinHoldings(accounts, testHoldings())
	require.Len(t, joined, 4)

	// A1's two holdings, in holdings order.
	assert.Equal(t, "A1", joined[0].Account["Account_ID"])
	require.NotNil(t, joined[0].Holding)
	assert.Equal(t, "AAPL", joined[0].Holding.Ticker)
	require.NotNil(t, joined[1].Holding)
	assert.Equal(t, "XOM", joined[1].Holding.Ticker)

	// A3 survives the left join with nil holding fields.
	assert.Equal(t, "A3", joined[2].Account["Account_ID"])
	assert.Nil(t, joined[2].Holding)

	assert.Equal(t, "A2", joined[3].Account["Account_ID"])
	require.NotNil(t, joined[3].Holding)
	assert.Equal(t, "MSFT", joined[3].Holding.Ticker)
}

func TestHoldingsFor(t *testing.T) {
	t.Parallel()

	breakdown := HoldingsFor([]string{"A1", "A2"}, testHoldings())

	require.Contains(t, breakdown, "A1")
	a1 := breakdown["A1"]
	assert.Equal(t, 2, a1.PositionCount)
	assert.InDelta(t, 2000, a1.TotalValue, 1e-9)
	require.Len(t, a1.Positions, 2)
	assert.Equal(t, "AAPL", a1.Positions[0].Ticker)
	assert.Equal(t, "XOM", a1.Positions[1].Ticker)

	a2 := breakdown["A2"]
	assert.Equal(t, 1, a2.PositionCount)
	assert.InDelta(t, 6000, a2.TotalValue, 1e-9)
}

func TestHoldingsForOmitsEmptyAccounts(t *testing.T) {
	t.Parallel()

	// A3 has no holdings: it must be absent from the map, not present with
	// an empty entry.
	breakdown := HoldingsFor([]string{"A1", "A3"}, testHoldings())

	assert.Contains(t, breakdown, "A1")
	assert.NotContains(t, breakdown, "A3")
	assert.Len(t, breakdown, 1)
}
