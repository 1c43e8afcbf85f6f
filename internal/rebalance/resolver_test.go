package rebalance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-rebalancer/internal/models"
)

func testResolver() *Resolver {
	conditions := []models.MarketCondition{
		{Type: models.ConditionTypeSecurity, Name: "AAPL", Condition: models.ConditionPositive},
		{Type: models.ConditionTypeSecurity, Name: "MSFT", Condition: models.ConditionNegative},
		{Type: models.ConditionTypeSector, Name: "Energy", Condition: models.ConditionNegative},
		{Type: models.ConditionTypeSector, Name: "Information Technology", Condition: models.ConditionPositive},
	}
	sectors := []models.SectorMapping{
		{Symbol: "AAPL", GICSSector: "Information Technology"},
		{Symbol: "MSFT", GICSSector: "Information Technology"},
		{Symbol: "XOM", GICSSector: "Energy"},
		{Symbol: "CVX", GICSSector: "Energy"},
		{Symbol: "ZZZZ", GICSSector: "Utilities"},
	}
	return NewResolver(conditions, sectors)
}

func TestResolveSecurityCondition(t *testing.T) {
	t.Parallel()

	r := testResolver()
	assert.Equal(t, models.ConditionPositive, r.Resolve("AAPL"))
}

func TestResolveSecurityBeatsSector(t *testing.T) {
	t.Parallel()

	// MSFT has a Negative security condition while its sector is Positive;
	// the security condition must win.
	r := testResolver()
	assert.Equal(t, models.ConditionNegative, r.Resolve("MSFT"))
	assert.Equal(t, models.TradeSell, r.Action("MSFT"))
}

func TestResolveSectorFallback(t *testing.T) {
	t.Parallel()

	// XOM has no security condition but maps to Energy (Negative).
	r := testResolver()
	assert.Equal(t, models.ConditionNegative, r.Resolve("XOM"))
	assert.Equal(t, models.TradeSell, r.Action("XOM"))
}

func TestResolveUnknownTicker(t *testing.T) {
	t.Parallel()

	r := testResolver()
	assert.Equal(t, models.ConditionUnknown, r.Resolve("NOPE"))
	assert.Equal(t, models.TradeHold, r.Action("NOPE"))
}

func TestResolveSectorWithoutCondition(t *testing.T) {
	t.Parallel()

	// ZZZZ maps to Utilities, which has no sector condition.
	r := testResolver()
	assert.Equal(t, models.ConditionUnknown, r.Resolve("ZZZZ"))
	assert.Equal(t, models.TradeHold, r.Action("ZZZZ"))
}

func TestActionMapping(t *testing.T) {
	t.Parallel()

	r := testResolver()
	assert.Equal(t, models.TradeBuy, r.Action("AAPL"))
	assert.Equal(t, models.TradeSell, r.Action("CVX"))
}
