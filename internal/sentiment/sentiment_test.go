package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-rebalancer/internal/models"
)

func TestParseEntitiesWrappedObject(t *testing.T) {
	t.Parallel()

	raw := `{"entities": [
		{"name": "AAPL", "type": "Company", "sentiment": "Positive"},
		{"name": "Energy", "type": "Sector", "sentiment": "Negative"}
	]}`

	entities, err := parseEntities(raw)
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, Entity{Name: "AAPL", Type: EntityCompany, Sentiment: SentimentPositive}, entities[0])
	assert.Equal(t, Entity{Name: "Energy", Type: EntitySector, Sentiment: SentimentNegative}, entities[1])
}

func TestParseEntitiesBareArray(t *testing.T) {
	t.Parallel()

	raw := `[{"name": "MSFT", "type": "Company", "sentiment": "Neutral"}]`

	entities, err := parseEntities(raw)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, SentimentNeutral, entities[0].Sentiment)
}

func TestParseEntitiesNormalizesAndDrops(t *testing.T) {
	t.Parallel()

	raw := `{"entities": [
		{"name": "AAPL", "type": "Company", "sentiment": "Bullish"},
		{"name": "Gold", "type": "Commodity", "sentiment": "Positive"},
		{"name": "", "type": "Company", "sentiment": "Positive"}
	]}`

	entities, err := parseEntities(raw)
	require.NoError(t, err)

	// Unknown sentiment normalizes to Neutral; unknown entity types and
	// unnamed entities are dropped.
	require.Len(t, entities, 1)
	assert.Equal(t, "AAPL", entities[0].Name)
	assert.Equal(t, SentimentNeutral, entities[0].Sentiment)
}

func TestParseEntitiesInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := parseEntities(`{"entities": [`)
	assert.Error(t, err)
}

func TestEntityMarketCondition(t *testing.T) {
	t.Parallel()

	company := Entity{Name: "AAPL", Type: EntityCompany, Sentiment: SentimentPositive}
	mc, ok := company.MarketCondition()
	require.True(t, ok)
	assert.Equal(t, models.MarketCondition{
		Type:      models.ConditionTypeSecurity,
		Name:      "AAPL",
		Condition: models.ConditionPositive,
	}, mc)

	sector := Entity{Name: "Energy", Type: EntitySector, Sentiment: SentimentNegative}
	mc, ok = sector.MarketCondition()
	require.True(t, ok)
	assert.Equal(t, models.ConditionTypeSector, mc.Type)
	assert.Equal(t, models.ConditionNegative, mc.Condition)

	neutral := Entity{Name: "MSFT", Type: EntityCompany, Sentiment: SentimentNeutral}
	_, ok = neutral.MarketCondition()
	assert.False(t, ok)
}
