// Package sentiment exposes the LLM-backed news sentiment extractor as a
// narrow text→entities collaborator. The rest of the system depends only on
// the Extractor interface.
package sentiment

import (
	"context"

	"portfolio-rebalancer/internal/models"
)

// EntityType classifies an extracted entity.
type EntityType string

const (
	EntityCompany EntityType = "Company"
	EntitySector  EntityType = "Sector"
)

// Sentiment is the extracted directional signal for an entity.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Entity is one extracted entity/sentiment pair. Name is a ticker for
// companies and a GICS sector label for sectors.
type Entity struct {
	Name      string     `json:"name"`
	Type      EntityType `json:"type"`
	Sentiment Sentiment  `json:"sentiment"`
}

// MarketCondition converts a non-neutral entity into a market conditions
// row, so extractor output can feed the condition resolver. Neutral
// entities return false: they carry no trade bias.
func (e Entity) MarketCondition() (models.MarketCondition, bool) {
	var condition models.Condition
	switch e.Sentiment {
	case SentimentPositive:
		condition = models.ConditionPositive
	case SentimentNegative:
		condition = models.ConditionNegative
	default:
		return models.MarketCondition{}, false
	}

	conditionType := models.ConditionTypeSecurity
	if e.Type == EntitySector {
		conditionType = models.ConditionTypeSector
	}

	return models.MarketCondition{
		Type:      conditionType,
		Name:      e.Name,
		Condition: condition,
	}, true
}

// Extractor extracts entity sentiments from an article text.
type Extractor interface {
	Extract(ctx context.Context, articleText string) ([]Entity, error)
}
