// Package rebalance joins filtered accounts against holdings and market
// conditions to produce per-account trade recommendations.
package rebalance

import (
	"portfolio-rebalancer/internal/models"
)

// Resolver looks up the market condition for a ticker. Resolution is
// two-stage: a Security-type condition for the ticker itself always wins;
// otherwise the ticker's GICS sector is looked up as a Sector-type
// condition. Tickers with neither resolve to unknown.
type Resolver struct {
	security     map[string]models.Condition
	sector       map[string]models.Condition
	tickerSector map[string]string
}

// NewResolver builds the lookup tables from the market conditions and
// sector reference tables.
func NewResolver(conditions []models.MarketCondition, sectors []models.SectorMapping) *Resolver {
	r := &Resolver{
		security:     make(map[string]models.Condition),
		sector:       make(map[string]models.Condition),
		tickerSector: make(map[string]string),
	}
	for _, c := range conditions {
		switch c.Type {
		case models.ConditionTypeSecurity:
			r.security[c.Name] = c.Condition
		case models.ConditionTypeSector:
			r.sector[c.Name] = c.Condition
		}
	}
	for _, s := range sectors {
		r.tickerSector[s.Symbol] = s.GICSSector
	}
	return r
}

// Resolve returns the condition for a ticker, security level first, sector
// level as fallback.
func (r *Resolver) Resolve(ticker string) models.Condition {
	condition := r.security[ticker]
	if condition == models.ConditionUnknown {
		if sector, ok := r.tickerSector[ticker]; ok {
			condition = r.sector[sector]
		}
	}
	return condition
}

// Action maps the resolved condition for a ticker to a trade action.
// Unknown conditions map to HOLD, which the recommender suppresses.
func (r *Resolver) Action(ticker string) models.TradeAction {
	switch r.Resolve(ticker) {
	case models.ConditionPositive:
		return models.TradeBuy
	case models.ConditionNegative:
		return models.TradeSell
	default:
		return models.TradeHold
	}
}
