package rebalance

import (
	"github.com/rs/zerolog"

	"portfolio-rebalancer/internal/dataset"
	apperrors "portfolio-rebalancer/internal/errors"
	"portfolio-rebalancer/internal/filter"
	"portfolio-rebalancer/internal/logging"
	"portfolio-rebalancer/internal/models"
)

// PipelineData bundles the loaded input tables. All tables are treated as
// immutable for the lifetime of the pipeline.
type PipelineData struct {
	Accounts   dataset.Table
	Holdings   []models.Holding
	Conditions []models.MarketCondition
	Sectors    []models.SectorMapping
	Requests   []models.RebalanceRequest
}

// Pipeline runs the filter → join → resolve → recommend transform. It holds
// the static reference tables and the loaded request set; every request is
// processed independently against the full, unmodified accounts table.
type Pipeline struct {
	data     PipelineData
	engine   *filter.Engine
	resolver *Resolver
	logger   zerolog.Logger
}

// NewPipeline creates a pipeline over the loaded data.
func NewPipeline(data PipelineData, engine *filter.Engine, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		data:     data,
		engine:   engine,
		resolver: NewResolver(data.Conditions, data.Sectors),
		logger:   logger,
	}
}

// Resolver exposes the market condition resolver built from the loaded
// reference tables.
func (p *Pipeline) Resolver() *Resolver {
	return p.resolver
}

// Requests returns the loaded rebalance requests in load order.
func (p *Pipeline) Requests() []models.RebalanceRequest {
	return p.data.Requests
}

func (p *Pipeline) findRequest(requestID string) (models.RebalanceRequest, bool) {
	for _, req := range p.data.Requests {
		if req.RequestIdentifier == requestID {
			return req, true
		}
	}
	return models.RebalanceRequest{}, false
}

// FilterAccounts applies a request's criteria to the full accounts table.
// Unknown request IDs yield ErrRequestNotFound.
func (p *Pipeline) FilterAccounts(requestID string) (dataset.Table, error) {
	request, ok := p.findRequest(requestID)
	if !ok {
		return dataset.Table{}, apperrors.ErrRequestNotFound
	}
	return p.engine.Filter(p.data.Accounts, request.Criteria), nil
}

// ProcessRequest filters accounts for one request and summarizes the match
// set.
func (p *Pipeline) ProcessRequest(requestID string) (models.Summary, error) {
	filtered, err := p.FilterAccounts(requestID)
	if err != nil {
		return models.Summary{}, err
	}
	p.logger.Info().
		Str("request_id", requestID).
		Int("matched", filtered.Len()).
		Msg("Filtered accounts")
	return filter.Summarize(filtered), nil
}

// RequestResult is the outcome of one request in a batch run.
type RequestResult struct {
	Summary models.Summary
	Err     error
}

// ProcessAll processes every loaded request. Requests are independent: a
// failing request is reported in its result and never aborts the batch.
func (p *Pipeline) ProcessAll() map[string]RequestResult {
	results := make(map[string]RequestResult, len(p.data.Requests))
	for _, request := range p.data.Requests {
		requestID := request.RequestIdentifier
		summary, err := p.ProcessRequest(requestID)
		results[requestID] = RequestResult{Summary: summary, Err: err}
	}
	return results
}

// AccountHoldings returns the holdings breakdown for the accounts matching
// a request. A request matching no accounts yields ErrNoMatches.
func (p *Pipeline) AccountHoldings(requestID string) (models.HoldingsBreakdown, error) {
	filtered, err := p.FilterAccounts(requestID)
	if err != nil {
		return models.HoldingsBreakdown{}, err
	}
	if filtered.Empty() {
		return models.HoldingsBreakdown{}, apperrors.ErrNoMatches
	}

	accountIDs := filtered.Column("Account_ID")
	return models.HoldingsBreakdown{
		RequestID:       requestID,
		MatchedAccounts: len(accountIDs),
		AccountHoldings: HoldingsFor(accountIDs, p.data.Holdings),
	}, nil
}

// Generate produces the trade recommendation for a request. For every
// account surviving the filter, each holding is resolved to a trade action:
// Positive conditions buy the held quantity, Negative conditions sell it,
// anything else emits no trade. Accounts whose holdings all resolve to HOLD
// are dropped from the output entirely.
func (p *Pipeline) Generate(requestID string) (models.TradeRecommendation, error) {
	filtered, err := p.FilterAccounts(requestID)
	if err != nil {
		return models.TradeRecommendation{}, err
	}

	byAccount := indexHoldings(p.data.Holdings)
	logger := logging.WithRequest(p.logger, requestID)

	recommendation := models.TradeRecommendation{
		RequestIdentifier: requestID,
		Accounts:          []models.AccountTrades{},
	}

	for _, accountID := range filtered.Column("Account_ID") {
		var trades []models.Trade
		for _, holding := range byAccount[accountID] {
			action := p.resolver.Action(holding.Ticker)
			if action == models.TradeHold {
				continue
			}
			trades = append(trades, models.Trade{
				Ticker:           holding.Ticker,
				Qty:              int(holding.Qty),
				RecommendedTrade: action,
			})
		}
		if len(trades) == 0 {
			continue
		}
		recommendation.Accounts = append(recommendation.Accounts, models.AccountTrades{
			AccountID: accountID,
			Trades:    trades,
		})
	}

	logger.Info().
		Int("accounts", len(recommendation.Accounts)).
		Msg("Generated trade recommendation")

	return recommendation, nil
}
