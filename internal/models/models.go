// Package models provides domain models for the rebalancing application.
package models

// Operator represents a filter comparison operator.
type Operator string

const (
	OpEqual        Operator = "="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpIn           Operator = "in"
	OpNotIn        Operator = "not in"
)

// Known reports whether the operator is one of the supported kinds.
func (o Operator) Known() bool {
	switch o {
	case OpEqual, OpNotEqual, OpGreater, OpLess, OpGreaterEqual, OpLessEqual, OpIn, OpNotIn:
		return true
	}
	return false
}

// Criterion is a single attribute/operator/value filter predicate.
// Value may be a string, a number, or a list of strings depending on the
// operator; request JSON is decoded as-is.
type Criterion struct {
	Attribute string      `json:"attribute"`
	Operator  Operator    `json:"operator"`
	Value     interface{} `json:"value"`
}

// RebalanceRequest is an external instruction specifying which accounts to
// select via criteria, for the purpose of trade recommendation.
type RebalanceRequest struct {
	RequestIdentifier string      `json:"requestIdentifier"`
	Criteria          []Criterion `json:"accountRebalanceCriterias"`
}

// Holding is a single position record for an account.
type Holding struct {
	AccountID     string  `csv:"AccountID" json:"AccountID"`
	Ticker        string  `csv:"Ticker" json:"Ticker"`
	Qty           float64 `csv:"Qty" json:"Qty"`
	Price         float64 `csv:"Price" json:"Price"`
	PositionTotal float64 `csv:"PositionTotal" json:"PositionTotal"`
}

// ConditionType distinguishes security-level from sector-level conditions.
type ConditionType string

const (
	ConditionTypeSecurity ConditionType = "Security"
	ConditionTypeSector   ConditionType = "Sector"
)

// Condition is a directional market signal.
type Condition string

const (
	ConditionPositive Condition = "Positive"
	ConditionNegative Condition = "Negative"
	// ConditionUnknown is returned when neither a security- nor a
	// sector-level condition exists for a ticker.
	ConditionUnknown Condition = ""
)

// MarketCondition is one row of the market conditions reference table.
type MarketCondition struct {
	Type      ConditionType `csv:"Type" json:"Type"`
	Name      string        `csv:"Name" json:"Name"`
	Condition Condition     `csv:"Condition" json:"Condition"`
}

// SectorMapping maps a ticker symbol to its GICS sector.
type SectorMapping struct {
	Symbol     string `csv:"Symbol" json:"Symbol"`
	GICSSector string `csv:"GICS_Sector" json:"GICS_Sector"`
}

// TradeAction is the recommended direction for a position.
type TradeAction string

const (
	TradeBuy  TradeAction = "BUY"
	TradeSell TradeAction = "SELL"
	// TradeHold positions are suppressed from recommendation output.
	TradeHold TradeAction = "HOLD"
)

// Trade is a single recommended trade for a held position. The recommended
// quantity always equals the current held quantity, not a delta.
type Trade struct {
	Ticker           string      `json:"Ticker"`
	Qty              int         `json:"Qty"`
	RecommendedTrade TradeAction `json:"Recommended_Trade"`
}

// AccountTrades groups the recommended trades for one account.
type AccountTrades struct {
	AccountID string  `json:"Account_ID"`
	Trades    []Trade `json:"trades"`
}

// TradeRecommendation is the full recommendation output for one request.
type TradeRecommendation struct {
	RequestIdentifier string          `json:"requestIdentifier"`
	Accounts          []AccountTrades `json:"accounts"`
}

// Statistics holds aggregate statistics over a filtered account set. A
// statistic is nil when its source column is absent from the dataset.
type Statistics struct {
	AvgAge                  *float64       `json:"avg_age,omitempty"`
	AvgAnnualIncome         *float64       `json:"avg_annual_income,omitempty"`
	RiskDistribution        map[string]int `json:"risk_distribution,omitempty"`
	StateDistribution       map[string]int `json:"state_distribution,omitempty"`
	TimeHorizonDistribution map[string]int `json:"time_horizon_distribution,omitempty"`
}

// Summary is the aggregate result of a filter pass.
type Summary struct {
	Count      int         `json:"count"`
	Accounts   []string    `json:"accounts"`
	Statistics *Statistics `json:"statistics,omitempty"`
}

// Position is one holding row in a per-account breakdown.
type Position struct {
	Ticker        string  `json:"Ticker"`
	Qty           float64 `json:"Qty"`
	Price         float64 `json:"Price"`
	PositionTotal float64 `json:"PositionTotal"`
}

// AccountHoldings is the holdings breakdown for a single account.
type AccountHoldings struct {
	Positions     []Position `json:"positions"`
	TotalValue    float64    `json:"total_value"`
	PositionCount int        `json:"position_count"`
}

// HoldingsBreakdown is the per-account holdings view for a request. Accounts
// with zero holdings are absent from AccountHoldings.
type HoldingsBreakdown struct {
	RequestID       string                     `json:"request_id"`
	MatchedAccounts int                        `json:"matched_accounts"`
	AccountHoldings map[string]AccountHoldings `json:"account_holdings"`
}
