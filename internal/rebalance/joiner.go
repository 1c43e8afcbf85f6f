package rebalance

import (
	"portfolio-rebalancer/internal/dataset"
	"portfolio-rebalancer/internal/models"
)

// JoinedRow is one row of the accounts⟕holdings left outer join. Holding is
// nil for accounts without any position.
type JoinedRow struct {
	Account dataset.Row
	Holding *models.Holding
}

// JoinHoldings left-joins filtered accounts with their holdings on
// Account_ID = AccountID. Account order follows the table; holding order
// follows the holdings slice. Accounts without holdings contribute a single
// row with a nil Holding.
func JoinHoldings(accounts dataset.Table, holdings []models.Holding) []JoinedRow {
	byAccount := indexHoldings(holdings)

	var joined []JoinedRow
	for _, row := range accounts.Rows() {
		accountID := row["Account_ID"]
		positions := byAccount[accountID]
		if len(positions) == 0 {
			joined = append(joined, JoinedRow{Account: row})
			continue
		}
		for i := range positions {
			joined = append(joined, JoinedRow{Account: row, Holding: &positions[i]})
		}
	}
	return joined
}

// HoldingsFor returns the per-account holdings breakdown for the given
// account IDs. Accounts with zero holdings do not appear in the result at
// all, as opposed to appearing with an empty position list.
func HoldingsFor(accountIDs []string, holdings []models.Holding) map[string]models.AccountHoldings {
	byAccount := indexHoldings(holdings)

	out := make(map[string]models.AccountHoldings)
	for _, accountID := range accountIDs {
		positions := byAccount[accountID]
		if len(positions) == 0 {
			continue
		}
		ah := models.AccountHoldings{
			Positions:     make([]models.Position, 0, len(positions)),
			PositionCount: len(positions),
		}
		for _, h := range positions {
			ah.Positions = append(ah.Positions, models.Position{
				Ticker:        h.Ticker,
				Qty:           h.Qty,
				Price:         h.Price,
				PositionTotal: h.PositionTotal,
			})
			ah.TotalValue += h.PositionTotal
		}
		out[accountID] = ah
	}
	return out
}

// indexHoldings groups holdings by account, preserving source order within
// each account.
func indexHoldings(holdings []models.Holding) map[string][]models.Holding {
	byAccount := make(map[string][]models.Holding)
	for _, h := range holdings {
		byAccount[h.AccountID] = append(byAccount[h.AccountID], h)
	}
	return byAccount
}
