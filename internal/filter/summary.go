package filter

import (
	"portfolio-rebalancer/internal/dataset"
	"portfolio-rebalancer/internal/models"
)

// Summarize computes aggregate statistics over a filtered account set. An
// empty input yields a zero-count summary without statistics. Statistics
// whose source column is absent from the dataset are omitted; missing
// columns never cause an error.
func Summarize(tbl dataset.Table) models.Summary {
	summary := models.Summary{
		Count:    tbl.Len(),
		Accounts: []string{},
	}
	if tbl.Empty() {
		return summary
	}

	summary.Accounts = tbl.Column("Account_ID")

	stats := &models.Statistics{}
	if tbl.HasColumn("Age") {
		stats.AvgAge = columnMean(tbl, "Age")
	}
	if tbl.HasColumn("Annual_Income") {
		stats.AvgAnnualIncome = columnMean(tbl, "Annual_Income")
	}
	if tbl.HasColumn("Risk_Tolerance") {
		stats.RiskDistribution = columnCounts(tbl, "Risk_Tolerance")
	}
	if tbl.HasColumn("State") {
		stats.StateDistribution = columnCounts(tbl, "State")
	}
	if tbl.HasColumn("Time_Horizon") {
		stats.TimeHorizonDistribution = columnCounts(tbl, "Time_Horizon")
	}
	summary.Statistics = stats

	return summary
}

// columnMean averages the numeric cells of a column, ignoring cells that do
// not parse. Returns nil when no cell is numeric.
func columnMean(tbl dataset.Table, column string) *float64 {
	var sum float64
	var n int
	for _, row := range tbl.Rows() {
		if v, ok := row.Float(column); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// columnCounts tallies occurrences of each distinct value in a column.
func columnCounts(tbl dataset.Table, column string) map[string]int {
	counts := make(map[string]int)
	for _, v := range tbl.Column(column) {
		counts[v]++
	}
	return counts
}
