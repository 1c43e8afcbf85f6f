package filter

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"portfolio-rebalancer/internal/dataset"
	"portfolio-rebalancer/internal/models"
)

// Property: for any dataset and criteria list, the filter result is a
// subset of the input preserving relative row order, and filtering is
// idempotent.
func TestProperty_FilterSubsetOrderIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	engine := NewEngine(zerolog.Nop())

	states := []string{"NY", "CA", "NJ", "TX", "FL"}
	risk := []string{"Conservative", "Moderate", "Aggressive"}

	rowGen := gopter.CombineGens(
		gen.IntRange(0, len(states)-1),
		gen.IntRange(0, len(risk)-1),
		gen.IntRange(18, 90),
	).Map(func(vals []interface{}) dataset.Row {
		return dataset.Row{
			"State":          states[vals[0].(int)],
			"Risk_Tolerance": risk[vals[1].(int)],
			"Age":            fmt.Sprintf("%d", vals[2].(int)),
		}
	})

	tableGen := gen.SliceOf(rowGen).Map(func(rows []dataset.Row) dataset.Table {
		indexed := make([]dataset.Row, len(rows))
		for i, row := range rows {
			copied := dataset.Row{"Account_ID": fmt.Sprintf("ACC-%04d", i)}
			for k, v := range row {
				copied[k] = v
			}
			indexed[i] = copied
		}
		return dataset.New([]string{"Account_ID", "State", "Risk_Tolerance", "Age"}, indexed)
	})

	criterionGen := gopter.CombineGens(
		gen.OneConstOf("state", "riskTolerance", "age", "missingColumn"),
		gen.OneConstOf(models.OpEqual, models.OpNotEqual, models.OpGreater, models.OpLess, models.OpIn, models.OpNotIn),
		gen.OneConstOf("NY", "Moderate", "40", "nonsense"),
	).Map(func(vals []interface{}) models.Criterion {
		return models.Criterion{
			Attribute: vals[0].(string),
			Operator:  vals[1].(models.Operator),
			Value:     vals[2].(string),
		}
	})
	criteriaGen := gen.SliceOf(criterionGen)

	properties.Property("result is an order-preserving subset", prop.ForAll(
		func(tbl dataset.Table, criteria []models.Criterion) bool {
			result := engine.Filter(tbl, criteria)
			if result.Len() > tbl.Len() {
				return false
			}
			return isOrderedSubset(tbl.Column("Account_ID"), result.Column("Account_ID"))
		},
		tableGen, criteriaGen,
	))

	properties.Property("filtering is idempotent", prop.ForAll(
		func(tbl dataset.Table, criteria []models.Criterion) bool {
			once := engine.Filter(tbl, criteria)
			twice := engine.Filter(once, criteria)
			if once.Len() != twice.Len() {
				return false
			}
			onceIDs := once.Column("Account_ID")
			twiceIDs := twice.Column("Account_ID")
			for i := range onceIDs {
				if onceIDs[i] != twiceIDs[i] {
					return false
				}
			}
			return true
		},
		tableGen, criteriaGen,
	))

	properties.Property("input table is never modified", prop.ForAll(
		func(tbl dataset.Table, criteria []models.Criterion) bool {
			before := tbl.Column("Account_ID")
			engine.Filter(tbl, criteria)
			after := tbl.Column("Account_ID")
			if len(before) != len(after) {
				return false
			}
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		tableGen, criteriaGen,
	))

	properties.TestingRun(t)
}

// isOrderedSubset reports whether sub appears within full in order.
func isOrderedSubset(full, sub []string) bool {
	i := 0
	for _, v := range full {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}
