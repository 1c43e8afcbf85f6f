// Package filter implements the criteria filter engine: an ordered fold of
// attribute/operator/value predicates over the accounts dataset.
package filter

import (
	"github.com/rs/zerolog"

	"portfolio-rebalancer/internal/dataset"
	"portfolio-rebalancer/internal/models"
)

// Engine applies rebalance criteria to an accounts table.
type Engine struct {
	// StrictAttributes makes criteria with unmapped attribute names skip
	// with a warning instead of using the attribute as a column name.
	StrictAttributes bool

	logger zerolog.Logger
}

// NewEngine creates a filter engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger}
}

// Filter applies the criteria in order, each step narrowing the previous
// result. The input table is never modified; the result is a subset of the
// input preserving row order. Once an intermediate result is empty the
// remaining criteria are skipped, since they cannot change an empty set.
func (e *Engine) Filter(tbl dataset.Table, criteria []models.Criterion) dataset.Table {
	out := tbl
	for _, criterion := range criteria {
		out = e.apply(out, criterion)
		if out.Empty() {
			break
		}
	}
	return out
}

// apply narrows the table by a single criterion. Criteria that cannot be
// applied (unknown column, unsupported operator, non-numeric literal under
// a numeric operator) leave the table unchanged and log a warning; they
// never fail the pipeline.
func (e *Engine) apply(tbl dataset.Table, criterion models.Criterion) dataset.Table {
	column, mapped := LookupAttribute(criterion.Attribute)
	if !mapped && e.StrictAttributes {
		e.logger.Warn().
			Str("attribute", criterion.Attribute).
			Msg("Unmapped attribute, skipping criterion")
		return tbl
	}

	if !tbl.HasColumn(column) {
		e.logger.Warn().
			Str("attribute", criterion.Attribute).
			Str("column", column).
			Msg("Column not in dataset, skipping criterion")
		return tbl
	}

	switch criterion.Operator {
	case models.OpEqual:
		return tbl.Select(func(row dataset.Row) bool {
			return cellEquals(row[column], criterion.Value)
		})

	case models.OpNotEqual:
		return tbl.Select(func(row dataset.Row) bool {
			return !cellEquals(row[column], criterion.Value)
		})

	case models.OpGreater, models.OpLess, models.OpGreaterEqual, models.OpLessEqual:
		limit, ok := valueFloat(criterion.Value)
		if !ok {
			e.logger.Warn().
				Str("attribute", criterion.Attribute).
				Str("operator", string(criterion.Operator)).
				Interface("value", criterion.Value).
				Msg("Non-numeric value for numeric operator, skipping criterion")
			return tbl
		}
		return tbl.Select(func(row dataset.Row) bool {
			cell, ok := row.Float(column)
			if !ok {
				// Rows that fail numeric coercion never match.
				return false
			}
			return compareFloat(criterion.Operator, cell, limit)
		})

	case models.OpIn:
		values := valueList(criterion.Value)
		return tbl.Select(func(row dataset.Row) bool {
			return cellIn(row[column], values)
		})

	case models.OpNotIn:
		values := valueList(criterion.Value)
		return tbl.Select(func(row dataset.Row) bool {
			return !cellIn(row[column], values)
		})

	default:
		e.logger.Warn().
			Str("attribute", criterion.Attribute).
			Str("operator", string(criterion.Operator)).
			Msg("Unsupported operator, skipping criterion")
		return tbl
	}
}

func compareFloat(op models.Operator, cell, limit float64) bool {
	switch op {
	case models.OpGreater:
		return cell > limit
	case models.OpLess:
		return cell < limit
	case models.OpGreaterEqual:
		return cell >= limit
	case models.OpLessEqual:
		return cell <= limit
	}
	return false
}

func cellIn(cell string, values []interface{}) bool {
	for _, v := range values {
		if cellEquals(cell, v) {
			return true
		}
	}
	return false
}
