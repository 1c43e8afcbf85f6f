package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// valueString renders a criterion value for string comparison. Request JSON
// decodes numbers as float64; they are rendered without a trailing ".0" so
// that a criterion value of 5 matches a cell containing "5".
func valueString(v interface{}) string {
	switch tv := v.(type) {
	case string:
		return tv
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(tv)
	case nil:
		return ""
	default:
		return fmt.Sprint(tv)
	}
}

// valueFloat coerces a criterion value to float64.
func valueFloat(v interface{}) (float64, bool) {
	switch tv := v.(type) {
	case float64:
		return tv, true
	case int:
		return float64(tv), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(tv), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// valueList returns the criterion value as a list. Scalar values become a
// single-element list, so `in` with a scalar degrades to equality.
func valueList(v interface{}) []interface{} {
	if list, ok := v.([]interface{}); ok {
		return list
	}
	return []interface{}{v}
}

// cellEquals compares a cell against a criterion value, numerically when
// both sides parse as numbers and as strings otherwise.
func cellEquals(cell string, value interface{}) bool {
	if vf, ok := valueFloat(value); ok {
		if cf, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			return cf == vf
		}
	}
	return cell == valueString(value)
}
