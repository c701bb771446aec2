package matching

import (
	"encoding/json"
	"reflect"

	"github.com/ohler55/ojg/jp"
)

// MatchJSONPath evaluates JSONPath conditions against a JSON body. All
// conditions must hold. A non-JSON body fails any non-empty condition set.
//
// An expectation of the form {"exists": bool} checks for presence or
// absence; any other expectation must equal a selected value, with numeric
// coercion so that 7 matches 7.0.
func MatchJSONPath(conditions map[string]any, body []byte) bool {
	if len(conditions) == 0 {
		return true
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return false
	}

	for path, expected := range conditions {
		if !matchSingleJSONPath(path, expected, data) {
			return false
		}
	}
	return true
}

func matchSingleJSONPath(path string, expected, data any) bool {
	expr, err := jp.ParseString(path)
	if err != nil {
		// Invalid expressions are rejected at registration; treat any
		// that slip through as a non-match.
		return false
	}

	results := expr.Get(data)

	if exists, ok := existenceCheck(expected); ok {
		return exists == (len(results) > 0)
	}

	for _, result := range results {
		if valuesEqual(result, expected) {
			return true
		}
	}
	return false
}

// existenceCheck reports whether expected is a {"exists": bool} object and,
// if so, the wanted presence.
func existenceCheck(expected any) (want, ok bool) {
	m, isMap := expected.(map[string]any)
	if !isMap || len(m) != 1 {
		return false, false
	}
	b, isBool := m["exists"].(bool)
	if !isBool {
		return false, false
	}
	return b, true
}

// valuesEqual compares a selected value with an expectation, coercing
// numeric types so JSON float64 values compare equal to int expectations.
func valuesEqual(actual, expected any) bool {
	if actual == nil || expected == nil {
		return actual == expected
	}
	if reflect.DeepEqual(actual, expected) {
		return true
	}

	af, aok := toFloat64(actual)
	ef, eok := toFloat64(expected)
	return aok && eok && af == ef
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
