package matching

// MatchParams checks observed key/value parameters against a route's
// expectations. A nil or empty expectation always matches. Otherwise every
// expected key must be present in observed with a string-equal value; extra
// observed keys are ignored (partial match, not exact).
func MatchParams(expected, observed map[string]string) bool {
	for name, want := range expected {
		got, ok := observed[name]
		if !ok || got != want {
			return false
		}
	}
	return true
}
