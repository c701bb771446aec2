// Package matching decides whether an intercepted request satisfies a
// registered route.
//
// It covers four concerns:
//
//   - Path matching: slash-delimited patterns where segments starting with
//     ':' bind the concrete segment as a named parameter. Matching is exact
//     on segment count and literal segments; there are no wildcards.
//   - Parameter constraints: partial key/value matching of decoded query or
//     body parameters against a route's expectations.
//   - JSONPath conditions: expectations evaluated against raw JSON bodies.
//   - Condition expressions: compiled expr programs gating a route on
//     arbitrary request facts.
//
// There is no scoring or specificity ranking. When several routes could
// match a request, the first one registered wins; that ordering is the
// documented tie-breaker.
package matching
