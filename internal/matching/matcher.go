package matching

import "github.com/hostmock/hostmock/pkg/stub"

// Input captures the decoded facts of an intercepted request that routes
// are matched against. Query and Body are decoded once per dispatch and
// shared across all candidate routes; Params is filled in per candidate
// after a successful path match.
type Input struct {
	Method  string
	Host    string
	Path    string
	Query   map[string]string
	Body    map[string]string
	RawBody []byte
	Params  map[string]string
}

// Match reports whether the route accepts the input. On success it returns
// the path parameter bindings. The checks run in a fixed order: method,
// path, query constraints, body constraints, JSONPath conditions, then the
// compiled When condition.
func Match(rt *stub.Route, cond *Condition, in *Input) (map[string]string, bool) {
	if !MatchMethod(rt.Method, in.Method) {
		return nil, false
	}

	params, ok := MatchPath(rt.Path, in.Path)
	if !ok {
		return nil, false
	}

	if !MatchParams(rt.Query, in.Query) {
		return nil, false
	}
	if !MatchParams(rt.Body, in.Body) {
		return nil, false
	}
	if !MatchJSONPath(rt.BodyJSONPath, in.RawBody) {
		return nil, false
	}

	in.Params = params
	if !cond.Eval(in) {
		return nil, false
	}

	return params, true
}
