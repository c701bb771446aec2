package matching

import "strings"

// ParamPrefix marks a pattern segment as a named parameter.
const ParamPrefix = ":"

// MatchPath checks whether path matches the route pattern and extracts named
// parameter bindings. Parameter segments bind the concrete segment's literal
// value; literal segments must match exactly, as must the segment count.
//
// Examples:
//   - "/users/:id" matches "/users/123" with {"id": "123"}
//   - "/users/:id" does not match "/users/123/extra"
func MatchPath(pattern, path string) (map[string]string, bool) {
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	params := make(map[string]string)
	for i, patternPart := range patternParts {
		if strings.HasPrefix(patternPart, ParamPrefix) {
			params[patternPart[1:]] = pathParts[i]
			continue
		}
		if patternPart != pathParts[i] {
			return nil, false
		}
	}

	return params, true
}

// MatchMethod checks whether the request method matches the route method.
func MatchMethod(expected, actual string) bool {
	return strings.EqualFold(expected, actual)
}
