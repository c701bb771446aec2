package stub

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// ValidationError represents a validation failure with field context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// validMethods are the HTTP methods a route may register.
var validMethods = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"DELETE":  true,
	"PATCH":   true,
	"HEAD":    true,
	"OPTIONS": true,
}

// Validate checks the route before it enters a registry.
func (rt *Route) Validate() error {
	if !validMethods[strings.ToUpper(rt.Method)] {
		return &ValidationError{Field: "method", Message: fmt.Sprintf("unknown HTTP method: %q", rt.Method)}
	}

	if rt.Handler == nil {
		return &ValidationError{Field: "handler", Message: "handler is required"}
	}

	if err := validatePathPattern(rt.Path); err != nil {
		return err
	}

	for path := range rt.BodyJSONPath {
		if _, err := jp.ParseString(path); err != nil {
			return &ValidationError{
				Field:   "bodyJsonPath",
				Message: fmt.Sprintf("invalid JSONPath %q: %v", path, err),
			}
		}
	}

	return nil
}

// validatePathPattern checks the pattern shape: leading slash, non-empty
// parameter names, no duplicate parameter names.
func validatePathPattern(pattern string) error {
	if pattern == "" || pattern[0] != '/' {
		return &ValidationError{Field: "path", Message: fmt.Sprintf("pattern must start with '/': %q", pattern)}
	}

	seen := map[string]bool{}
	for _, seg := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		name := seg[1:]
		if name == "" {
			return &ValidationError{Field: "path", Message: "parameter segment with empty name"}
		}
		if seen[name] {
			return &ValidationError{Field: "path", Message: fmt.Sprintf("duplicate parameter name %q", name)}
		}
		seen[name] = true
	}

	return nil
}
