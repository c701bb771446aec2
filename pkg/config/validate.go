package config

import (
	"fmt"
	"strings"
)

// ValidationError is a single structural problem, addressed by its config
// path (e.g. "namespaces[0].routes[2].method").
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult collects all structural problems in a Collection.
type ValidationResult struct {
	Errors []ValidationError
}

// IsValid reports whether no problems were found.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Error joins all problems into one message.
func (r *ValidationResult) Error() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (r *ValidationResult) add(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

var validMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true,
}

// Validate checks a Collection's structure. Route-level semantic checks
// (pattern shape, JSONPath syntax, condition compilation) happen again at
// registration; this pass catches file mistakes with addressable paths.
func Validate(c *Collection) *ValidationResult {
	result := &ValidationResult{}

	if c.Version == "" {
		result.add("version", "required")
	} else if c.Version != "1" {
		result.add("version", fmt.Sprintf("unsupported version %q, expected \"1\"", c.Version))
	}

	if len(c.Namespaces) == 0 {
		result.add("namespaces", "at least one namespace is required")
	}

	for i, ns := range c.Namespaces {
		nsPath := fmt.Sprintf("namespaces[%d]", i)
		if ns.Host == "" {
			result.add(nsPath+".host", "required")
		}
		if len(ns.Routes) == 0 {
			result.add(nsPath+".routes", "at least one route is required")
		}
		for j, rt := range ns.Routes {
			rtPath := fmt.Sprintf("%s.routes[%d]", nsPath, j)
			if rt.Method == "" {
				result.add(rtPath+".method", "required")
			} else if !validMethods[strings.ToUpper(rt.Method)] {
				result.add(rtPath+".method", fmt.Sprintf("unknown HTTP method %q", rt.Method))
			}
			if rt.Path == "" {
				result.add(rtPath+".path", "required")
			} else if !strings.HasPrefix(rt.Path, "/") {
				result.add(rtPath+".path", "must start with '/'")
			}
			if _, ok := bodyKind(rt.Response.Kind); !ok {
				result.add(rtPath+".response.kind",
					fmt.Sprintf("unknown kind %q, expected json, text, or raw", rt.Response.Kind))
			}
			if rt.Response.Status < 0 || rt.Response.Status > 599 {
				result.add(rtPath+".response.status", "must be a valid HTTP status code")
			}
		}
	}

	return result
}
