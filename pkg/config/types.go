// Package config loads declarative stub collections from YAML or JSON
// files and converts them into registrable routes with canned responses.
package config

import (
	"github.com/hostmock/hostmock/pkg/stub"
)

// Collection is the root of a stub file.
type Collection struct {
	// Version is the file format version, currently "1".
	Version string `json:"version" yaml:"version"`

	// Namespaces declares host groups and their routes.
	Namespaces []NamespaceDecl `json:"namespaces" yaml:"namespaces"`
}

// NamespaceDecl declares one namespace and its routes.
type NamespaceDecl struct {
	// Host is the namespace name, matched as a host substring.
	Host string `json:"host" yaml:"host"`

	// Routes are registered in file order; first match wins.
	Routes []RouteDecl `json:"routes" yaml:"routes"`
}

// RouteDecl declares one route with a canned response.
type RouteDecl struct {
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`

	// Query and Body are expected-parameter constraints.
	Query map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	Body  map[string]string `json:"body,omitempty" yaml:"body,omitempty"`

	// BodyJSONPath holds JSONPath conditions on the raw JSON body.
	BodyJSONPath map[string]any `json:"bodyJsonPath,omitempty" yaml:"bodyJsonPath,omitempty"`

	// When is an optional condition expression.
	When string `json:"when,omitempty" yaml:"when,omitempty"`

	// Response is the canned response returned on match.
	Response ResponseDecl `json:"response" yaml:"response"`
}

// ResponseDecl declares the canned response of a route.
type ResponseDecl struct {
	// Status defaults to 200.
	Status int `json:"status,omitempty" yaml:"status,omitempty"`

	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// Body is the payload; structured values are served as JSON unless
	// Kind says otherwise.
	Body any `json:"body,omitempty" yaml:"body,omitempty"`

	// Kind is one of "json", "text", "raw", or empty to infer from Body.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// bodyKind maps the declared kind to the stub enumeration. Empty input
// returns empty output, leaving inference to the response builder.
func bodyKind(kind string) (stub.BodyKind, bool) {
	switch kind {
	case "":
		return "", true
	case "json":
		return stub.KindJSON, true
	case "text":
		return stub.KindText, true
	case "raw":
		return stub.KindRaw, true
	default:
		return "", false
	}
}
