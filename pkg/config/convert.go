package config

import (
	"fmt"
	"net/http"

	"github.com/hostmock/hostmock/pkg/stub"
)

// ToRoute converts a declaration into a registrable route whose handler
// always answers the declared canned response.
func (d RouteDecl) ToRoute() (*stub.Route, error) {
	kind, ok := bodyKind(d.Response.Kind)
	if !ok {
		return nil, fmt.Errorf("route %s %s: unknown response kind %q", d.Method, d.Path, d.Response.Kind)
	}

	status := d.Response.Status
	if status == 0 {
		status = http.StatusOK
	}
	res := &stub.Response{
		StatusCode: status,
		Headers:    d.Response.Headers,
		Body:       d.Response.Body,
		Kind:       kind,
	}

	return &stub.Route{
		Method:       d.Method,
		Path:         d.Path,
		Query:        d.Query,
		Body:         d.Body,
		BodyJSONPath: d.BodyJSONPath,
		When:         d.When,
		Handler: func(req *stub.Request) (*stub.Response, error) {
			return res, nil
		},
	}, nil
}
