// Package engine resolves intercepted requests against the route registry
// and produces synthetic HTTP responses.
package engine

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hostmock/hostmock/internal/decode"
	"github.com/hostmock/hostmock/internal/matching"
	"github.com/hostmock/hostmock/internal/registry"
	"github.com/hostmock/hostmock/pkg/logging"
	"github.com/hostmock/hostmock/pkg/stub"
)

// Dispatcher scans the registry for the first route satisfying an
// intercepted request and invokes its handler. There is no scoring: the
// tie-breaker for overlapping routes is registration order within a
// namespace and namespace insertion order across namespaces.
type Dispatcher struct {
	registry *registry.Registry
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher over the given registry. A nil logger
// falls back to logging.Nop().
func NewDispatcher(reg *registry.Registry, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Dispatcher{registry: reg, log: log}
}

// Resolve matches the request against all namespaces and routes. On a match
// it invokes the handler and returns the synthetic response with true; this
// includes the generic 500 produced for handler failures. When nothing
// matches it returns (nil, false) and the caller owns the not-found
// response.
func (d *Dispatcher) Resolve(r *http.Request, body []byte) (*http.Response, bool) {
	queryParams := decode.Query(r.URL)
	bodyParams, err := decode.Body(r.Method, r.Header.Get("Content-Type"), body)
	if err != nil {
		d.log.Warn("request body decode failed, matching with empty body parameters",
			"method", r.Method, "url", r.URL.String(), "error", err)
	}

	in := &matching.Input{
		Method:  r.Method,
		Host:    r.URL.Host,
		Path:    r.URL.Path,
		Query:   queryParams,
		Body:    bodyParams,
		RawBody: body,
	}

	for _, ns := range d.registry.Namespaces() {
		// A namespace participates only if the request host contains its
		// name as a substring.
		if !strings.Contains(in.Host, ns.Name) {
			continue
		}
		for _, e := range ns.Entries {
			params, ok := matching.Match(e.Route, e.Cond, in)
			if !ok {
				continue
			}

			req := (&stub.Request{
				Method:  r.Method,
				URL:     r.URL,
				Header:  r.Header,
				Query:   queryParams,
				Body:    bodyParams,
				Params:  params,
				RawBody: body,
			}).WithContext(r.Context())

			res := d.invoke(ns.Name, e.Route, req)
			return d.buildResponse(r, e.Route, res), true
		}
	}

	return nil, false
}

// invoke runs the handler, absorbing panics and returned errors into the
// generic error response so no failure escapes to the HTTP caller.
func (d *Dispatcher) invoke(namespace string, rt *stub.Route, req *stub.Request) (res *stub.Response) {
	defer func() {
		if rec := recover(); rec != nil {
			d.log.Error("handler panicked",
				"namespace", namespace, "method", rt.Method, "path", rt.Path, "panic", rec)
			res = errorResponse()
		}
	}()

	out, err := rt.Handler(req)
	if err != nil {
		d.log.Error("handler failed",
			"namespace", namespace, "method", rt.Method, "path", rt.Path, "error", err)
		return errorResponse()
	}
	if out == nil {
		return stub.Text("")
	}
	return out
}

// buildResponse renders the descriptor, falling back to the generic error
// response if serialization fails.
func (d *Dispatcher) buildResponse(r *http.Request, rt *stub.Route, res *stub.Response) *http.Response {
	out, err := NewHTTPResponse(r, res)
	if err != nil {
		d.log.Error("response serialization failed",
			"method", rt.Method, "path", rt.Path, "error", err)
		out, _ = NewHTTPResponse(r, errorResponse())
	}
	return out
}
