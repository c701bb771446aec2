// Package stub defines the route, request, and response types that make up
// a hostmock stub: what to match and what to answer.
package stub

import (
	"context"
	"net/http"
	"net/url"
)

// BodyKind tags how a Response body is rendered onto the wire.
type BodyKind string

const (
	// KindJSON serializes the body payload as JSON.
	KindJSON BodyKind = "json"

	// KindText writes the body payload as plain text.
	KindText BodyKind = "text"

	// KindRaw writes the body bytes verbatim.
	KindRaw BodyKind = "raw"
)

// Handler produces a response for a matched request. Returning an error (or
// panicking) yields a generic 500 to the caller; it never propagates as a
// transport error.
type Handler func(req *Request) (*Response, error)

// Request is the decoded view of an intercepted call handed to a Handler.
// It is constructed per dispatch and discarded after the handler returns.
type Request struct {
	// Method is the HTTP method of the intercepted call.
	Method string

	// URL is the full request URL.
	URL *url.URL

	// Header holds the request headers.
	Header http.Header

	// Query holds the decoded query parameters (first value per key).
	Query map[string]string

	// Body holds the decoded body parameters, keyed by content kind rules.
	Body map[string]string

	// Params holds path parameter bindings from the matched pattern.
	Params map[string]string

	// RawBody is the unparsed request body.
	RawBody []byte

	ctx context.Context
}

// Context returns the intercepted request's context.
func (r *Request) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// WithContext sets the request context. Used by the dispatcher when
// constructing the Request from an intercepted *http.Request.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.ctx = ctx
	return r
}

// Response describes what a handler answers: a payload, a status code
// (default 200), headers (default empty), and a body kind.
type Response struct {
	// StatusCode is the HTTP status to return. Zero means 200.
	StatusCode int

	// Headers are response headers to set.
	Headers map[string]string

	// Body is the response payload. For KindJSON it may be any
	// serializable value; for KindText a string; for KindRaw a []byte.
	Body any

	// Kind selects how Body is rendered.
	Kind BodyKind
}

// JSON returns a 200 response whose payload is serialized as JSON.
func JSON(payload any) *Response {
	return &Response{StatusCode: http.StatusOK, Body: payload, Kind: KindJSON}
}

// Text returns a 200 plain-text response.
func Text(body string) *Response {
	return &Response{StatusCode: http.StatusOK, Body: body, Kind: KindText}
}

// Raw returns a 200 response with the given bytes passed through verbatim.
func Raw(body []byte) *Response {
	return &Response{StatusCode: http.StatusOK, Body: body, Kind: KindRaw}
}

// WithStatus sets the status code and returns the response for chaining.
func (r *Response) WithStatus(code int) *Response {
	r.StatusCode = code
	return r
}

// WithHeader sets a response header and returns the response for chaining.
func (r *Response) WithHeader(name, value string) *Response {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[name] = value
	return r
}

// Route binds a (method, path pattern) to a handler plus optional matching
// constraints. Within a namespace the (method, path pattern) pair is unique;
// a second registration is rejected and the original retained.
type Route struct {
	// Method is the HTTP method, stored upper-case.
	Method string

	// Path is a slash-delimited pattern; segments starting with ':' bind
	// the concrete segment as a named parameter (e.g. "/users/:id").
	Path string

	// Handler produces the response when the route matches.
	Handler Handler

	// Query holds expected query parameters. Every entry must be present
	// in the request with an equal value; extra request keys are ignored.
	Query map[string]string

	// Body holds expected decoded body parameters, matched like Query.
	Body map[string]string

	// BodyJSONPath holds JSONPath conditions evaluated against the raw
	// JSON body. Values are expectations; {"exists": bool} checks presence.
	BodyJSONPath map[string]any

	// When is an optional expression evaluated against the request
	// (method, host, path, query, body, params). A non-true result
	// rejects the route.
	When string
}

// RouteOption customizes a Route at registration time.
type RouteOption func(*Route)

// WithQuery sets expected query parameter constraints.
func WithQuery(expected map[string]string) RouteOption {
	return func(rt *Route) { rt.Query = expected }
}

// WithBody sets expected body parameter constraints.
func WithBody(expected map[string]string) RouteOption {
	return func(rt *Route) { rt.Body = expected }
}

// WithBodyJSONPath sets JSONPath body conditions.
func WithBodyJSONPath(conditions map[string]any) RouteOption {
	return func(rt *Route) { rt.BodyJSONPath = conditions }
}

// WithWhen sets the route's condition expression.
func WithWhen(expression string) RouteOption {
	return func(rt *Route) { rt.When = expression }
}
