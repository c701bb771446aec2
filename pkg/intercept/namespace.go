package intercept

import (
	"net/http"

	"github.com/hostmock/hostmock/pkg/stub"
)

// NamespaceHandle is the registration capability for one host group. Routes in a
// namespace are matched only against requests whose host contains the
// namespace name as a substring; namespaces never see each other's routes.
type NamespaceHandle struct {
	name string
	ctrl *Controller
}

// Namespace returns the registration handle for name, creating the
// namespace on first route registration.
func (c *Controller) Namespace(name string) *NamespaceHandle {
	return &NamespaceHandle{name: name, ctrl: c}
}

// Name returns the namespace name.
func (n *NamespaceHandle) Name() string {
	return n.name
}

// Get registers a GET route.
func (n *NamespaceHandle) Get(path string, handler stub.Handler, opts ...stub.RouteOption) error {
	return n.add(http.MethodGet, path, handler, opts)
}

// Post registers a POST route.
func (n *NamespaceHandle) Post(path string, handler stub.Handler, opts ...stub.RouteOption) error {
	return n.add(http.MethodPost, path, handler, opts)
}

// Put registers a PUT route.
func (n *NamespaceHandle) Put(path string, handler stub.Handler, opts ...stub.RouteOption) error {
	return n.add(http.MethodPut, path, handler, opts)
}

// Delete registers a DELETE route.
func (n *NamespaceHandle) Delete(path string, handler stub.Handler, opts ...stub.RouteOption) error {
	return n.add(http.MethodDelete, path, handler, opts)
}

// add builds the route and forwards to the registry. A duplicate (method,
// path) registration returns registry.ErrDuplicateRoute with the original
// route left active; the rejection has already been logged, so callers are
// free to ignore the error.
func (n *NamespaceHandle) add(method, path string, handler stub.Handler, opts []stub.RouteOption) error {
	rt := &stub.Route{Method: method, Path: path, Handler: handler}
	for _, opt := range opts {
		opt(rt)
	}
	return n.ctrl.registry.Add(n.name, rt)
}
