// Package registry holds the namespace-scoped route registry: an ordered
// set of namespaces, each owning its routes in registration order.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/hostmock/hostmock/internal/matching"
	"github.com/hostmock/hostmock/pkg/logging"
	"github.com/hostmock/hostmock/pkg/stub"
)

// ErrDuplicateRoute marks a rejected second registration of the same
// (method, path pattern) within a namespace. The original route stays
// active; callers may ignore the error, it has already been logged.
var ErrDuplicateRoute = errors.New("route already registered")

// Entry pairs a registered route with its compiled When condition.
type Entry struct {
	Route *stub.Route
	Cond  *matching.Condition
}

// namespace owns routes in registration order.
type namespace struct {
	name    string
	entries []*Entry
}

// Snapshot is a read-only view of one namespace used during dispatch.
type Snapshot struct {
	Name    string
	Entries []*Entry
}

// Registry is the mutable route table. Namespaces are created on first
// reference and kept until Clear; iteration order is insertion order.
type Registry struct {
	mu         sync.RWMutex
	order      []string
	namespaces map[string]*namespace
	log        *slog.Logger
}

// New creates an empty registry. A nil logger falls back to logging.Nop().
func New(log *slog.Logger) *Registry {
	if log == nil {
		log = logging.Nop()
	}
	return &Registry{
		namespaces: make(map[string]*namespace),
		log:        log,
	}
}

// Add registers a route under the named namespace, creating the namespace
// on first use. The route is validated and its When condition compiled
// here, so dispatch never sees a malformed route. Duplicate (method, path)
// pairs are rejected with ErrDuplicateRoute and the original retained.
func (r *Registry) Add(nsName string, rt *stub.Route) error {
	rt.Method = strings.ToUpper(rt.Method)

	if err := rt.Validate(); err != nil {
		r.log.Warn("rejecting invalid route",
			"namespace", nsName, "method", rt.Method, "path", rt.Path, "error", err)
		return err
	}

	cond, err := matching.CompileCondition(rt.When)
	if err != nil {
		r.log.Warn("rejecting route with invalid condition",
			"namespace", nsName, "method", rt.Method, "path", rt.Path, "error", err)
		return fmt.Errorf("route %s %s: %w", rt.Method, rt.Path, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ns, ok := r.namespaces[nsName]
	if !ok {
		ns = &namespace{name: nsName}
		r.namespaces[nsName] = ns
		r.order = append(r.order, nsName)
	}

	for _, e := range ns.entries {
		if e.Route.Method == rt.Method && e.Route.Path == rt.Path {
			r.log.Warn("route already registered, keeping the original",
				"namespace", nsName, "method", rt.Method, "path", rt.Path)
			return fmt.Errorf("%w: %s %s %s", ErrDuplicateRoute, nsName, rt.Method, rt.Path)
		}
	}

	ns.entries = append(ns.entries, &Entry{Route: rt, Cond: cond})
	r.log.Debug("route registered",
		"namespace", nsName, "method", rt.Method, "path", rt.Path)
	return nil
}

// Namespaces returns a snapshot of all namespaces in insertion order with
// their routes in registration order. The snapshot is stable against later
// mutation: routes registered while a handler is still running affect
// subsequent calls only.
func (r *Registry) Namespaces() []Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Snapshot, 0, len(r.order))
	for _, name := range r.order {
		ns := r.namespaces[name]
		entries := make([]*Entry, len(ns.entries))
		copy(entries, ns.entries)
		out = append(out, Snapshot{Name: name, Entries: entries})
	}
	return out
}

// Count returns the total number of registered routes.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, ns := range r.namespaces {
		n += len(ns.entries)
	}
	return n
}

// Clear removes all namespaces and routes.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.namespaces = make(map[string]*namespace)
}
