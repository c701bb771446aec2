// Package intercept owns the process-wide interception lifecycle: it swaps
// http.DefaultTransport (and any explicitly enrolled clients) for a
// dispatcher-backed RoundTripper, and exposes the namespace registration
// and call inspection APIs test code works with.
package intercept

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/hostmock/hostmock/internal/registry"
	"github.com/hostmock/hostmock/pkg/calllog"
	"github.com/hostmock/hostmock/pkg/engine"
	"github.com/hostmock/hostmock/pkg/logging"
)

// Controller composes the route registry, call log, and dispatcher, and
// owns the stopped -> running -> stopped interception lifecycle.
type Controller struct {
	mu      sync.Mutex
	running bool

	registry   *registry.Registry
	calls      *calllog.InMemoryStore
	dispatcher *engine.Dispatcher
	transport  *roundTripper
	log        *slog.Logger

	// prevDefault is the saved http.DefaultTransport while running.
	prevDefault http.RoundTripper

	// enrolled maps intercepted clients to their original transports.
	enrolled map[*http.Client]http.RoundTripper
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	log      *slog.Logger
	capacity int
}

// WithLogger sets the operational logger. Defaults to logging.Nop().
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithCallLogCapacity bounds the call log. Defaults to
// calllog.DefaultCapacity.
func WithCallLogCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// New creates a stopped Controller.
func New(opts ...Option) *Controller {
	o := &options{log: logging.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	reg := registry.New(o.log)
	calls := calllog.NewInMemoryStore(o.capacity)
	dispatcher := engine.NewDispatcher(reg, o.log)

	return &Controller{
		registry:   reg,
		calls:      calls,
		dispatcher: dispatcher,
		transport: &roundTripper{
			dispatcher: dispatcher,
			calls:      calls,
			log:        o.log,
		},
		log:      o.log,
		enrolled: make(map[*http.Client]http.RoundTripper),
	}
}

// Start installs the interception hook: it saves http.DefaultTransport and
// replaces it with the dispatcher-backed transport. Starting a running
// controller logs a warning and does nothing else.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.log.Warn("interception already running, start ignored")
		return
	}

	c.prevDefault = http.DefaultTransport
	http.DefaultTransport = c.transport
	c.running = true
	c.log.Info("interception started")
}

// Stop performs a full reset regardless of current state: namespaces and
// call log are cleared and the original transports restored.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardown()
	c.log.Info("interception stopped")
}

// Reset clears all namespaces and the call log and restores the original
// call behavior. Observable behavior is identical to Stop.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teardown()
	c.log.Debug("interception state reset")
}

// Restart is Stop followed by Start.
func (c *Controller) Restart() {
	c.Stop()
	c.Start()
}

// teardown clears registry and call log and restores transports.
// Callers hold c.mu.
func (c *Controller) teardown() {
	c.registry.Clear()
	c.calls.Clear()

	if c.running {
		http.DefaultTransport = c.prevDefault
		c.prevDefault = nil
		c.running = false
	}

	for client, original := range c.enrolled {
		client.Transport = original
		delete(c.enrolled, client)
	}
}

// InterceptClient enrolls a non-default client: its transport is replaced
// with the interception hook until Stop or Reset restores the original.
func (c *Controller) InterceptClient(client *http.Client) {
	if client == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.enrolled[client]; ok {
		return
	}
	c.enrolled[client] = client.Transport
	client.Transport = c.transport
}

// Running reports whether the interception hook is installed.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Calls returns call log entries, all of them for url == "", otherwise only
// those whose URL equals url exactly.
func (c *Controller) Calls(url string) []*calllog.Entry {
	if url == "" {
		return c.calls.List(nil)
	}
	return c.calls.List(&calllog.Filter{URL: url})
}

// CallLog exposes the underlying store for advanced inspection.
func (c *Controller) CallLog() calllog.Store {
	return c.calls
}

// RouteCount returns the number of registered routes across all namespaces.
func (c *Controller) RouteCount() int {
	return c.registry.Count()
}
