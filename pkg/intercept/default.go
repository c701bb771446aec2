package intercept

import "github.com/hostmock/hostmock/pkg/calllog"

// std is the package-level controller for drop-in test use. Tests that need
// isolation or custom options should construct their own with New.
var std = New()

// Default returns the package-level controller.
func Default() *Controller {
	return std
}

// Start starts the default controller.
func Start() { std.Start() }

// Stop stops and fully resets the default controller.
func Stop() { std.Stop() }

// Restart restarts the default controller.
func Restart() { std.Restart() }

// Reset clears the default controller's namespaces and call log and
// restores the original call behavior.
func Reset() { std.Reset() }

// Namespace returns a registration handle on the default controller.
func Namespace(name string) *NamespaceHandle { return std.Namespace(name) }

// GetCalls returns the default controller's call log entries, all of them
// for url == "", otherwise those with an exactly equal URL.
func GetCalls(url string) []*calllog.Entry { return std.Calls(url) }
