// Package calllog records every intercepted outbound call, matched or not,
// for inspection by test code.
package calllog

// Logger is the minimal sink interface the interception hook writes to.
type Logger interface {
	Log(entry *Entry)
}

// Store is the queryable call history. Store embeds Logger so any
// implementation can be used where a plain sink is expected.
type Store interface {
	Logger

	// Get retrieves an entry by ID, or nil.
	Get(id string) *Entry

	// List returns entries in chronological order, optionally filtered.
	List(filter *Filter) []*Entry

	// Clear removes all entries.
	Clear()

	// Count returns the number of entries.
	Count() int
}

// Filter narrows List results.
type Filter struct {
	// URL filters by exact URL string equality. No pattern matching.
	URL string

	// Method filters by HTTP method.
	Method string

	// Limit caps the number of returned entries (0 = unlimited).
	Limit int
}
