package calllog

import (
	"net/http"
	"time"
)

// MaxBodyBytes caps how much of a request body is retained per entry.
const MaxBodyBytes = 10 * 1024

// Entry is an immutable snapshot of one intercepted call. It is recorded
// before any matching happens, so unmatched calls appear too.
type Entry struct {
	// ID uniquely identifies the entry.
	ID string `json:"id"`

	// Timestamp is when the call was intercepted.
	Timestamp time.Time `json:"timestamp"`

	// URL is the full request URL as issued by the caller.
	URL string `json:"url"`

	// Method is the HTTP method.
	Method string `json:"method"`

	// Header holds the request headers at interception time.
	Header http.Header `json:"header,omitempty"`

	// Body is the request body (truncated at MaxBodyBytes).
	Body string `json:"body,omitempty"`

	// BodySize is the original body size in bytes.
	BodySize int `json:"bodySize"`
}

// NewEntry builds an entry snapshot from request parts, cloning the header
// and truncating the body so later caller mutation can't leak in.
func NewEntry(url, method string, header http.Header, body []byte) *Entry {
	retained := body
	if len(retained) > MaxBodyBytes {
		retained = retained[:MaxBodyBytes]
	}
	return &Entry{
		Timestamp: time.Now(),
		URL:       url,
		Method:    method,
		Header:    header.Clone(),
		Body:      string(retained),
		BodySize:  len(body),
	}
}
