package intercept

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/hostmock/hostmock/pkg/calllog"
	"github.com/hostmock/hostmock/pkg/engine"
)

// roundTripper is the interception hook: an http.RoundTripper that records
// every call and resolves it against the dispatcher instead of the network.
// It never returns a transport error for matching, decoding, or handler
// failures; the caller always gets a well-formed synthetic response.
type roundTripper struct {
	dispatcher *engine.Dispatcher
	calls      calllog.Logger
	log        *slog.Logger
}

func (t *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	// Record before any matching so unmatched calls are visible too.
	t.calls.Log(calllog.NewEntry(req.URL.String(), req.Method, req.Header, body))

	res, ok := t.dispatcher.Resolve(req, body)
	if !ok {
		t.log.Warn("no route matched intercepted call",
			"method", req.Method, "url", req.URL.String())
		return engine.NotFoundResponse(req), nil
	}
	return res, nil
}

var _ http.RoundTripper = (*roundTripper)(nil)
