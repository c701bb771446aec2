package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hostmock/hostmock/pkg/stub"
)

const (
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeText   = "text/plain; charset=utf-8"
)

// NewHTTPResponse renders a response descriptor into a synthetic
// *http.Response. The body is rendered per the descriptor's kind; an unset
// kind is inferred from the payload type ([]byte raw, string text,
// anything else JSON).
func NewHTTPResponse(r *http.Request, res *stub.Response) (*http.Response, error) {
	status := res.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	header := make(http.Header, len(res.Headers))
	for name, value := range res.Headers {
		header.Set(name, value)
	}

	body, defaultType, err := renderBody(res)
	if err != nil {
		return nil, err
	}
	if defaultType != "" && header.Get(contentTypeHeader) == "" {
		header.Set(contentTypeHeader, defaultType)
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       r,
	}, nil
}

func renderBody(res *stub.Response) (body []byte, defaultType string, err error) {
	kind := res.Kind
	if kind == "" {
		switch res.Body.(type) {
		case []byte:
			kind = stub.KindRaw
		case string:
			kind = stub.KindText
		default:
			kind = stub.KindJSON
		}
	}

	switch kind {
	case stub.KindJSON:
		if res.Body == nil {
			return nil, contentTypeJSON, nil
		}
		b, err := json.Marshal(res.Body)
		if err != nil {
			return nil, "", fmt.Errorf("marshaling JSON body: %w", err)
		}
		return b, contentTypeJSON, nil

	case stub.KindRaw:
		switch b := res.Body.(type) {
		case []byte:
			return b, "", nil
		case string:
			return []byte(b), "", nil
		case nil:
			return nil, "", nil
		default:
			return nil, "", fmt.Errorf("raw body must be []byte or string, got %T", res.Body)
		}

	default: // stub.KindText
		switch b := res.Body.(type) {
		case string:
			return []byte(b), contentTypeText, nil
		case []byte:
			return b, contentTypeText, nil
		case nil:
			return nil, contentTypeText, nil
		default:
			return []byte(fmt.Sprint(b)), contentTypeText, nil
		}
	}
}

// NotFoundResponse builds the synthetic 404 returned when no route matches.
func NotFoundResponse(r *http.Request) *http.Response {
	res, _ := NewHTTPResponse(r, stub.Text("no route matched "+r.Method+" "+r.URL.String()).
		WithStatus(http.StatusNotFound))
	return res
}

// errorResponse is the fixed descriptor for handler failures. The body is
// deliberately generic; details go to the operational log only.
func errorResponse() *stub.Response {
	return stub.Text("handler error").WithStatus(http.StatusInternalServerError)
}
