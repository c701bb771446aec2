// Package decode turns an intercepted request's URL and body into the flat
// key/value parameter mappings that routes are matched against.
package decode

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Kind enumerates the body content kinds the decoder understands. It is
// derived from the Content-Type header by KindOf, once, so decode logic
// never inspects header strings itself.
type Kind int

const (
	// KindNone means no body decoding: unknown/missing content type, or a
	// method without body semantics.
	KindNone Kind = iota

	// KindJSON decodes a top-level JSON object into key/value pairs.
	KindJSON

	// KindForm decodes application/x-www-form-urlencoded pairs.
	KindForm

	// KindText wraps the whole body under the fixed key "text".
	KindText
)

// TextKey is the key plain-text bodies are exposed under.
const TextKey = "text"

// KindOf maps a Content-Type header value to a Kind. Comparison is
// case-insensitive and ignores media type parameters such as charset.
func KindOf(contentType string) Kind {
	if contentType == "" {
		return KindNone
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}
	switch strings.ToLower(mediaType) {
	case "application/json":
		return KindJSON
	case "application/x-www-form-urlencoded":
		return KindForm
	case "text/plain":
		return KindText
	default:
		return KindNone
	}
}

// Query decodes the URL's query string into a flat mapping. Repeated keys
// keep their first value. Always applied, regardless of method.
func Query(u *url.URL) map[string]string {
	params := make(map[string]string)
	if u == nil {
		return params
	}
	for name, values := range u.Query() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}
	return params
}

// hasBodySemantics reports whether the method carries a decodable body.
func hasBodySemantics(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut:
		return true
	default:
		return false
	}
}

// Body decodes the request body into a parameter mapping according to the
// declared content kind. The mapping is always non-nil; a returned error
// marks a malformed body that the caller should log, with dispatch
// continuing on the empty mapping.
func Body(method, contentType string, body []byte) (map[string]string, error) {
	params := make(map[string]string)
	if len(body) == 0 || !hasBodySemantics(method) {
		return params, nil
	}

	switch KindOf(contentType) {
	case KindJSON:
		var obj map[string]any
		if err := json.Unmarshal(body, &obj); err != nil {
			return params, err
		}
		for name, value := range obj {
			params[name] = stringify(value)
		}
		return params, nil

	case KindForm:
		values, err := url.ParseQuery(string(body))
		for name, vs := range values {
			if len(vs) > 0 {
				params[name] = vs[0]
			}
		}
		return params, err

	case KindText:
		params[TextKey] = string(body)
		return params, nil

	default:
		return params, nil
	}
}

// stringify renders a decoded JSON value as the string it is matched
// against. Nested structures keep their JSON form.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
