package engine

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostmock/hostmock/pkg/stub"
)

func TestNewHTTPResponseJSON(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api/x", nil)
	res, err := NewHTTPResponse(req, stub.JSON(map[string]any{"ok": true}))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "200 OK", res.Status)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))
	b, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"ok":true}`, string(b))
	assert.Equal(t, int64(len(b)), res.ContentLength)
	assert.Same(t, req, res.Request)
}

func TestNewHTTPResponseText(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api/x", nil)
	res, err := NewHTTPResponse(req, stub.Text("hello").WithStatus(http.StatusTeapot))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, res.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
	b, _ := io.ReadAll(res.Body)
	assert.Equal(t, "hello", string(b))
}

func TestNewHTTPResponseRaw(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api/x", nil)
	payload := []byte{0x0, 0x1, 0x2}
	res, err := NewHTTPResponse(req, stub.Raw(payload))
	require.NoError(t, err)

	assert.Empty(t, res.Header.Get("Content-Type"), "raw bodies get no default content type")
	b, _ := io.ReadAll(res.Body)
	assert.Equal(t, payload, b)
}

func TestNewHTTPResponseKindInference(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api/x", nil)

	res, err := NewHTTPResponse(req, &stub.Response{Body: "plain"})
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))

	res, err = NewHTTPResponse(req, &stub.Response{Body: map[string]int{"n": 1}})
	require.NoError(t, err)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	res, err = NewHTTPResponse(req, &stub.Response{Body: []byte("bytes")})
	require.NoError(t, err)
	assert.Empty(t, res.Header.Get("Content-Type"))
}

func TestNewHTTPResponseExplicitHeaderWins(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api/x", nil)
	res, err := NewHTTPResponse(req, stub.JSON(map[string]int{"n": 1}).
		WithHeader("Content-Type", "application/vnd.custom+json"))
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.custom+json", res.Header.Get("Content-Type"))
}

func TestNewHTTPResponseDefaultStatus(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api/x", nil)
	res, err := NewHTTPResponse(req, &stub.Response{Body: "x", Kind: stub.KindText})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestNewHTTPResponseMarshalFailure(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api/x", nil)
	_, err := NewHTTPResponse(req, stub.JSON(make(chan int)))
	require.Error(t, err)
}

func TestNotFoundResponse(t *testing.T) {
	req := httptest.NewRequest("GET", "https://api.example.com/missing", nil)
	res := NotFoundResponse(req)

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	b, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(b), "no route matched")
	assert.Contains(t, string(b), "/missing")
}
