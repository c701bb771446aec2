package decode

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		contentType string
		want        Kind
	}{
		{"application/json", KindJSON},
		{"Application/JSON", KindJSON},
		{"application/json; charset=utf-8", KindJSON},
		{"application/x-www-form-urlencoded", KindForm},
		{"text/plain", KindText},
		{"text/plain; charset=us-ascii", KindText},
		{"text/html", KindNone},
		{"application/octet-stream", KindNone},
		{"", KindNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.contentType), "content type %q", tt.contentType)
	}
}

func TestQuery(t *testing.T) {
	u, err := url.Parse("https://api.example.com/users?role=admin&page=2&role=user")
	require.NoError(t, err)

	params := Query(u)
	assert.Equal(t, "admin", params["role"], "first value wins for repeated keys")
	assert.Equal(t, "2", params["page"])

	assert.Empty(t, Query(nil))
}

func TestBodyJSON(t *testing.T) {
	params, err := Body("POST", "application/json", []byte(`{"role":"admin","count":3,"flag":true,"note":null}`))
	require.NoError(t, err)
	assert.Equal(t, "admin", params["role"])
	assert.Equal(t, "3", params["count"])
	assert.Equal(t, "true", params["flag"])
	assert.Equal(t, "", params["note"])
}

func TestBodyJSONNested(t *testing.T) {
	params, err := Body("PUT", "application/json", []byte(`{"user":{"name":"alice"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice"}`, params["user"])
}

func TestBodyJSONMalformed(t *testing.T) {
	params, err := Body("POST", "application/json", []byte(`{"role":`))
	require.Error(t, err)
	assert.Empty(t, params, "malformed body decodes to an empty mapping")
}

func TestBodyForm(t *testing.T) {
	params, err := Body("POST", "application/x-www-form-urlencoded", []byte("name=test&action=submit"))
	require.NoError(t, err)
	assert.Equal(t, "test", params["name"])
	assert.Equal(t, "submit", params["action"])
}

func TestBodyText(t *testing.T) {
	params, err := Body("POST", "text/plain", []byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{TextKey: "hi"}, params)
}

func TestBodySkipped(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
	}{
		{"GET has no body semantics", "GET", "application/json"},
		{"DELETE has no body semantics", "DELETE", "application/json"},
		{"unknown content type", "POST", "application/octet-stream"},
		{"missing content type", "POST", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := Body(tt.method, tt.contentType, []byte(`{"a":"b"}`))
			require.NoError(t, err)
			assert.Empty(t, params)
		})
	}
}

func TestBodyEmpty(t *testing.T) {
	params, err := Body("POST", "application/json", nil)
	require.NoError(t, err)
	assert.Empty(t, params)
}
