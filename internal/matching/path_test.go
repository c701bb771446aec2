package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		path       string
		wantMatch  bool
		wantParams map[string]string
	}{
		{
			name:       "exact literal match",
			pattern:    "/api/users",
			path:       "/api/users",
			wantMatch:  true,
			wantParams: map[string]string{},
		},
		{
			name:       "single named parameter",
			pattern:    "/users/:id",
			path:       "/users/123",
			wantMatch:  true,
			wantParams: map[string]string{"id": "123"},
		},
		{
			name:      "extra trailing segment",
			pattern:   "/users/:id",
			path:      "/users/123/extra",
			wantMatch: false,
		},
		{
			name:      "missing segment",
			pattern:   "/users/:id/posts",
			path:      "/users/123",
			wantMatch: false,
		},
		{
			name:       "multiple parameters",
			pattern:    "/orgs/:org/repos/:repo",
			path:       "/orgs/acme/repos/widget",
			wantMatch:  true,
			wantParams: map[string]string{"org": "acme", "repo": "widget"},
		},
		{
			name:      "literal mismatch",
			pattern:   "/api/users",
			path:      "/api/orders",
			wantMatch: false,
		},
		{
			name:       "numeric segment stays a string",
			pattern:    "/items/:n",
			path:       "/items/007",
			wantMatch:  true,
			wantParams: map[string]string{"n": "007"},
		},
		{
			name:       "trailing slash tolerated",
			pattern:    "/users/:id",
			path:       "/users/42/",
			wantMatch:  true,
			wantParams: map[string]string{"id": "42"},
		},
		{
			name:      "no wildcard support",
			pattern:   "/api/*",
			path:      "/api/users",
			wantMatch: false,
		},
		{
			name:       "root pattern",
			pattern:    "/",
			path:       "/",
			wantMatch:  true,
			wantParams: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, ok := MatchPath(tt.pattern, tt.path)
			require.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantParams, params)
			} else {
				assert.Nil(t, params)
			}
		})
	}
}

func TestMatchMethod(t *testing.T) {
	assert.True(t, MatchMethod("GET", "GET"))
	assert.True(t, MatchMethod("get", "GET"))
	assert.False(t, MatchMethod("GET", "POST"))
}
