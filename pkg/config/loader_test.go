package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
version: "1"
namespaces:
  - host: api.example.com
    routes:
      - method: GET
        path: /users/:id
        response:
          status: 200
          body:
            name: alice
      - method: POST
        path: /login
        body:
          user: admin
        response:
          status: 201
          kind: text
          body: welcome
`

const sampleJSON = `{
  "version": "1",
  "namespaces": [
    {
      "host": "auth.example.com",
      "routes": [
        {"method": "GET", "path": "/token", "response": {"status": 200, "kind": "text", "body": "tok"}}
      ]
    }
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stubs.yaml", sampleYAML)

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Namespaces, 1)
	assert.Equal(t, "api.example.com", c.Namespaces[0].Host)
	require.Len(t, c.Namespaces[0].Routes, 2)
	assert.Equal(t, "/users/:id", c.Namespaces[0].Routes[0].Path)
	assert.Equal(t, "admin", c.Namespaces[0].Routes[1].Body["user"])
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "stubs.json", sampleJSON)

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Namespaces, 1)
	assert.Equal(t, "auth.example.com", c.Namespaces[0].Host)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadFileBadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "namespaces: [")
	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidYAML)
}

func TestLoadFileBadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.json", "{")
	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadFileInvalidCollection(t *testing.T) {
	path := writeFile(t, t.TempDir(), "invalid.yaml", "version: \"1\"\nnamespaces: []\n")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespaces")
}

func TestLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", sampleYAML)
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeFile(t, sub, "b.json", sampleJSON)

	collections, err := LoadGlob(filepath.Join(dir, "**", "*.json"))
	require.NoError(t, err)
	require.Len(t, collections, 1)

	collections, err = LoadGlob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Len(t, collections, 1)
}

func TestLoadGlobNoMatches(t *testing.T) {
	collections, err := LoadGlob(filepath.Join(t.TempDir(), "*.yaml"))
	require.NoError(t, err)
	assert.Empty(t, collections)
}
