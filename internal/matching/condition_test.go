package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCondition(t *testing.T) {
	cond, err := CompileCondition(`method == "GET"`)
	require.NoError(t, err)
	require.NotNil(t, cond)
	assert.Equal(t, `method == "GET"`, cond.String())

	cond, err = CompileCondition("")
	require.NoError(t, err)
	assert.Nil(t, cond)

	_, err = CompileCondition(`method ==`)
	require.Error(t, err)
}

func TestConditionEval(t *testing.T) {
	in := &Input{
		Method: "POST",
		Host:   "api.example.com",
		Path:   "/login",
		Query:  map[string]string{"role": "admin"},
		Body:   map[string]string{"name": "test"},
		Params: map[string]string{"id": "42"},
	}

	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"method check", `method == "POST"`, true},
		{"host substring", `host contains "example"`, true},
		{"query lookup", `query.role == "admin"`, true},
		{"body lookup", `body.name == "test"`, true},
		{"param lookup", `params.id == "42"`, true},
		{"combined", `method == "POST" && query.role == "admin"`, true},
		{"false result", `path == "/logout"`, false},
		{"absent variable is nil", `missing == nil`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := CompileCondition(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cond.Eval(in))
		})
	}
}

func TestNilConditionAlwaysPasses(t *testing.T) {
	var cond *Condition
	assert.True(t, cond.Eval(&Input{Method: "GET"}))
}
