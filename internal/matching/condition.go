package matching

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Condition is a compiled route gate expression. A nil *Condition always
// passes, so routes without a When clause need no special casing.
type Condition struct {
	src  string
	prog *vm.Program
}

// CompileCondition compiles a When expression. The expression sees the
// variables method, host, path (strings) and query, body, params
// (map[string]string) and must evaluate to a boolean.
func CompileCondition(src string) (*Condition, error) {
	if src == "" {
		return nil, nil
	}
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling condition %q: %w", src, err)
	}
	return &Condition{src: src, prog: prog}, nil
}

// String returns the original expression source.
func (c *Condition) String() string {
	if c == nil {
		return ""
	}
	return c.src
}

// Eval runs the condition against request facts. Runtime failures count as
// a non-match rather than an error; matching never fails the request.
func (c *Condition) Eval(in *Input) bool {
	if c == nil {
		return true
	}
	env := map[string]any{
		"method": in.Method,
		"host":   in.Host,
		"path":   in.Path,
		"query":  in.Query,
		"body":   in.Body,
		"params": in.Params,
	}
	out, err := expr.Run(c.prog, env)
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}
