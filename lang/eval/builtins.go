package eval

import (
	"strconv"
	"strings"

	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

// isBuiltin reports whether name is one of the spec's predeclared
// functions, which are resolved before the user's function table and
// cannot be shadowed by a user declaration of the same name.
func isBuiltin(name string) bool {
	switch name {
	case "print", "inputi", "inputs":
		return true
	}
	return false
}

// callBuiltin evaluates a call to one of the predeclared functions.
// Grounded on interpreterv3.py's __call_print/__call_input.
func (ev *Evaluator) callBuiltin(env *Environment, call *ast.CallExpr) (types.Value, error) {
	switch call.Name {
	case "print":
		return ev.callPrint(env, call)
	case "inputi", "inputs":
		return ev.callInput(env, call)
	}
	panic("eval: callBuiltin on non-builtin name " + call.Name)
}

func (ev *Evaluator) callPrint(env *Environment, call *ast.CallExpr) (types.Value, error) {
	var sb strings.Builder
	for _, argExpr := range call.Args {
		v, err := ev.EvalExpr(env, argExpr)
		if err != nil {
			return nil, err
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("\n")
	if _, err := ev.Thread.IO.Write([]byte(sb.String())); err != nil {
		return nil, err
	}
	return types.Nil, nil
}

func (ev *Evaluator) callInput(env *Environment, call *ast.CallExpr) (types.Value, error) {
	if len(call.Args) > 1 {
		return nil, nameErrorf(call.At, "no %s function that takes more than 1 parameter", call.Name)
	}
	if len(call.Args) == 1 {
		v, err := ev.EvalExpr(env, call.Args[0])
		if err != nil {
			return nil, err
		}
		if _, err := ev.Thread.IO.Write([]byte(v.String())); err != nil {
			return nil, err
		}
	}
	line, err := ev.Thread.IO.ReadLine()
	if err != nil {
		return nil, err
	}
	if call.Name == "inputs" {
		return types.String(line), nil
	}
	n, convErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if convErr != nil {
		return nil, typeErrorf(call.At, "inputi expected an integer, got %q", line)
	}
	return types.Int(n), nil
}
