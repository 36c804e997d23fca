package eval

import (
	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

// EvalExpr evaluates expr in env, returning the Value it denotes. Grounded
// on interpreterv3.py's __eval_expr.
func (ev *Evaluator) EvalExpr(env *Environment, expr ast.Expr) (types.Value, error) {
	switch expr := expr.(type) {
	case *ast.IntLit:
		return types.Int(expr.Val), nil
	case *ast.StringLit:
		return types.String(expr.Val), nil
	case *ast.BoolLit:
		return types.Bool(expr.Val), nil
	case *ast.NilLit:
		return types.Nil, nil
	case *ast.VarExpr:
		return ev.evalVar(env, expr)
	case *ast.LambdaExpr:
		return types.NewClosure(expr, env.Snapshot()), nil
	case *ast.CallExpr:
		return ev.EvalCall(env, expr)
	case *ast.BinaryExpr:
		return ev.evalBinary(env, expr)
	case *ast.UnaryExpr:
		return ev.evalUnary(env, expr)
	default:
		return nil, typeErrorf(expr.Pos(), "unsupported expression node %T", expr)
	}
}

func (ev *Evaluator) evalVar(env *Environment, expr *ast.VarExpr) (types.Value, error) {
	if cell, ok := env.Lookup(expr.Name); ok {
		return cell.Get(), nil
	}
	// A bare reference to a declared function name denotes that function,
	// provided the name isn't overloaded (an overloaded name is ambiguous
	// without a call to select an arity).
	if set, ok := ev.Funcs.Overloads(expr.Name); ok {
		if set.Len() > 1 {
			return nil, nameErrorf(expr.At, "cannot resolve overloaded function %s to a single value", expr.Name)
		}
		for _, arity := range set.Arities() {
			fn, _ := set.Get(arity)
			return fn, nil
		}
	}
	return nil, nameErrorf(expr.At, "variable %s not found", expr.Name)
}

func (ev *Evaluator) evalBinary(env *Environment, expr *ast.BinaryExpr) (types.Value, error) {
	l, err := ev.EvalExpr(env, expr.Left)
	if err != nil {
		return nil, err
	}
	r, err := ev.EvalExpr(env, expr.Right)
	if err != nil {
		return nil, err
	}
	return EvalBinary(expr.Op, l, r, expr.At)
}

func (ev *Evaluator) evalUnary(env *Environment, expr *ast.UnaryExpr) (types.Value, error) {
	v, err := ev.EvalExpr(env, expr.Operand)
	if err != nil {
		return nil, err
	}
	return EvalUnary(expr.Op, v, expr.At)
}
