package eval

import (
	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

// EvalCall resolves and invokes the function named by call, returning its
// result. It is used both for call expressions and call statements (whose
// result the caller discards).
//
// Grounded on interpreterv3.py's __call_func, with the reference-parameter
// binding simplified: every actual argument is evaluated against the
// caller's environment before the callee's frame is pushed, rather than
// interleaving pushes and pops per-argument the way the original's
// lambda-vs-non-lambda special casing does. Closures are bound to the
// Cells captured once at lambda-creation time (see types.NewClosure),
// reused unmodified across every call of that Function value, so mutation
// of a captured variable during one call is visible on the next call of
// the same closure instance, matching the original's reuse of a single
// closure_dict across invocations while decoupling it from the defining
// scope's later mutations.
func (ev *Evaluator) EvalCall(env *Environment, call *ast.CallExpr) (types.Value, error) {
	if isBuiltin(call.Name) {
		return ev.callBuiltin(env, call)
	}
	fn, err := ev.resolveCallable(env, call.Name, len(call.Args), call.At)
	if err != nil {
		return nil, err
	}
	return ev.invoke(fn, call.Args, env, call.At)
}

func (ev *Evaluator) resolveCallable(env *Environment, name string, arity int, at ast.Position) (*types.Function, error) {
	if fn, ok := ev.Funcs.Lookup(name, arity); ok {
		return fn, nil
	}
	if cell, ok := env.Lookup(name); ok {
		fn, ok := cell.Get().(*types.Function)
		if !ok {
			return nil, typeErrorf(at, "%s is not a function", name)
		}
		if fn.Arity() != arity {
			return nil, typeErrorf(at, "%s expects %d args, got %d", name, fn.Arity(), arity)
		}
		return fn, nil
	}
	if set, ok := ev.Funcs.Overloads(name); ok {
		return nil, nameErrorf(at, "function %s taking %d params not found (have: %v)", name, arity, set.Arities())
	}
	return nil, nameErrorf(at, "function %s not found", name)
}

func (ev *Evaluator) invoke(fn *types.Function, argExprs []ast.Expr, callerEnv *Environment, at ast.Position) (types.Value, error) {
	params := fn.Code.CallableParams()
	if len(argExprs) != len(params) {
		return nil, typeErrorf(at, "function %s expects %d args, got %d", fn.Name(), len(params), len(argExprs))
	}
	if ev.Thread.MaxCallDepth > 0 && ev.depth >= ev.Thread.MaxCallDepth {
		return nil, typeErrorf(at, "maximum call depth of %d exceeded", ev.Thread.MaxCallDepth)
	}

	callEnv := NewEnvironment()
	if fn.Closure != nil {
		callEnv.PushScope(fn.Closure)
	}
	callEnv.Push()
	for i, param := range params {
		if param.Ref {
			ve, ok := argExprs[i].(*ast.VarExpr)
			if !ok {
				return nil, typeErrorf(at, "argument %d to %s must be a variable to bind by reference", i+1, fn.Name())
			}
			cell, ok := callerEnv.Lookup(ve.Name)
			if !ok {
				return nil, nameErrorf(ve.At, "variable %s not found", ve.Name)
			}
			callEnv.BindCell(param.Name, cell)
			continue
		}
		v, err := ev.EvalExpr(callerEnv, argExprs[i])
		if err != nil {
			return nil, err
		}
		callEnv.Create(param.Name, v)
	}

	ev.depth++
	_, ret, err := ev.execStmts(callEnv, fn.Code.CallableBody())
	ev.depth--
	if err != nil {
		return nil, err
	}
	return ret, nil
}
