package eval

import (
	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

// execStatus reports whether a block ran to completion or hit a return
// statement, mirroring interpreterv3.py's ExecStatus enum.
type execStatus int

const (
	statusContinue execStatus = iota
	statusReturn
)

// execStmts runs stmts in a fresh scope pushed onto env, returning
// statusReturn and the returned value the moment a return statement (or a
// nested block that itself returned) is reached. Grounded on
// interpreterv3.py's __run_statements.
func (ev *Evaluator) execStmts(env *Environment, stmts []ast.Stmt) (execStatus, types.Value, error) {
	env.Push()
	defer env.Pop()

	for _, stmt := range stmts {
		ev.trace(stmt)
		status, ret, err := ev.execStmt(env, stmt)
		if err != nil {
			return statusContinue, nil, err
		}
		if status == statusReturn {
			return statusReturn, ret, nil
		}
	}
	return statusContinue, types.Nil, nil
}

func (ev *Evaluator) execStmt(env *Environment, stmt ast.Stmt) (execStatus, types.Value, error) {
	switch stmt := stmt.(type) {
	case *ast.CallStmt:
		_, err := ev.EvalCall(env, stmt.Call)
		return statusContinue, nil, err
	case *ast.AssignStmt:
		return statusContinue, nil, ev.execAssign(env, stmt)
	case *ast.ReturnStmt:
		return ev.execReturn(env, stmt)
	case *ast.IfStmt:
		return ev.execIf(env, stmt)
	case *ast.WhileStmt:
		return ev.execWhile(env, stmt)
	default:
		return statusContinue, nil, typeErrorf(stmt.Pos(), "unsupported statement node %T", stmt)
	}
}

// execAssign implements variable assignment. Grounded on
// interpreterv3.py's __assign: in this Go model a Cell's sharing already
// gives reference parameters their aliasing behavior, so assignment is
// simply "store through the existing Cell, or create one."
func (ev *Evaluator) execAssign(env *Environment, stmt *ast.AssignStmt) error {
	v, err := ev.EvalExpr(env, stmt.Expr)
	if err != nil {
		return err
	}
	env.Assign(stmt.Name, v)
	return nil
}

func (ev *Evaluator) execReturn(env *Environment, stmt *ast.ReturnStmt) (execStatus, types.Value, error) {
	if stmt.Expr == nil {
		return statusReturn, types.Nil, nil
	}
	v, err := ev.EvalExpr(env, stmt.Expr)
	if err != nil {
		return statusContinue, nil, err
	}
	return statusReturn, v, nil
}

func (ev *Evaluator) execIf(env *Environment, stmt *ast.IfStmt) (execStatus, types.Value, error) {
	cond, err := ev.evalCondition(env, stmt.Cond)
	if err != nil {
		return statusContinue, nil, err
	}
	if cond {
		return ev.execStmts(env, stmt.Then)
	}
	if stmt.Else != nil {
		return ev.execStmts(env, stmt.Else)
	}
	return statusContinue, types.Nil, nil
}

func (ev *Evaluator) execWhile(env *Environment, stmt *ast.WhileStmt) (execStatus, types.Value, error) {
	for {
		cond, err := ev.evalCondition(env, stmt.Cond)
		if err != nil {
			return statusContinue, nil, err
		}
		if !cond {
			return statusContinue, types.Nil, nil
		}
		status, ret, err := ev.execStmts(env, stmt.Body)
		if err != nil {
			return statusContinue, nil, err
		}
		if status == statusReturn {
			return statusReturn, ret, nil
		}
	}
}

// evalCondition evaluates expr and coerces the result to Bool, the way an
// if or while condition is required to (ints coerce, everything else is a
// TypeError).
func (ev *Evaluator) evalCondition(env *Environment, expr ast.Expr) (bool, error) {
	v, err := ev.EvalExpr(env, expr)
	if err != nil {
		return false, err
	}
	k := types.KindOf(v)
	if !isNumericKind(k) {
		return false, typeErrorf(expr.Pos(), "incompatible type %s for condition", k)
	}
	return bool(asBool(v)), nil
}
