package types

import "github.com/mna/brewin/lang/ast"

// Function is a callable value: either a reference to a top-level function
// declaration (Closure == nil, since top-level functions see only the
// global function table, never an enclosing scope) or a lambda expression
// together with the cells it captured at the point it was evaluated
// (Closure != nil).
//
// Grounded on mna-nenuphar's lang/machine.Function (Funcode/Module/Freevars),
// adapted away from bytecode: Code takes the place of Funcode, and Closure
// takes the place of Freevars, storing Cells instead of a frozen tuple: the
// Cells are fresh copies made when the lambda is evaluated (see
// eval.Environment.Snapshot), so they do not follow later assignments in the
// defining scope, but they are reused across every call of this Function,
// so a call's assignments to captured variables are seen by the next call.
type Function struct {
	// Code is the declaration or lambda expression this function runs.
	Code ast.Callable
	// Closure holds the variable cells captured from the enclosing scopes at
	// the moment the lambda was evaluated. It is nil for top-level functions.
	Closure map[string]*Cell
}

var _ Value = (*Function)(nil)

// NewTopLevel wraps a top-level function declaration as a callable Value.
func NewTopLevel(decl *ast.FuncDecl) *Function {
	return &Function{Code: decl}
}

// NewClosure wraps a lambda expression together with the cells it captured.
func NewClosure(lam *ast.LambdaExpr, captured map[string]*Cell) *Function {
	return &Function{Code: lam, Closure: captured}
}

// Name returns the function's declared name, or "lambda" for a lambda
// expression, which the spec leaves anonymous.
func (fn *Function) Name() string {
	if n := fn.Code.CallableName(); n != "" {
		return n
	}
	return "lambda"
}

// Arity returns the number of formal parameters.
func (fn *Function) Arity() int { return len(fn.Code.CallableParams()) }

// String renders the printable form of a function value, "FUNCTION name" or
// "FUNCTION Lambda" for a lambda, matching interpreterv3.py's type_value.py
// (`f"FUNCTION {... or 'Lambda'}"`).
func (fn *Function) String() string {
	if fn.Code.CallableName() == "" {
		return "FUNCTION Lambda"
	}
	return "FUNCTION " + fn.Name()
}
func (fn *Function) Type() string { return "function" }
func (fn *Function) Truth() Bool  { return True }
