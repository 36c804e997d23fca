// Package eval implements the Brewin evaluator: a tree-walking interpreter
// over the lang/ast node set, built around an Environment stack of scoped
// variable Cells and a FuncTable of arity-overloaded functions.
package eval

import "github.com/mna/brewin/lang/ast"

// Evaluator holds the state shared across a single program run: the
// program's function table and the thread it is running on. A fresh
// Evaluator is created per Run, so concurrent runs of the same program
// (e.g. in tests) never share mutable state.
type Evaluator struct {
	Funcs  *FuncTable
	Thread *Thread
	depth  int
}

// Run builds a function table from prog and calls main/0 to completion,
// returning any fatal *Error the program raised. Grounded on
// interpreterv3.py's Interpreter.run.
func Run(prog *ast.Program, th *Thread) error {
	funcs, err := NewFuncTable(prog)
	if err != nil {
		return err
	}
	ev := &Evaluator{Funcs: funcs, Thread: th}
	main, ok := funcs.Lookup("main", 0)
	if !ok {
		return nameErrorf(ast.Position{}, "function main/0 not found")
	}
	_, _, err = ev.execStmts(NewEnvironment(), main.Code.CallableBody())
	return err
}
