package eval

import (
	"github.com/dolthub/swiss"
	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

// FuncTable maps a declared function name to its OverloadSet, resolving
// the spec's arity-based overloading. It is built once per program and
// consulted by every call expression. No variables are created in the
// Environment for declared functions: a bare reference to a function name
// (not followed by a call) that is not shadowed by a variable falls back to
// Overloads (see Evaluator.evalVar) and evaluates to the callable Value
// stored here.
//
// Grounded on interpreterv3.py's __set_up_function_table/__get_func_by_name,
// reimplemented with dolthub/swiss for the name->overloads map in place of
// the original's nested dict.
type FuncTable struct {
	byName *swiss.Map[string, *types.OverloadSet]
}

// NewFuncTable builds a FuncTable from every function declaration in prog,
// returning a TypeError if the same name and arity are declared twice.
func NewFuncTable(prog *ast.Program) (*FuncTable, error) {
	ft := &FuncTable{byName: swiss.NewMap[string, *types.OverloadSet](8)}
	for _, decl := range prog.Funcs {
		set, ok := ft.byName.Get(decl.Name)
		if !ok {
			set = types.NewOverloadSet()
			ft.byName.Put(decl.Name, set)
		}
		fn := types.NewTopLevel(decl)
		if _, exists := set.Get(fn.Arity()); exists {
			return nil, typeErrorf(decl.At, "function %s/%d declared more than once", decl.Name, fn.Arity())
		}
		set.Put(fn)
	}
	if _, ok := ft.byName.Get("main"); !ok {
		return nil, nameErrorf(ast.Position{}, "program has no main function")
	}
	return ft, nil
}

// Lookup returns the function declared under name with exactly arity
// parameters.
func (ft *FuncTable) Lookup(name string, arity int) (*types.Function, bool) {
	set, ok := ft.byName.Get(name)
	if !ok {
		return nil, false
	}
	return set.Get(arity)
}

// Overloads returns the OverloadSet declared under name, if any. It backs
// plain variable references to a function name (e.g. `x = foo;` without a
// call), which are only valid when the name has exactly one overload.
func (ft *FuncTable) Overloads(name string) (*types.OverloadSet, bool) {
	return ft.byName.Get(name)
}
