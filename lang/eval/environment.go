package eval

import (
	"golang.org/x/exp/maps"

	"github.com/mna/brewin/lang/types"
)

// Environment is a stack of lexical scopes, each mapping variable names to
// the Cell currently bound to them. It mirrors the behavior of the
// original interpreter's EnvironmentManager (env_v3.py): Lookup/Assign walk
// the stack from the innermost scope outward, and Create always binds in
// the top-most scope regardless of shadowing.
//
// Grounded on env_v3.py's EnvironmentManager and, for the Go idiom of a
// slice-of-maps rather than a linked chain of parent pointers, on
// CWBudde-go-dws's internal/interp/runtime.Environment and the
// boattime-awsl Environment sample, both of which favor this flatter shape
// over nenuphar's single global scope.
type Environment struct {
	scopes []map[string]*types.Cell
}

// NewEnvironment returns an Environment with a single, empty top scope.
func NewEnvironment() *Environment {
	return &Environment{scopes: []map[string]*types.Cell{make(map[string]*types.Cell)}}
}

// Push opens a new, empty scope on top of the stack (entering a function
// call or a block).
func (e *Environment) Push() {
	e.scopes = append(e.scopes, make(map[string]*types.Cell))
}

// PushScope opens a new scope pre-populated with scope, used to install a
// lambda's captured cells as the call's outermost visible bindings.
func (e *Environment) PushScope(scope map[string]*types.Cell) {
	e.scopes = append(e.scopes, scope)
}

// Pop discards the top-most scope.
func (e *Environment) Pop() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Lookup searches every scope, innermost first, for name.
func (e *Environment) Lookup(name string) (*types.Cell, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if c, ok := e.scopes[i][name]; ok {
			return c, true
		}
	}
	return nil, false
}

// Create binds name to a fresh Cell holding v in the top-most scope,
// shadowing any binding of the same name in an outer scope.
func (e *Environment) Create(name string, v types.Value) *types.Cell {
	c := types.NewCell(v)
	e.scopes[len(e.scopes)-1][name] = c
	return c
}

// BindCell binds name directly to cell in the top-most scope, used to give
// a reference parameter the same Cell as its caller-side variable.
func (e *Environment) BindCell(name string, cell *types.Cell) {
	e.scopes[len(e.scopes)-1][name] = cell
}

// Assign sets the value of the nearest existing binding of name, or creates
// one in the top-most scope if name is not yet bound anywhere.
func (e *Environment) Assign(name string, v types.Value) {
	if c, ok := e.Lookup(name); ok {
		c.Set(v)
		return
	}
	e.Create(name, v)
}

// Snapshot flattens every visible binding into a single map, innermost
// scope winning on name collision. It is used to capture a lambda's free
// variables at the point the lambda expression is evaluated: each binding
// gets a fresh Cell holding its current value, so later assignments in the
// defining scope are not seen by the snapshot (and vice versa).
func (e *Environment) Snapshot() map[string]*types.Cell {
	out := make(map[string]*types.Cell)
	for _, scope := range e.scopes {
		maps.Copy(out, scope)
	}
	for name, c := range out {
		out[name] = types.NewCell(c.Get())
	}
	return out
}
