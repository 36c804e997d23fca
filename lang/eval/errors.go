package eval

import (
	"fmt"

	"github.com/mna/brewin/lang/ast"
)

// ErrorKind distinguishes the two fatal error categories the spec defines.
// Both are unrecoverable: evaluation stops the moment one is raised.
type ErrorKind int

const (
	NameError ErrorKind = iota
	TypeError
)

func (k ErrorKind) String() string {
	if k == NameError {
		return "NAME_ERROR"
	}
	return "TYPE_ERROR"
}

// Error is the error type returned for every fatal condition the evaluator
// detects: undefined variables and functions (NameError) and operand or
// argument type mismatches (TypeError). It carries the source position of
// the offending node so a caller can report where the program failed,
// analogous to mna-nenuphar's EvalError but using ordinary Go error returns
// rather than panic/recover, which fits the simpler single-threaded
// tree-walking evaluator better than the teacher's machine package did.
type Error struct {
	Kind ErrorKind
	Msg  string
	At   ast.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.At, e.Msg)
}

func nameErrorf(at ast.Position, format string, args ...any) error {
	return &Error{Kind: NameError, At: at, Msg: fmt.Sprintf(format, args...)}
}

func typeErrorf(at ast.Position, format string, args ...any) error {
	return &Error{Kind: TypeError, At: at, Msg: fmt.Sprintf(format, args...)}
}
