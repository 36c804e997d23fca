// Package ast defines the abstract syntax tree consumed by the Brewin
// evaluator (package lang/eval). Nodes are produced by a parser, which is an
// external collaborator outside the scope of this module: callers construct
// an *ast.Program directly (by hand, as tests do, or by decoding one from
// JSON as internal/maincmd does) and hand it to the evaluator.
package ast

import "fmt"

// Position identifies a point in the original source text. It is optional
// metadata: nodes built by hand (as in tests) may leave it at its zero value,
// in which case errors report the position as "?".
type Position struct {
	Line, Col int
}

func (p Position) String() string {
	if p.Line == 0 {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is implemented by every AST node.
type Node interface {
	// Pos returns the node's source position.
	Pos() Position
	// Walk visits the node's children, calling Visitor.Visit for each.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Callable is implemented by the two kinds of node that can back a function
// value: a top-level function declaration and a lambda expression.
type Callable interface {
	Node
	// CallableName returns the declared name, or "" for a lambda.
	CallableName() string
	CallableParams() []*Param
	CallableBody() []Stmt
}

// Param is a formal parameter, either by value (Ref == false) or by
// reference (Ref == true; spec's "refarg").
type Param struct {
	Name string
	Ref  bool
	At   Position
}

// Program is the root of a parsed Brewin source file: a list of (possibly
// overloaded by arity) top-level function declarations.
type Program struct {
	Funcs []*FuncDecl
}

func (p *Program) Pos() Position { return Position{} }
func (p *Program) Walk(v Visitor) {
	for _, f := range p.Funcs {
		Walk(v, f)
	}
}

// FuncDecl is a top-level function declaration.
type FuncDecl struct {
	Name   string
	Params []*Param
	Body   []Stmt
	At     Position
}

func (f *FuncDecl) Pos() Position             { return f.At }
func (f *FuncDecl) CallableName() string      { return f.Name }
func (f *FuncDecl) CallableParams() []*Param  { return f.Params }
func (f *FuncDecl) CallableBody() []Stmt      { return f.Body }
func (f *FuncDecl) Walk(v Visitor) {
	for _, s := range f.Body {
		Walk(v, s)
	}
}

var _ Callable = (*FuncDecl)(nil)
