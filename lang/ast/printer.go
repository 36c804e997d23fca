package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints an AST node, indenting children under their parent.
// It is used by the evaluator's trace mode to show each statement before it
// executes.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer
	// WithPos includes each node's source position when true.
	WithPos bool
}

// Print walks n and writes one indented line per node to p.Output.
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, withPos: p.WithPos}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w       io.Writer
	withPos bool
	depth   int
	err     error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	indent := strings.Repeat(". ", p.depth)
	p.depth++
	if p.withPos {
		_, p.err = fmt.Fprintf(p.w, "%s[%s] %s\n", indent, n.Pos(), describe(n))
	} else {
		_, p.err = fmt.Fprintf(p.w, "%s%s\n", indent, describe(n))
	}
	return p
}

// describe returns a short, one-line label for a node, similar in spirit to
// the teacher's Format method but tailored to Brewin's small node set.
func describe(n Node) string {
	switch n := n.(type) {
	case *Program:
		return fmt.Sprintf("program {funcs=%d}", len(n.Funcs))
	case *FuncDecl:
		return fmt.Sprintf("func %s/%d", n.Name, len(n.Params))
	case *LambdaExpr:
		return fmt.Sprintf("lambda/%d", len(n.Params))
	case *AssignStmt:
		return "= " + n.Name
	case *CallStmt:
		return "call " + n.Call.Name
	case *CallExpr:
		return fmt.Sprintf("call %s/%d", n.Name, len(n.Args))
	case *IfStmt:
		return "if"
	case *WhileStmt:
		return "while"
	case *ReturnStmt:
		return "return"
	case *VarExpr:
		return "var " + n.Name
	case *IntLit:
		return fmt.Sprintf("int %d", n.Val)
	case *StringLit:
		return fmt.Sprintf("string %q", n.Val)
	case *BoolLit:
		return fmt.Sprintf("bool %t", n.Val)
	case *NilLit:
		return "nil"
	case *BinaryExpr:
		return "binary " + string(n.Op)
	case *UnaryExpr:
		return "unary " + string(n.Op)
	default:
		return fmt.Sprintf("%T", n)
	}
}
