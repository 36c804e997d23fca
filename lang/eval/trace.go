package eval

import (
	"fmt"

	"github.com/mna/brewin/lang/ast"
)

// trace writes a structural, indented record of stmt to the thread's trace
// sink, if any, before it executes. Grounded on interpreterv3.py's
// `if self.trace_output: print(statement)`, using ast.Printer (the
// Walk/Visitor-based node printer kept from the teacher's AST package) in
// place of the original's raw dict repr. Each record is headed by the
// thread's ID so that interleaved runs sharing a trace sink can be told
// apart.
func (ev *Evaluator) trace(stmt ast.Stmt) {
	if ev.Thread.Trace == nil {
		return
	}
	fmt.Fprintf(ev.Thread.Trace, "[%s]\n", ev.Thread.ID)
	p := &ast.Printer{Output: ev.Thread.Trace, WithPos: true}
	_ = p.Print(stmt)
}
