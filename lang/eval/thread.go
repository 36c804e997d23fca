package eval

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// IO abstracts the console the spec's print/inputi/inputs builtins talk to,
// so tests and the CLI can each supply their own Reader/Writer without the
// evaluator importing os directly. Grounded on mna-nenuphar's Thread.Stdin/
// Stdout/Stderr fields.
type IO interface {
	io.Writer
	// ReadLine reads one line of input (without its trailing newline), for
	// inputi/inputs.
	ReadLine() (string, error)
}

// Thread carries the per-run state that is not part of the lexical
// evaluation itself: the I/O the program talks to, a cancellable context
// for the CLI's signal handling, an identity for log correlation, and the
// optional trace sink.
//
// Grounded on mna-nenuphar's lang/machine.Thread, trimmed to what a
// tree-walking evaluator with no steps/recursion budget of its own needs;
// the ID field exercises google/uuid the way nenuphar's Thread.Name would,
// giving each run a unique trace-correlation handle.
type Thread struct {
	ID uuid.UUID

	IO IO

	// Trace, when non-nil, receives one line per executed statement (see
	// trace.go), in the spirit of interpreterv3.py's `trace_output` flag.
	Trace io.Writer

	// MaxCallDepth bounds function call nesting to guard against runaway
	// recursion; 0 means unlimited.
	MaxCallDepth int

	ctx context.Context
}

// NewThread returns a Thread with a fresh ID bound to ctx and io.
func NewThread(ctx context.Context, io IO) *Thread {
	return &Thread{ID: uuid.New(), IO: io, ctx: ctx}
}

// Context returns the thread's cancellation context.
func (t *Thread) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}
