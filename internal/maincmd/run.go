package maincmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mna/mainer"

	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/eval"
)

// Run evaluates the program described by the JSON AST found at args[0], or
// read from stdin if args is empty or args[0] is "-". Grounded on
// interpreterv3.py's Interpreter.run / main.py, with the parser's job
// replaced by decoding the externally-produced JSON AST (see
// lang/ast/json.go) since parsing Brewin source text is outside this
// module's scope.
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	src, err := openSource(stdio, args)
	if err != nil {
		return printError(stdio, err)
	}
	defer src.Close()

	var prog ast.Program
	if err := json.NewDecoder(src).Decode(&prog); err != nil {
		return printError(stdio, err)
	}

	io := &stdioAdapter{w: stdio.Stdout, r: bufio.NewReader(stdio.Stdin)}
	th := eval.NewThread(ctx, io)
	if c.Trace {
		th.Trace = stdio.Stderr
	}
	if err := eval.Run(&prog, th); err != nil {
		return printError(stdio, err)
	}
	return nil
}

func openSource(stdio mainer.Stdio, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		if f, ok := stdio.Stdin.(*os.File); ok && isInteractive(f) {
			fmt.Fprintln(stdio.Stderr, "reading program as JSON from stdin; press Ctrl-D when done")
		}
		return io.NopCloser(stdio.Stdin), nil
	}
	return os.Open(args[0])
}

// isInteractive reports whether f is a terminal, used to decide whether to
// print a hint before blocking on stdin read when no path argument was
// given; exercises mattn/go-isatty the way nenuphar's CLI pulls it in for
// the same purpose.
func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stdioAdapter implements eval.IO over the CLI's stdio streams.
type stdioAdapter struct {
	w io.Writer
	r *bufio.Reader
}

func (s *stdioAdapter) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *stdioAdapter) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}
