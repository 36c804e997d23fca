package maincmd_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/mna/brewin/internal/maincmd"
)

const fibProgram = `{
  "funcs": [
    {"name": "fib", "params": [{"name": "n", "ref": false}], "body": [
      {"kind": "if", "cond": {"kind": "binary", "op": "<", "left": {"kind": "var", "name": "n"}, "right": {"kind": "int", "val": 2}},
        "then": [{"kind": "return", "expr": {"kind": "var", "name": "n"}}]},
      {"kind": "return", "expr": {"kind": "binary", "op": "+",
        "left": {"kind": "call", "name": "fib", "args": [{"kind": "binary", "op": "-", "left": {"kind": "var", "name": "n"}, "right": {"kind": "int", "val": 1}}]},
        "right": {"kind": "call", "name": "fib", "args": [{"kind": "binary", "op": "-", "left": {"kind": "var", "name": "n"}, "right": {"kind": "int", "val": 2}}]}
      }}
    ]},
    {"name": "main", "params": [], "body": [
      {"kind": "call", "name": "print", "args": [{"kind": "call", "name": "fib", "args": [{"kind": "int", "val": 12}]}]}
    ]}
  ]
}`

func TestRunFromJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader(fibProgram),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	c := &maincmd.Cmd{}
	err := c.Run(context.Background(), stdio, nil)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, stdout.String())
}
