package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/brewin/lang/ast"
)

const sampleProgram = `{
  "funcs": [
    {
      "name": "main",
      "params": [],
      "body": [
        {"kind": "assign", "name": "x", "expr": {"kind": "int", "val": 41}},
        {"kind": "call", "name": "print", "args": [
          {"kind": "binary", "op": "+", "left": {"kind": "var", "name": "x"}, "right": {"kind": "int", "val": 1}}
        ]}
      ]
    }
  ]
}`

func TestUnmarshalProgram(t *testing.T) {
	var prog ast.Program
	require.NoError(t, json.Unmarshal([]byte(sampleProgram), &prog))

	require.Len(t, prog.Funcs, 1)
	main := prog.Funcs[0]
	assert.Equal(t, "main", main.Name)
	require.Len(t, main.Body, 2)

	assign, ok := main.Body[0].(*ast.AssignStmt)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
	lit, ok := assign.Expr.(*ast.IntLit)
	require.True(t, ok)
	assert.EqualValues(t, 41, lit.Val)

	callStmt, ok := main.Body[1].(*ast.CallStmt)
	require.True(t, ok)
	assert.Equal(t, "print", callStmt.Call.Name)
	require.Len(t, callStmt.Call.Args, 1)
	bin, ok := callStmt.Call.Args[0].(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestUnmarshalProgramUnknownKind(t *testing.T) {
	var prog ast.Program
	err := json.Unmarshal([]byte(`{"funcs":[{"name":"main","params":[],"body":[{"kind":"bogus"}]}]}`), &prog)
	require.Error(t, err)
}

func TestUnmarshalLambdaAndIf(t *testing.T) {
	src := `{
	  "funcs": [{"name": "main", "params": [], "body": [
	    {"kind": "assign", "name": "f", "expr": {"kind": "lambda", "params": [{"name": "y", "ref": false}], "body": [
	      {"kind": "return", "expr": {"kind": "var", "name": "y"}}
	    ]}},
	    {"kind": "if", "cond": {"kind": "bool", "val": true},
	      "then": [{"kind": "return"}],
	      "else": [{"kind": "return"}]}
	  ]}]
	}`
	var prog ast.Program
	require.NoError(t, json.Unmarshal([]byte(src), &prog))
	main := prog.Funcs[0]

	assign := main.Body[0].(*ast.AssignStmt)
	lambda, ok := assign.Expr.(*ast.LambdaExpr)
	require.True(t, ok)
	assert.Len(t, lambda.Params, 1)
	assert.Equal(t, "y", lambda.Params[0].Name)

	ifStmt := main.Body[1].(*ast.IfStmt)
	assert.NotNil(t, ifStmt.Else)
}
