package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

func TestIntTruth(t *testing.T) {
	assert.Equal(t, types.False, types.Int(0).Truth())
	assert.Equal(t, types.True, types.Int(1).Truth())
	assert.Equal(t, types.True, types.Int(-1).Truth())
}

func TestBoolAsInt(t *testing.T) {
	assert.Equal(t, types.Int(1), types.True.AsInt())
	assert.Equal(t, types.Int(0), types.False.AsInt())
}

func TestStringTruth(t *testing.T) {
	assert.Equal(t, types.False, types.String("").Truth())
	assert.Equal(t, types.True, types.String("a").Truth())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, types.KindInt, types.KindOf(types.Int(1)))
	assert.Equal(t, types.KindBool, types.KindOf(types.True))
	assert.Equal(t, types.KindString, types.KindOf(types.String("")))
	assert.Equal(t, types.KindNil, types.KindOf(types.Nil))
}

func TestOverloadSet(t *testing.T) {
	set := types.NewOverloadSet()
	fn0 := types.NewTopLevel(&ast.FuncDecl{Name: "f"})
	fn1 := types.NewTopLevel(&ast.FuncDecl{Name: "f", Params: []*ast.Param{{Name: "x"}}})
	set.Put(fn0)
	set.Put(fn1)

	got, ok := set.Get(1)
	require.True(t, ok)
	assert.Same(t, fn1, got)
	assert.Equal(t, 2, set.Len())

	_, ok = set.Get(2)
	assert.False(t, ok)
}

func TestFunctionNameDefaultsToLambda(t *testing.T) {
	fn := types.NewClosure(&ast.LambdaExpr{}, nil)
	assert.Equal(t, "lambda", fn.Name())
	assert.Equal(t, "function", fn.Type())
	assert.Equal(t, "FUNCTION Lambda", fn.String())
}

func TestFunctionStringUsesDeclaredName(t *testing.T) {
	fn := types.NewTopLevel(&ast.FuncDecl{Name: "foo"})
	assert.Equal(t, "FUNCTION foo", fn.String())
}

func TestCellSharing(t *testing.T) {
	cell := types.NewCell(types.Int(1))
	alias := cell
	alias.Set(types.Int(2))
	assert.Equal(t, types.Int(2), cell.Get())
}
