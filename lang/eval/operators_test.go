package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

func TestEvalBinaryArithmeticCoercion(t *testing.T) {
	v, err := EvalBinary(ast.OpAdd, types.Bool(true), types.Int(41), ast.Position{})
	require.NoError(t, err)
	assert.Equal(t, types.Int(42), v)
}

func TestEvalBinaryStringConcat(t *testing.T) {
	v, err := EvalBinary(ast.OpAdd, types.String("foo"), types.String("bar"), ast.Position{})
	require.NoError(t, err)
	assert.Equal(t, types.String("foobar"), v)
}

func TestEvalBinaryStringPlusIntIsTypeError(t *testing.T) {
	_, err := EvalBinary(ast.OpAdd, types.String("foo"), types.Int(1), ast.Position{})
	require.Error(t, err)
	var evalErr *Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, TypeError, evalErr.Kind)
}

func TestEvalBinaryComparisonRejectsBool(t *testing.T) {
	_, err := EvalBinary(ast.OpLt, types.Bool(true), types.Bool(false), ast.Position{})
	require.Error(t, err)
}

func TestEvalBinaryDivisionByZero(t *testing.T) {
	_, err := EvalBinary(ast.OpDiv, types.Int(1), types.Int(0), ast.Position{})
	require.Error(t, err)
}

func TestFloorDivNegative(t *testing.T) {
	assert.Equal(t, types.Int(-4), floorDiv(-7, 2))
	assert.Equal(t, types.Int(-4), floorDiv(7, -2))
	assert.Equal(t, types.Int(3), floorDiv(7, 2))
	assert.Equal(t, types.Int(3), floorDiv(-7, -2))
}

func TestEvalUnaryNeg(t *testing.T) {
	v, err := EvalUnary(ast.OpNeg, types.Int(5), ast.Position{})
	require.NoError(t, err)
	assert.Equal(t, types.Int(-5), v)
}

func TestEvalUnaryNotCoercesInt(t *testing.T) {
	v, err := EvalUnary(ast.OpNot, types.Int(0), ast.Position{})
	require.NoError(t, err)
	assert.Equal(t, types.Bool(true), v)
}

func TestValuesEqualHeterogeneous(t *testing.T) {
	assert.False(t, valuesEqual(types.Int(1), types.String("1")))
	assert.True(t, valuesEqual(types.Nil, types.Nil))
	assert.False(t, valuesEqual(types.Int(1), types.Bool(true)))
	assert.False(t, valuesEqual(types.Int(0), types.Bool(true)))
}
