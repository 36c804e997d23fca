package eval

import (
	"github.com/mna/brewin/lang/ast"
	"github.com/mna/brewin/lang/types"
)

// arithmetic and logical are the operator sets that trigger the spec's
// implicit Int<->Bool coercion; comparisons (<, <=, >, >=) never coerce and
// are only defined over two Ints.
var arithmetic = map[ast.BinOp]bool{
	ast.OpAdd: true, ast.OpSub: true, ast.OpMul: true, ast.OpDiv: true,
}

var logical = map[ast.BinOp]bool{
	ast.OpAnd: true, ast.OpOr: true,
}

func isNumericKind(k types.Kind) bool { return k == types.KindInt || k == types.KindBool }

func asInt(v types.Value) types.Int {
	switch v := v.(type) {
	case types.Int:
		return v
	case types.Bool:
		return v.AsInt()
	default:
		panic("eval: asInt of non-numeric value")
	}
}

func asBool(v types.Value) types.Bool {
	switch v := v.(type) {
	case types.Bool:
		return v
	case types.Int:
		return v.Truth()
	default:
		panic("eval: asBool of non-numeric value")
	}
}

// EvalBinary applies op to l and r, applying the spec's Int/Bool coercion
// rules before dispatching to the per-type operation. Grounded on
// interpreterv3.py's __eval_op/__compatible_for_coersion/__setup_ops.
func EvalBinary(op ast.BinOp, l, r types.Value, at ast.Position) (types.Value, error) {
	switch {
	case op == ast.OpEq || op == ast.OpNeq:
		return evalEquality(op, l, r), nil
	case arithmetic[op]:
		return evalArithmetic(op, l, r, at)
	case logical[op]:
		return evalLogical(op, l, r, at)
	default:
		return evalComparison(op, l, r, at)
	}
}

func evalArithmetic(op ast.BinOp, l, r types.Value, at ast.Position) (types.Value, error) {
	lk, rk := types.KindOf(l), types.KindOf(r)
	if isNumericKind(lk) && isNumericKind(rk) {
		x, y := asInt(l), asInt(r)
		switch op {
		case ast.OpAdd:
			return x + y, nil
		case ast.OpSub:
			return x - y, nil
		case ast.OpMul:
			return x * y, nil
		case ast.OpDiv:
			if y == 0 {
				return nil, typeErrorf(at, "division by zero")
			}
			return floorDiv(x, y), nil
		}
	}
	if lk == types.KindString && rk == types.KindString && op == ast.OpAdd {
		return l.(types.String) + r.(types.String), nil
	}
	return nil, typeErrorf(at, "incompatible types %s and %s for operator %s", lk, rk, op)
}

// floorDiv implements the spec's floor (rounds toward negative infinity)
// integer division, matching Python's // operator that interpreterv3.py
// relies on, rather than Go's native truncating /.
func floorDiv(x, y types.Int) types.Int {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

func evalLogical(op ast.BinOp, l, r types.Value, at ast.Position) (types.Value, error) {
	lk, rk := types.KindOf(l), types.KindOf(r)
	if !isNumericKind(lk) || !isNumericKind(rk) {
		return nil, typeErrorf(at, "incompatible types %s and %s for operator %s", lk, rk, op)
	}
	x, y := asBool(l), asBool(r)
	if op == ast.OpAnd {
		return x && y, nil
	}
	return x || y, nil
}

func evalComparison(op ast.BinOp, l, r types.Value, at ast.Position) (types.Value, error) {
	lk, rk := types.KindOf(l), types.KindOf(r)
	if lk != types.KindInt || rk != types.KindInt {
		return nil, typeErrorf(at, "operator %s requires two ints, got %s and %s", op, lk, rk)
	}
	x, y := l.(types.Int), r.(types.Int)
	switch op {
	case ast.OpLt:
		return x < y, nil
	case ast.OpLe:
		return x <= y, nil
	case ast.OpGt:
		return x > y, nil
	default:
		return x >= y, nil
	}
}

// evalEquality implements the spec's rule that == and != are defined for
// any pair of operands, with no coercion: same-tag values compare
// structurally, and any pair of different tags (Int vs Bool included) is
// simply unequal. It never returns an error.
func evalEquality(op ast.BinOp, l, r types.Value) types.Value {
	eq := valuesEqual(l, r)
	if op == ast.OpEq {
		return types.Bool(eq)
	}
	return types.Bool(!eq)
}

func valuesEqual(l, r types.Value) bool {
	lk, rk := types.KindOf(l), types.KindOf(r)
	if lk != rk {
		return false
	}
	switch lk {
	case types.KindInt:
		return l.(types.Int) == r.(types.Int)
	case types.KindBool:
		return l.(types.Bool) == r.(types.Bool)
	case types.KindString:
		return l.(types.String) == r.(types.String)
	case types.KindNil:
		return true
	case types.KindFunction:
		return l.(*types.Function) == r.(*types.Function)
	default:
		return false
	}
}

// EvalUnary applies op to v, per interpreterv3.py's __eval_unary.
func EvalUnary(op ast.UnaryOp, v types.Value, at ast.Position) (types.Value, error) {
	switch op {
	case ast.OpNeg:
		if types.KindOf(v) != types.KindInt {
			return nil, typeErrorf(at, "operator neg requires an int, got %s", types.KindOf(v))
		}
		return -v.(types.Int), nil
	default: // ast.OpNot
		k := types.KindOf(v)
		if !isNumericKind(k) {
			return nil, typeErrorf(at, "operator ! requires a bool or int, got %s", k)
		}
		return !asBool(v), nil
	}
}
