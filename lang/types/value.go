// Package types defines the runtime value model of the Brewin evaluator:
// the tagged union of Int, String, Bool, Nil and Function values described
// by the specification, plus the supporting Cell and OverloadSet types used
// to implement pass-by-reference parameters and arity-based overloading.
package types

// Value is the interface implemented by every runtime value the evaluator
// manipulates. Unlike mna-nenuphar's Value, Brewin's values are not
// freezable or iterable: the language has no mutable collections, so the
// interface only needs enough surface for printing, type reporting and the
// Int/Bool coercion rules used by operators and conditions.
type Value interface {
	// String returns the value's print representation (unquoted for String).
	String() string
	// Type returns a short name for the value's type, used in TYPE_ERROR
	// messages: "int", "string", "bool", "nil" or "function".
	Type() string
	// Truth reports the value's boolean coercion, used by if/while conditions
	// and by the logical operators. Only Bool and Int are truthy/falsy in a
	// well-typed program; other types panic-free but are never actually
	// invoked by the evaluator, which type-checks before calling Truth.
	Truth() Bool
}

// Kind distinguishes the concrete variants of Value without resorting to a
// type switch at every call site; operators.go compares and switches on it
// to pick the operation for a pair of operands.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindBool
	KindNil
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// KindOf returns v's Kind. It panics if v is nil or an unrecognized
// implementation; callers always have a concrete Value in hand by this
// point, since the evaluator never leaves an expression slot empty.
func KindOf(v Value) Kind {
	switch v.(type) {
	case Int:
		return KindInt
	case String:
		return KindString
	case Bool:
		return KindBool
	case NilValue:
		return KindNil
	case *Function:
		return KindFunction
	default:
		panic("types: unknown Value implementation")
	}
}
