package types

// NilValue is the type of the spec's nil literal. There is exactly one
// value of this type, Nil.
type NilValue struct{}

// Nil is the sole NilValue.
var Nil = NilValue{}

var _ Value = Nil

func (NilValue) String() string { return "nil" }
func (NilValue) Type() string   { return "nil" }

// Truth is never consulted by the evaluator (nil never appears in a
// condition or operand of a logical operator in a well-typed program), but
// is defined for interface completeness.
func (NilValue) Truth() Bool { return False }
