package types

import "strconv"

// String is the type of a text string value. Brewin strings are immutable
// and not indexable or iterable; the only operations the language defines
// over them are concatenation and (in)equality.
type String string

var _ Value = String("")

func (s String) String() string { return string(s) }
func (s String) Type() string   { return "string" }
func (s String) Truth() Bool    { return len(s) > 0 }

// Quoted returns s formatted as a Go-style quoted string literal.
func (s String) Quoted() string { return strconv.Quote(string(s)) }
