package types

// Cell is a mutable box around a Value, shared between environment slots
// that alias the same variable. Assigning through a Cell is visible to
// every holder of the same Cell, which is what gives the spec's reference
// parameters ("refarg") their sharing semantics, and lets repeated calls of
// one closure see each other's assignments to its captured Cells.
// Ordinary by-value bindings and lambda captures get a fresh Cell of their
// own, so mutating one copy never affects another.
//
// Grounded on mna-nenuphar's lang/machine.cell, generalized away from its
// bytecode-specific freeze/index bookkeeping.
type Cell struct {
	v Value
}

// NewCell returns a Cell holding v.
func NewCell(v Value) *Cell { return &Cell{v: v} }

// Get returns the cell's current value.
func (c *Cell) Get() Value { return c.v }

// Set updates the cell's value.
func (c *Cell) Set(v Value) { c.v = v }
