package types

import (
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

// OverloadSet groups the Function values declared under a single name,
// keyed by arity, implementing the spec's arity-based function overloading
// (§3, "two functions with the same name but a different number of
// parameters are different functions"). The swiss.Map gives O(1) expected
// lookup without pulling in a generic map[int]*Function sentinel-nil dance;
// grounded on the same dependency mna-nenuphar uses for its own maps
// (lang/machine/map.go), chosen here over the stdlib map to exercise it as
// SPEC_FULL.md's domain stack calls for.
type OverloadSet struct {
	byArity *swiss.Map[int, *Function]
}

// NewOverloadSet returns an empty OverloadSet.
func NewOverloadSet() *OverloadSet {
	return &OverloadSet{byArity: swiss.NewMap[int, *Function](4)}
}

// Put registers fn under its arity, overwriting any previous function of
// the same arity (redeclaration semantics are the caller's concern; the
// function table rejects duplicates before calling Put).
func (s *OverloadSet) Put(fn *Function) {
	s.byArity.Put(fn.Arity(), fn)
}

// Get returns the function declared with exactly arity parameters.
func (s *OverloadSet) Get(arity int) (*Function, bool) {
	return s.byArity.Get(arity)
}

// Len returns the number of distinct arities registered.
func (s *OverloadSet) Len() int { return s.byArity.Count() }

// Arities returns the set of registered arities in ascending order, for
// NAME_ERROR messages that want to report "no such overload" detail with a
// deterministic, reproducible ordering (swiss.Map's Iter order is not
// stable across runs).
func (s *OverloadSet) Arities() []int {
	arities := make([]int, 0, s.byArity.Count())
	s.byArity.Iter(func(arity int, _ *Function) bool {
		arities = append(arities, arity)
		return false
	})
	slices.Sort(arities)
	return arities
}
