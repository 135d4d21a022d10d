package assert

// Implies asserts that every implementer of interface I is also an
// implementer of interface J.
//
// The proof is universal: it holds at the interface level (I's method set
// contains J's), not merely for the implementations currently in scope, so
// it cannot rot as new implementers appear.
//
//	type Equatable interface{ Equal(Equatable) bool }
//	type Ordered interface {
//	    Equatable
//	    Less(Ordered) bool
//	}
//
//	var _ = assert.Implies[Ordered, Equatable]
//
// The checker refutes an assertion against a capability Ordered does not
// require:
//
//	var _ = assert.Implies[Ordered, Hashable]
//
// Both type arguments must be interface types.
func Implies[I, J any]() {}

// Implies3 asserts that every implementer of I implements both J and K.
// Each requirement is an independent obligation; a failure names the one
// not satisfied.
func Implies3[I, J, K any]() {}

// Implies4 asserts that every implementer of I implements J, K, and L.
func Implies4[I, J, K, L any]() {}

// ImpliedBy is the dual of Implies: it asserts that interface I requires
// interface J as a prerequisite, i.e. every implementer of I implements J.
//
// With the multi-operand forms, several capabilities can be pinned to a
// common prerequisite in one line:
//
//	var _ = assert.ImpliedBy3[Equatable, Ordered, Hashable]
//
// which holds iff Ordered requires Equatable and Hashable requires
// Equatable, each proved independently so a failure is attributed to the
// offending capability.
func ImpliedBy[J, I any]() {}

// ImpliedBy3 asserts that each of I1 and I2 requires J.
func ImpliedBy3[J, I1, I2 any]() {}

// ImpliedBy4 asserts that each of I1, I2, and I3 requires J.
func ImpliedBy4[J, I1, I2, I3 any]() {}

// ImpliesAny asserts that every implementer of I implements at least one of
// the listed alternatives. With a single alternative it is equivalent to
// Implies.
//
//	var _ = assert.ImpliesAny3[Collection, Indexed, Streamed]
//
// holds if Collection requires Indexed, or requires Streamed, or both; it
// is refuted only when an implementer of Collection could satisfy neither.
func ImpliesAny[I, J any]() {}

// ImpliesAny3 asserts that every implementer of I implements J or K.
func ImpliesAny3[I, J, K any]() {}

// ImpliesAny4 asserts that every implementer of I implements J, K, or L.
func ImpliesAny4[I, J, K, L any]() {}
