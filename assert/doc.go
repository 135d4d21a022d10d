// Package assert provides the declarative assertion vocabulary verified by
// the staticproof checker.
//
// Every function in this package is an empty generic marker. Writing an
// instantiation of one is the assertion; the staticproof checker finds the
// instantiation in type-checked source and proves (or refutes) the stated
// property. The markers themselves compile to nothing and are never
// executed for effect.
//
// The canonical form is a package-level blank binding, which references the
// instantiated function without ever calling it:
//
//	var _ = assert.SizeEq[[4]byte, uint32]
//
//	var _ = assert.Implies[Ordered, Equatable]
//
// The pointer and value forms of the size family may also appear as
// ordinary statements inside functions:
//
//	func frame(x *[4]uint16, y *[8]byte) {
//	    assert.SizeEqPtr(x, y)
//	    // ...
//	}
//
// Either way the proof obligation is on the static types alone. Operands of
// the pointer and value forms are never evaluated for their value, copied,
// or consumed; a value remains fully usable after being named in an
// assertion.
//
// A false property is reported by the checker as a hard failure attributed
// to the assertion's call site and the offending operand. A true property
// produces no output and no runtime artifact.
package assert
