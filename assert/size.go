package assert

// SizeEq asserts that A and B occupy identical storage on the target
// platform.
//
// Sizes matter when reinterpreting storage, packing wire frames, or pairing
// a handle type with its raw representation. These three types, despite
// being very different, all have the same size:
//
//	var _ = assert.SizeEq[[4]byte, struct{ Lo, Hi uint16 }]
//	var _ = assert.SizeEq3[[4]byte, struct{ Lo, Hi uint16 }, uint32]
//
// The checker refutes this one, because uint32 has four times the size of
// byte:
//
//	var _ = assert.SizeEq[uint32, byte]
//
// Neither type is required to satisfy any interface, and no value of either
// type is ever constructed.
func SizeEq[A, B any]() {}

// SizeEq3 asserts that A, B, and C all occupy identical storage.
// Each of B and C is compared against A; a mismatch is attributed to the
// specific operand at fault.
func SizeEq3[A, B, C any]() {}

// SizeEq4 asserts that A, B, C, and D all occupy identical storage.
func SizeEq4[A, B, C, D any]() {}

// SizeEqPtr asserts that the pointed-to types of a and b occupy identical
// storage.
//
// This form derives each operand's type from an expression already at hand,
// without evaluating, copying, or moving the pointed-to value:
//
//	func blit(dst *[4]uint16, src *[8]byte) {
//	    assert.SizeEqPtr(dst, src)
//	    // ...
//	}
//
// The body is empty; nothing is dereferenced at runtime.
func SizeEqPtr[A, B any](a *A, b *B) {}

// SizeEqPtr3 is SizeEqPtr over three operands.
func SizeEqPtr3[A, B, C any](a *A, b *B, c *C) {}

// SizeEqPtr4 is SizeEqPtr over four operands.
func SizeEqPtr4[A, B, C, D any](a *A, b *B, c *C, d *D) {}

// SizeEqVal asserts that the types of a and b occupy identical storage.
//
// The obligation is on the static types only, so this works for values that
// must not be duplicated or disturbed; both operands remain fully usable
// afterwards:
//
//	x := uint8(10)
//	y := Byte{42}
//	assert.SizeEqVal(x, y)
//	use(x, y)
//
// Prefer SizeEqPtr when an operand is guarded by a lock or is otherwise
// expensive to name by value.
func SizeEqVal[A, B any](a A, b B) {}

// SizeEqVal3 is SizeEqVal over three operands.
func SizeEqVal3[A, B, C any](a A, b B, c C) {}

// SizeEqVal4 is SizeEqVal over four operands.
func SizeEqVal4[A, B, C, D any](a A, b B, c C, d D) {}
