package assert

// Renamed assertions. The old names remain valid indefinitely: the checker
// evaluates each exactly as its replacement, differing only in an
// informational rename notice.

// EqSize asserts that A and B occupy identical storage.
//
// Deprecated: Use SizeEq instead.
func EqSize[A, B any]() {}

// EqSize3 asserts that A, B, and C occupy identical storage.
//
// Deprecated: Use SizeEq3 instead.
func EqSize3[A, B, C any]() {}

// EqSize4 asserts that A, B, C, and D occupy identical storage.
//
// Deprecated: Use SizeEq4 instead.
func EqSize4[A, B, C, D any]() {}

// EqSizePtr asserts that the pointed-to types of a and b occupy identical
// storage.
//
// Deprecated: Use SizeEqPtr instead.
func EqSizePtr[A, B any](a *A, b *B) {}

// EqSizePtr3 is EqSizePtr over three operands.
//
// Deprecated: Use SizeEqPtr3 instead.
func EqSizePtr3[A, B, C any](a *A, b *B, c *C) {}

// EqSizePtr4 is EqSizePtr over four operands.
//
// Deprecated: Use SizeEqPtr4 instead.
func EqSizePtr4[A, B, C, D any](a *A, b *B, c *C, d *D) {}

// EqSizeVal asserts that the types of a and b occupy identical storage.
//
// Deprecated: Use SizeEqVal instead.
func EqSizeVal[A, B any](a A, b B) {}

// EqSizeVal3 is EqSizeVal over three operands.
//
// Deprecated: Use SizeEqVal3 instead.
func EqSizeVal3[A, B, C any](a A, b B, c C) {}

// EqSizeVal4 is EqSizeVal over four operands.
//
// Deprecated: Use SizeEqVal4 instead.
func EqSizeVal4[A, B, C, D any](a A, b B, c C, d D) {}
