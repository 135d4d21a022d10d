package checker

import (
	"fmt"
	"go/types"
)

// checkSize proves a size-equivalence obligation: every operand type must
// occupy exactly the storage of the first. Each subsequent operand is an
// independent obligation against the first, so a mismatch names the operand
// at fault.
//
// The comparison is purely type-level. No value is constructed, aliased, or
// reinterpreted; the size model answers directly for the target platform.
func (c *Checker) checkSize(pkg *Package, a assertion) []Violation {
	sizes := c.sizesFor(pkg)

	first, ok := sizeOf(sizes, a.typeArgs[0])
	if !ok {
		return []Violation{c.unsizedOperand(pkg, a, 0)}
	}

	var violations []Violation
	for i := 1; i < len(a.typeArgs); i++ {
		t := a.typeArgs[i]

		s, ok := sizeOf(sizes, t)
		if !ok {
			violations = append(violations, c.unsizedOperand(pkg, a, i))
			continue
		}

		if s != first {
			violations = append(violations, Violation{
				Pos:       pkg.Fset.Position(a.operandPos(i)),
				Assertion: a.name,
				Kind:      KindSizeMismatch,
				Severity:  SeverityError,
				Operand:   typeString(pkg, t),
				Message: fmt.Sprintf("%s: %s is %d bytes, want %d (size of %s)",
					a.name, typeString(pkg, t), s, first, typeString(pkg, a.typeArgs[0])),
			})
		}
	}

	return violations
}

// sizeOf returns the storage size of t, or false when t has no
// compile-time size (a type parameter, or anything containing one).
func sizeOf(sizes types.Sizes, t types.Type) (int64, bool) {
	if containsTypeParam(t) {
		return 0, false
	}
	return sizes.Sizeof(t), true
}

// unsizedOperand reports a size assertion over an operand whose storage
// size is not a compile-time constant.
func (c *Checker) unsizedOperand(pkg *Package, a assertion, i int) Violation {
	return Violation{
		Pos:       pkg.Fset.Position(a.operandPos(i)),
		Assertion: a.name,
		Kind:      KindMisuse,
		Severity:  SeverityError,
		Operand:   typeString(pkg, a.typeArgs[i]),
		Message: fmt.Sprintf("%s: size of %s is not a compile-time constant; instantiate the assertion with a concrete type",
			a.name, typeString(pkg, a.typeArgs[i])),
	}
}

// containsTypeParam reports whether t mentions an unresolved type parameter.
func containsTypeParam(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true
	case *types.Pointer:
		return containsTypeParam(t.Elem())
	case *types.Array:
		return containsTypeParam(t.Elem())
	case *types.Slice:
		return containsTypeParam(t.Elem())
	case *types.Chan:
		return containsTypeParam(t.Elem())
	case *types.Map:
		return containsTypeParam(t.Key()) || containsTypeParam(t.Elem())
	case *types.Struct:
		for i := 0; i < t.NumFields(); i++ {
			if containsTypeParam(t.Field(i).Type()) {
				return true
			}
		}
		return false
	case *types.Named:
		if args := t.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				if containsTypeParam(args.At(i)) {
					return true
				}
			}
		}
		return false
	default:
		return false
	}
}
