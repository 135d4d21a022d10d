package checker

import (
	"fmt"
	"go/types"
	"strings"
)

// checkCapability proves a capability relationship obligation.
//
// The quantification is universal: "every implementer of I implements J"
// holds exactly when I's method set contains J's, so it is decided once at
// the interface level rather than per implementer in scope. Go admits only
// method-set interfaces as type arguments, which makes method-set
// containment a complete decision procedure here.
func (c *Checker) checkCapability(pkg *Package, a assertion) []Violation {
	ifaces := make([]*types.Interface, len(a.typeArgs))
	for i, t := range a.typeArgs {
		iface, ok := types.Unalias(t).Underlying().(*types.Interface)
		if !ok {
			return []Violation{{
				Pos:       pkg.Fset.Position(a.operandPos(i)),
				Assertion: a.name,
				Kind:      KindMisuse,
				Severity:  SeverityError,
				Operand:   typeString(pkg, t),
				Message: fmt.Sprintf("%s: %s is not an interface type; capability assertions take interfaces only",
					a.name, typeString(pkg, t)),
			}}
		}
		ifaces[i] = iface
	}

	switch a.marker.family {
	case familyImplies:
		return c.checkImplies(pkg, a, ifaces)
	case familyImpliedBy:
		return c.checkImpliedBy(pkg, a, ifaces)
	default:
		return c.checkImpliesAny(pkg, a, ifaces)
	}
}

// checkImplies: every implementer of typeArgs[0] must implement each of the
// rest. One independent obligation per required capability.
func (c *Checker) checkImplies(pkg *Package, a assertion, ifaces []*types.Interface) []Violation {
	var violations []Violation

	for i := 1; i < len(a.typeArgs); i++ {
		if types.Implements(a.typeArgs[0], ifaces[i]) {
			continue
		}
		violations = append(violations, Violation{
			Pos:       pkg.Fset.Position(a.operandPos(i)),
			Assertion: a.name,
			Kind:      KindMissingCapability,
			Severity:  SeverityError,
			Operand:   typeString(pkg, a.typeArgs[i]),
			Message: fmt.Sprintf("%s: %s does not require %s%s",
				a.name, typeString(pkg, a.typeArgs[0]), typeString(pkg, a.typeArgs[i]),
				missingDetail(a.typeArgs[0], ifaces[i])),
		})
	}

	return violations
}

// checkImpliedBy is the dual: each of typeArgs[1:] must require typeArgs[0].
// Failures are attributed to the specific capability set at fault.
func (c *Checker) checkImpliedBy(pkg *Package, a assertion, ifaces []*types.Interface) []Violation {
	var violations []Violation

	for i := 1; i < len(a.typeArgs); i++ {
		if types.Implements(a.typeArgs[i], ifaces[0]) {
			continue
		}
		violations = append(violations, Violation{
			Pos:       pkg.Fset.Position(a.operandPos(i)),
			Assertion: a.name,
			Kind:      KindMissingCapability,
			Severity:  SeverityError,
			Operand:   typeString(pkg, a.typeArgs[i]),
			Message: fmt.Sprintf("%s: %s does not require %s%s",
				a.name, typeString(pkg, a.typeArgs[i]), typeString(pkg, a.typeArgs[0]),
				missingDetail(a.typeArgs[i], ifaces[0])),
		})
	}

	return violations
}

// checkImpliesAny: every implementer of typeArgs[0] must implement at least
// one of the alternatives. A single disjunctive obligation.
func (c *Checker) checkImpliesAny(pkg *Package, a assertion, ifaces []*types.Interface) []Violation {
	alternatives := make([]string, 0, len(a.typeArgs)-1)
	for i := 1; i < len(a.typeArgs); i++ {
		if types.Implements(a.typeArgs[0], ifaces[i]) {
			return nil
		}
		alternatives = append(alternatives, typeString(pkg, a.typeArgs[i]))
	}

	return []Violation{{
		Pos:       pkg.Fset.Position(a.pos),
		Assertion: a.name,
		Kind:      KindNoAlternative,
		Severity:  SeverityError,
		Operand:   typeString(pkg, a.typeArgs[0]),
		Message: fmt.Sprintf("%s: %s requires none of %s",
			a.name, typeString(pkg, a.typeArgs[0]), strings.Join(alternatives, ", ")),
	}}
}

// missingDetail names the first method that breaks an implication, when the
// type checker can attribute one.
func missingDetail(sub types.Type, super *types.Interface) string {
	method, wrongType := types.MissingMethod(sub, super, true)
	if method == nil {
		return ""
	}
	if wrongType {
		return fmt.Sprintf(" (method %s has the wrong signature)", method.Name())
	}
	return fmt.Sprintf(" (missing method %s)", method.Name())
}
