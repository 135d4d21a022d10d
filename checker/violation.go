package checker

import (
	"fmt"
	"go/token"
	"sort"
)

// Severity of a reported finding. Property violations are always errors;
// rename notices are the only informational class.
type Severity string

const (
	SeverityError  Severity = "error"
	SeverityNotice Severity = "notice"
)

// Kind categorizes a finding for programmatic handling.
type Kind string

const (
	// KindSizeMismatch: two operands resolve to types of differing storage size
	KindSizeMismatch Kind = "size-mismatch"
	// KindMissingCapability: an implementer of a capability set is not
	// required to satisfy an asserted capability
	KindMissingCapability Kind = "missing-capability"
	// KindNoAlternative: none of a disjunctive set of capabilities is required
	KindNoAlternative Kind = "no-alternative"
	// KindMisuse: the assertion itself is malformed (non-interface capability
	// operand, type-parameter size operand)
	KindMisuse Kind = "misuse"
	// KindDeprecated: a renamed assertion was used under its old name
	KindDeprecated Kind = "deprecated"
)

// Violation is a refuted (or misused, or deprecated) assertion, attributed
// to its call site and the offending operand.
type Violation struct {
	Pos       token.Position `json:"pos"`
	Assertion string         `json:"assertion"`
	Kind      Kind           `json:"kind"`
	Severity  Severity       `json:"severity"`
	Operand   string         `json:"operand,omitempty"`
	Message   string         `json:"message"`
}

// String renders the violation in file:line:col form.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Pos, v.Severity, v.Message)
}

// Result aggregates the findings of a checker run.
type Result struct {
	Violations []Violation `json:"violations"`
	Packages   int         `json:"packages"`
	Assertions int         `json:"assertions"`
}

// Failed reports whether the run refuted any assertion. Notices alone never
// fail a run.
func (r Result) Failed() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the error-severity violations.
func (r Result) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			out = append(out, v)
		}
	}
	return out
}

// sortViolations orders findings by source position for deterministic output.
func sortViolations(vs []Violation) {
	sort.Slice(vs, func(i, j int) bool {
		a, b := vs[i].Pos, vs[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return vs[i].Message < vs[j].Message
	})
}
