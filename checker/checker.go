// Package checker is the staticproof verification engine.
//
// It discovers instantiations of the assert package's markers in
// type-checked source and evaluates each one as a proof obligation: storage
// sizes are compared through the type checker's size model, capability
// relationships through interface method-set containment. A refuted
// obligation becomes a Violation attributed to the asserting call site and
// the offending operand.
//
// The engine never executes checked code and holds no state between runs;
// each assertion is evaluated exactly once per run, independently of every
// other.
package checker

import (
	"go/ast"
	"go/token"
	"go/types"
	"runtime"
	"time"

	"github.com/teranos/staticproof/logger"
)

// Package is the unit of checking: one type-checked package.
type Package struct {
	Fset      *token.FileSet
	Syntax    []*ast.File
	Types     *types.Package
	TypesInfo *types.Info
	Sizes     types.Sizes
}

// Options configures a Checker.
type Options struct {
	// MarkerPath is the import path of the assertion vocabulary.
	// Defaults to DefaultMarkerPath.
	MarkerPath string

	// Sizes is the storage size model used when a Package carries none.
	// Defaults to the gc model for the host architecture.
	Sizes types.Sizes

	// DeprecationNotices controls whether renamed-assertion notices are
	// emitted. The underlying obligations are evaluated either way.
	DeprecationNotices bool
}

// Checker evaluates proof obligations.
type Checker struct {
	markerPath string
	sizes      types.Sizes
	notices    bool
}

// New creates a Checker.
func New(opts Options) *Checker {
	markerPath := opts.MarkerPath
	if markerPath == "" {
		markerPath = DefaultMarkerPath
	}
	sizes := opts.Sizes
	if sizes == nil {
		sizes = types.SizesFor("gc", runtime.GOARCH)
	}
	return &Checker{
		markerPath: markerPath,
		sizes:      sizes,
		notices:    opts.DeprecationNotices,
	}
}

// Check evaluates every assertion in one package.
func (c *Checker) Check(pkg *Package) []Violation {
	violations, _ := c.checkPackage(pkg)
	return violations
}

// CheckAll evaluates every assertion in every package and aggregates the
// findings in deterministic order.
func (c *Checker) CheckAll(pkgs []*Package) Result {
	res := Result{Packages: len(pkgs)}

	for _, pkg := range pkgs {
		violations, asserts := c.checkPackage(pkg)
		res.Assertions += asserts
		res.Violations = append(res.Violations, violations...)
	}

	sortViolations(res.Violations)
	return res
}

func (c *Checker) checkPackage(pkg *Package) ([]Violation, int) {
	// The vocabulary package itself declares the markers; it asserts nothing.
	if pkg.Types != nil && pkg.Types.Path() == c.markerPath {
		return nil, 0
	}

	start := time.Now()
	asserts := c.collect(pkg)

	var violations []Violation
	for _, a := range asserts {
		violations = append(violations, c.evaluate(pkg, a)...)
	}

	pkgPath := "(unknown)"
	if pkg.Types != nil {
		pkgPath = pkg.Types.Path()
	}
	logger.Logger.Debugw("Checked package",
		logger.FieldPackage, pkgPath,
		logger.FieldCount, len(asserts),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return violations, len(asserts)
}

// evaluate turns one assertion into zero or more findings.
func (c *Checker) evaluate(pkg *Package, a assertion) []Violation {
	var violations []Violation

	if a.marker.renamed != "" && c.notices {
		violations = append(violations, Violation{
			Pos:       pkg.Fset.Position(a.pos),
			Assertion: a.name,
			Kind:      KindDeprecated,
			Severity:  SeverityNotice,
			Message:   a.name + " is deprecated; use " + a.marker.renamed + " instead",
		})
	}

	switch a.marker.family {
	case familySizeTypes, familySizePtr, familySizeVal:
		violations = append(violations, c.checkSize(pkg, a)...)
	case familyImplies, familyImpliedBy, familyImpliesAny:
		violations = append(violations, c.checkCapability(pkg, a)...)
	}

	return violations
}

// sizesFor returns the size model for a package, preferring the one the
// loader attached (it reflects the configured target platform).
func (c *Checker) sizesFor(pkg *Package) types.Sizes {
	if pkg.Sizes != nil {
		return pkg.Sizes
	}
	return c.sizes
}

// typeString renders a type relative to the package under check.
func typeString(pkg *Package, t types.Type) string {
	return types.TypeString(t, types.RelativeTo(pkg.Types))
}
