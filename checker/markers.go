package checker

import (
	"go/ast"
	"go/token"
	"go/types"
)

// DefaultMarkerPath is the import path of the assertion vocabulary package.
const DefaultMarkerPath = "github.com/teranos/staticproof/assert"

// family groups markers by the obligation they generate.
type family int

const (
	familySizeTypes family = iota // SizeEq*: operands are the type arguments
	familySizePtr                 // SizeEqPtr*: operands are pointee types
	familySizeVal                 // SizeEqVal*: operands are value types
	familyImplies                 // Implies*: first implies each of the rest
	familyImpliedBy               // ImpliedBy*: first is implied by each of the rest
	familyImpliesAny              // ImpliesAny*: first implies at least one of the rest
)

// marker describes one name in the vocabulary.
type marker struct {
	family  family
	renamed string // non-empty: deprecated alias, value is the current name
}

// markers is the full assertion vocabulary, including deprecated aliases.
var markers = map[string]marker{
	"SizeEq":  {family: familySizeTypes},
	"SizeEq3": {family: familySizeTypes},
	"SizeEq4": {family: familySizeTypes},

	"SizeEqPtr":  {family: familySizePtr},
	"SizeEqPtr3": {family: familySizePtr},
	"SizeEqPtr4": {family: familySizePtr},

	"SizeEqVal":  {family: familySizeVal},
	"SizeEqVal3": {family: familySizeVal},
	"SizeEqVal4": {family: familySizeVal},

	"EqSize":  {family: familySizeTypes, renamed: "SizeEq"},
	"EqSize3": {family: familySizeTypes, renamed: "SizeEq3"},
	"EqSize4": {family: familySizeTypes, renamed: "SizeEq4"},

	"EqSizePtr":  {family: familySizePtr, renamed: "SizeEqPtr"},
	"EqSizePtr3": {family: familySizePtr, renamed: "SizeEqPtr3"},
	"EqSizePtr4": {family: familySizePtr, renamed: "SizeEqPtr4"},

	"EqSizeVal":  {family: familySizeVal, renamed: "SizeEqVal"},
	"EqSizeVal3": {family: familySizeVal, renamed: "SizeEqVal3"},
	"EqSizeVal4": {family: familySizeVal, renamed: "SizeEqVal4"},

	"Implies":  {family: familyImplies},
	"Implies3": {family: familyImplies},
	"Implies4": {family: familyImplies},

	"ImpliedBy":  {family: familyImpliedBy},
	"ImpliedBy3": {family: familyImpliedBy},
	"ImpliedBy4": {family: familyImpliedBy},

	"ImpliesAny":  {family: familyImpliesAny},
	"ImpliesAny3": {family: familyImpliesAny},
	"ImpliesAny4": {family: familyImpliesAny},
}

// assertion is one discovered marker instantiation: a proof obligation
// together with the source positions needed to attribute a refutation.
type assertion struct {
	name     string
	marker   marker
	pos      token.Pos    // position of the marker selector
	typeArgs []types.Type // resolved operand types, in declaration order
	argPos   []token.Pos  // per-operand position; token.NoPos when inferred
}

// collect walks a package's syntax and resolves every marker instantiation.
//
// Explicit instantiations (assert.SizeEq[A, B], with or without a trailing
// call) surface as IndexExpr/IndexListExpr nodes and carry per-operand
// positions. Inferred instantiations (assert.SizeEqVal(x, y)) surface as
// plain calls; their type arguments come from the type checker's instance
// record and operands are attributed to the call arguments.
func (c *Checker) collect(pkg *Package) []assertion {
	var found []assertion

	for _, file := range pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			switch node := n.(type) {
			case *ast.IndexExpr:
				if a, ok := c.resolveExplicit(pkg, node.X, []ast.Expr{node.Index}); ok {
					found = append(found, a)
				}
			case *ast.IndexListExpr:
				if a, ok := c.resolveExplicit(pkg, node.X, node.Indices); ok {
					found = append(found, a)
				}
			case *ast.CallExpr:
				// Only inferred instantiations: explicit ones are handled
				// through their index expression.
				if _, isIndex := node.Fun.(*ast.IndexExpr); isIndex {
					return true
				}
				if _, isIndexList := node.Fun.(*ast.IndexListExpr); isIndexList {
					return true
				}
				if a, ok := c.resolveInferred(pkg, node); ok {
					found = append(found, a)
				}
			}
			return true
		})
	}

	return found
}

// markerObject resolves an expression to a marker function, if it names one.
// A marker is normally written through a qualified selector; a dot import
// binds the name directly, so bare identifiers resolve too.
func (c *Checker) markerObject(pkg *Package, expr ast.Expr) (*types.Func, *ast.Ident, bool) {
	var ident *ast.Ident
	switch e := expr.(type) {
	case *ast.SelectorExpr:
		ident = e.Sel
	case *ast.Ident:
		ident = e
	default:
		return nil, nil, false
	}

	obj := pkg.TypesInfo.Uses[ident]
	fn, ok := obj.(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != c.markerPath {
		return nil, nil, false
	}
	if _, known := markers[fn.Name()]; !known {
		return nil, nil, false
	}

	return fn, ident, true
}

// resolveExplicit handles assert.Name[A, B, ...] with written type arguments.
func (c *Checker) resolveExplicit(pkg *Package, fun ast.Expr, indices []ast.Expr) (assertion, bool) {
	fn, ident, ok := c.markerObject(pkg, fun)
	if !ok {
		return assertion{}, false
	}

	inst, ok := pkg.TypesInfo.Instances[ident]
	if !ok || inst.TypeArgs == nil {
		return assertion{}, false
	}

	a := assertion{
		name:   fn.Name(),
		marker: markers[fn.Name()],
		pos:    ident.Pos(),
	}
	for i := 0; i < inst.TypeArgs.Len(); i++ {
		a.typeArgs = append(a.typeArgs, inst.TypeArgs.At(i))
		if i < len(indices) {
			a.argPos = append(a.argPos, indices[i].Pos())
		} else {
			a.argPos = append(a.argPos, token.NoPos)
		}
	}
	return a, true
}

// resolveInferred handles assert.Name(x, y) with inferred type arguments.
func (c *Checker) resolveInferred(pkg *Package, call *ast.CallExpr) (assertion, bool) {
	fn, ident, ok := c.markerObject(pkg, call.Fun)
	if !ok {
		return assertion{}, false
	}

	inst, ok := pkg.TypesInfo.Instances[ident]
	if !ok || inst.TypeArgs == nil {
		return assertion{}, false
	}

	a := assertion{
		name:   fn.Name(),
		marker: markers[fn.Name()],
		pos:    ident.Pos(),
	}
	for i := 0; i < inst.TypeArgs.Len(); i++ {
		a.typeArgs = append(a.typeArgs, inst.TypeArgs.At(i))
		if i < len(call.Args) {
			a.argPos = append(a.argPos, call.Args[i].Pos())
		} else {
			a.argPos = append(a.argPos, token.NoPos)
		}
	}
	return a, true
}

// operandPos returns the best position for operand i, falling back to the
// assertion itself.
func (a assertion) operandPos(i int) token.Pos {
	if i < len(a.argPos) && a.argPos[i].IsValid() {
		return a.argPos[i]
	}
	return a.pos
}
