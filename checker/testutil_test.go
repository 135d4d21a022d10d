package checker_test

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teranos/staticproof/checker"
)

// The harness type-checks fixture source in-process against the real assert
// package, so every test case is a faithful stand-in for a compiled user
// package: the positive cases are code the toolkit accepts, the negative
// cases are the compile-fail cases.

var (
	fixtureFset = token.NewFileSet()
	assertOnce  sync.Once
	assertPkg   *types.Package
	assertErr   error
)

// assertPackage parses and type-checks ../assert once per test binary.
func assertPackage(t *testing.T) *types.Package {
	t.Helper()

	assertOnce.Do(func() {
		entries, err := os.ReadDir(filepath.Join("..", "assert"))
		if err != nil {
			assertErr = err
			return
		}

		var files []*ast.File
		for _, entry := range entries {
			name := entry.Name()
			if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fixtureFset, filepath.Join("..", "assert", name), nil, parser.SkipObjectResolution)
			if err != nil {
				assertErr = err
				return
			}
			files = append(files, f)
		}

		conf := types.Config{Importer: importer.Default()}
		assertPkg, assertErr = conf.Check(checker.DefaultMarkerPath, fixtureFset, files, nil)
	})

	require.NoError(t, assertErr, "type-checking the assert package")
	return assertPkg
}

// fixtureImporter resolves the marker package from memory and everything
// else through the host toolchain.
type fixtureImporter struct {
	assert *types.Package
}

func (i fixtureImporter) Import(path string) (*types.Package, error) {
	if path == i.assert.Path() {
		return i.assert, nil
	}
	return importer.Default().Import(path)
}

// typecheck compiles one fixture file into a checker.Package. Fixture
// source fails the enclosing test if it does not compile, mirroring the
// host-compiler half of the toolkit's guarantees.
func typecheck(t *testing.T, src string) *checker.Package {
	t.Helper()

	f, err := parser.ParseFile(fixtureFset, t.Name()+"/fixture.go", src, parser.SkipObjectResolution)
	require.NoError(t, err, "parsing fixture")

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
		Instances:  make(map[*ast.Ident]types.Instance),
	}

	conf := types.Config{Importer: fixtureImporter{assert: assertPackage(t)}}
	pkg, err := conf.Check("example.com/fixture", fixtureFset, []*ast.File{f}, info)
	require.NoError(t, err, "type-checking fixture")

	return &checker.Package{
		Fset:      fixtureFset,
		Syntax:    []*ast.File{f},
		Types:     pkg,
		TypesInfo: info,
		// Sizes are pinned so expectations do not depend on the host
		Sizes: types.SizesFor("gc", "amd64"),
	}
}

// check runs the checker over one fixture with default options.
func check(t *testing.T, src string) checker.Result {
	t.Helper()
	return checkWith(t, src, checker.Options{DeprecationNotices: true})
}

func checkWith(t *testing.T, src string, opts checker.Options) checker.Result {
	t.Helper()
	c := checker.New(opts)
	return c.CheckAll([]*checker.Package{typecheck(t, src)})
}
