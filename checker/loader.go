package checker

import (
	"fmt"
	"go/types"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/staticproof/config"
	"github.com/teranos/staticproof/errors"
	"github.com/teranos/staticproof/logger"
)

// loadMode requests everything the checker needs: syntax for marker
// discovery, full type information for instance resolution, and the size
// model of the build being loaded.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedTypesSizes

// LoadOptions control package loading.
type LoadOptions struct {
	// Dir is the directory to resolve patterns from; empty means the
	// working directory.
	Dir string

	// GOOS/GOARCH pin the platform the packages are loaded (and sized)
	// for. Empty values inherit the environment.
	GOOS   string
	GOARCH string

	// Compiler selects the size model, "gc" or "gccgo". The loader's own
	// sizes are always the gc model; any other compiler overrides them.
	Compiler string
}

// LoadOptionsFromConfig derives loader options from the check configuration.
func LoadOptionsFromConfig(cfg *config.CheckConfig) LoadOptions {
	return LoadOptions{
		GOOS:     cfg.GOOS,
		GOARCH:   cfg.GOARCH,
		Compiler: cfg.Compiler,
	}
}

// targetSizes returns an explicit size model when the configured compiler
// differs from the one go/packages sizes for.
func targetSizes(opts LoadOptions) types.Sizes {
	if opts.Compiler == "" || opts.Compiler == "gc" {
		return nil
	}
	arch := opts.GOARCH
	if arch == "" {
		arch = runtime.GOARCH
	}
	return types.SizesFor(opts.Compiler, arch)
}

// Load resolves the given patterns to fully type-checked packages ready for
// checking. A pattern that matches nothing, or a package that fails to
// type-check, is an error: an assertion cannot be proved in a package the
// compiler rejects.
func Load(patterns []string, opts LoadOptions) ([]*Package, error) {
	env := os.Environ()
	if opts.GOOS != "" {
		env = append(env, "GOOS="+opts.GOOS)
	}
	if opts.GOARCH != "" {
		env = append(env, "GOARCH="+opts.GOARCH)
	}

	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  opts.Dir,
		Env:  env,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrLoad, "%v", err)
	}
	if len(pkgs) == 0 {
		return nil, errors.Wrapf(errors.ErrNoPackages, "patterns %v", patterns)
	}

	sizes := targetSizes(opts)

	var loaded []*Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrLoad, "package %s: %s", pkg.PkgPath, loadErrorSummary(pkg)),
				"fix the compile errors before verifying assertions")
		}

		logger.Logger.Debugw("Loaded package",
			logger.FieldPackage, pkg.PkgPath,
			logger.FieldCount, len(pkg.Syntax))

		pkgSizes := pkg.TypesSizes
		if sizes != nil {
			pkgSizes = sizes
		}
		loaded = append(loaded, &Package{
			Fset:      pkg.Fset,
			Syntax:    pkg.Syntax,
			Types:     pkg.Types,
			TypesInfo: pkg.TypesInfo,
			Sizes:     pkgSizes,
		})
	}

	return loaded, nil
}

// SourceDirs returns the unique directories containing the packages' Go
// files, for watch mode.
func SourceDirs(pkgs []*Package) []string {
	seen := make(map[string]bool)
	var dirs []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			pos := pkg.Fset.Position(file.Pos())
			if pos.Filename == "" {
				continue
			}
			dir := filepath.Dir(pos.Filename)
			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
	}

	return dirs
}

// loadErrorSummary renders the first few load errors of a package.
func loadErrorSummary(pkg *packages.Package) string {
	const max = 3
	summary := ""
	for i, e := range pkg.Errors {
		if i == max {
			summary += fmt.Sprintf("; and %d more", len(pkg.Errors)-max)
			break
		}
		if i > 0 {
			summary += "; "
		}
		summary += e.Error()
	}
	return summary
}
