package analyze

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/go/packages"

	"quote-generator/internal/common"
	"quote-generator/internal/logging"
	"quote-generator/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "analyze")

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Package is a loaded, type-checked package.
type Package struct {
	Path   string // Import path
	Name   string // Package name
	Dir    string // Directory holding the package sources
	Fset   *token.FileSet
	Types  *types.Package
	Syntax []*ast.File

	// Generated lists the files that were skipped because they were
	// written by a previous run.
	Generated []string
}

// Analyzer loads Go packages.
type Analyzer struct {
	// Dir is the working directory for pattern resolution; empty means the
	// current directory.
	Dir string
	// BuildFlags are passed to the underlying build system.
	BuildFlags []string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./...", "quote-generator/examples/fixtures").
//
// Files starting with the generated-code header are reduced to their package
// clause before type checking, so that stale generated code never prevents
// regeneration.
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) ([]*Package, error) {
	var (
		mu        sync.Mutex
		generated = make(map[string]bool)
	)

	cfg := &packages.Config{
		Context:    ctx,
		Mode:       LoadMode,
		Dir:        a.Dir,
		BuildFlags: a.BuildFlags,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			mode := parser.AllErrors | parser.ParseComments
			if common.IsGenerated(src) {
				mu.Lock()
				generated[filename] = true
				mu.Unlock()

				mode = parser.PackageClauseOnly | parser.ParseComments
			}

			return parser.ParseFile(fset, filename, src, mode)
		},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	result := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		p := &Package{
			Path:   pkg.PkgPath,
			Name:   pkg.Name,
			Fset:   pkg.Fset,
			Types:  pkg.Types,
			Syntax: pkg.Syntax,
		}

		if first, ok := firstFile(pkg); ok {
			p.Dir = filepath.Dir(first)
		}

		for _, f := range pkg.GoFiles {
			if generated[f] {
				p.Generated = append(p.Generated, f)
			}
		}

		log.WithFields(logrus.Fields{
			logfields.Package: p.Path,
			logfields.Count:   len(p.Syntax),
		}).Debug("Loaded package")

		result = append(result, p)
	}

	return result, nil
}

func firstFile(pkg *packages.Package) (string, bool) {
	if len(pkg.GoFiles) > 0 {
		return pkg.GoFiles[0], true
	}

	if len(pkg.CompiledGoFiles) > 0 {
		return pkg.CompiledGoFiles[0], true
	}

	return "", false
}

// Lookup returns the type declared as name at package scope.
func (p *Package) Lookup(name string) (*types.TypeName, error) {
	obj, ok := p.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s in package %s", ErrTypeNotFound, name, p.Path)
	}

	return obj, nil
}
