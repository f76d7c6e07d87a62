package main

import (
	"context"
	"errors"
	"fmt"
	"go/types"
	"os"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"quote-generator/internal/analyze"
	"quote-generator/internal/config"
	"quote-generator/internal/diagnostic"
	"quote-generator/internal/directive"
	"quote-generator/internal/gen"
	"quote-generator/internal/logging"
	"quote-generator/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "cli")

// selectParams are the flags that choose what gets derived.
type selectParams struct {
	types   []string
	modPath string
	output  string
}

// derived is the outcome for one package.
type derived struct {
	pkg    *analyze.Package
	shapes []*analyze.RecordShape
	file   *gen.GeneratedFile
}

// selector chooses the records of every package of a run.
type selector struct {
	cfg *config.Config
	// explicit holds the --type names; nil when none were given.
	explicit map[string]string
}

// newSelector builds the record selection. Naming types on the command line
// restricts derivation to them, in every loaded package; otherwise
// directives and the config entries of each package both select.
func (p *selectParams) newSelector(cfg *config.Config) (*selector, error) {
	if len(p.types) == 0 {
		if p.modPath != "" {
			return nil, errors.New("--mod-path requires --type")
		}

		return &selector{cfg: cfg}, nil
	}

	if p.modPath != "" {
		if err := directive.ValidateModPath(p.modPath); err != nil {
			return nil, err
		}
	}

	s := &selector{cfg: cfg, explicit: make(map[string]string, len(p.types))}
	for _, name := range p.types {
		s.explicit[name] = p.modPath
	}

	return s, nil
}

func (s *selector) selection(pkgPath string) analyze.Selection {
	if s.explicit != nil {
		return analyze.Selection{Types: s.explicit}
	}

	return analyze.Selection{Directives: true, Types: s.cfg.ModPathsFor(pkgPath)}
}

// verify reports requested records that the run did not find. A --type name
// must be declared by some loaded package. A config entry must be declared by
// its package when that package is loaded; entries of other packages only
// warn.
func (s *selector) verify(results []derived, diags *diagnostic.Diagnostics) error {
	found := make(map[string]bool)
	loaded := make(map[string]bool, len(results))
	for _, r := range results {
		loaded[r.pkg.Path] = true
		for _, shape := range r.shapes {
			found[shape.Name] = true
			found[shape.String()] = true
		}
	}

	var errs []error

	if s.explicit != nil {
		missing := make([]string, 0, len(s.explicit))
		for name := range s.explicit {
			if !found[name] {
				missing = append(missing, name)
			}
		}
		slices.Sort(missing)

		for _, name := range missing {
			errs = append(errs, fmt.Errorf("%w: %s", analyze.ErrTypeNotFound, name))
		}

		return errors.Join(errs...)
	}

	for _, entry := range s.cfg.Types {
		switch {
		case !loaded[entry.Package]:
			diags.AddWarning(diagnostic.CodePackageNotLoaded,
				fmt.Sprintf("config selects %s, but package %s is not part of this run", entry.Name, entry.Package),
				"", entry.Name)
		case !found[entry.String()]:
			errs = append(errs, fmt.Errorf("%w: %s in package %s", analyze.ErrTypeNotFound, entry.Name, entry.Package))
		}
	}

	return errors.Join(errs...)
}

func (p *selectParams) generatorConfig(cfg *config.Config) gen.GeneratorConfig {
	gc := gen.GeneratorConfig{
		QuoteImport: cfg.QuoteImport,
		Filename:    cfg.Output,
	}
	if p.output != "" {
		gc.Filename = p.output
	}

	return gc
}

// deriveAll loads patterns and derives every selected record. It first
// extracts the shapes of all packages, so that a record may refer to one
// derived in another package of the run, and then generates every package.
// Packages are processed concurrently; all failures are reported together
// and nothing is returned for a run with errors.
func deriveAll(ctx context.Context, cfg *config.Config, params *selectParams, extract bool, patterns []string) ([]derived, *diagnostic.Diagnostics, error) {
	sel, err := params.newSelector(cfg)
	if err != nil {
		return nil, nil, err
	}

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pkgs, err := analyze.NewAnalyzer().LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, nil, err
	}

	var (
		results  = make([]derived, len(pkgs))
		pkgDiags = make([]diagnostic.Diagnostics, len(pkgs))
	)

	err = forEachPackage(ctx, len(pkgs), func(i int) error {
		var err error
		results[i], err = extractPackage(pkgs[i], sel.selection(pkgs[i].Path), &pkgDiags[i])

		return err
	})
	if err != nil {
		return nil, nil, err
	}

	diags := &diagnostic.Diagnostics{}
	for _, d := range pkgDiags {
		diags.Merge(d)
	}

	if err := sel.verify(results, diags); err != nil {
		return nil, nil, err
	}

	if extract {
		return results, diags, nil
	}

	var all []*types.TypeName
	for _, r := range results {
		for _, shape := range r.shapes {
			all = append(all, shape.Obj)
		}
	}

	generator := gen.NewGenerator(params.generatorConfig(cfg))

	err = forEachPackage(ctx, len(results), func(i int) error {
		r := &results[i]

		var err error
		r.file, err = generator.Generate(r.pkg, r.shapes, all...)
		if err != nil {
			return fmt.Errorf("package %s: %w", r.pkg.Path, err)
		}

		log.WithFields(logrus.Fields{
			logfields.Package: r.pkg.Path,
			logfields.Count:   len(r.shapes),
		}).Debug("Derived package")

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return results, diags, nil
}

// forEachPackage calls fn for 0..n-1 with at most GOMAXPROCS calls running.
// The errors of all calls are joined in index order.
func forEachPackage(ctx context.Context, n int, fn func(i int) error) error {
	errs := make([]error, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			errs[i] = fn(i)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return errors.Join(errs...)
}

// extractPackage selects the records of pkg and builds their shapes.
func extractPackage(pkg *analyze.Package, sel analyze.Selection, diags *diagnostic.Diagnostics) (derived, error) {
	out := derived{pkg: pkg}

	targets, err := analyze.Targets(pkg, sel)
	if err != nil {
		return out, err
	}

	out.shapes, err = analyze.Shapes(targets)
	if err != nil {
		return out, err
	}

	if len(out.shapes) == 0 {
		diags.AddInfo(diagnostic.CodeNoRecords, fmt.Sprintf("package %s selects no record", pkg.Path), "", "")
	}

	return out, nil
}

// printDiagnostics writes the warnings of a successful run, and its infos
// when debugging, to the error stream of cmd.
func printDiagnostics(cmd *cobra.Command, root *rootParams, diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	shown := diagnostic.Diagnostics{Warnings: diags.Warnings}
	if root.debug {
		shown.Infos = diags.Infos
	}

	colored := false
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		colored = isTerminal(f)
	}

	diagnostic.Fprint(cmd.ErrOrStderr(), &shown, colored)
}

func loadConfig(root *rootParams) (*config.Config, error) {
	cfg, err := config.Load(root.configPath)
	if err != nil {
		return nil, err
	}

	log.WithField(logfields.File, root.configPath).Debug("Loaded config")

	return cfg, nil
}
