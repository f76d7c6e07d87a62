package analyze

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"github.com/sirupsen/logrus"

	"quote-generator/internal/common"
	"quote-generator/internal/directive"
	"quote-generator/internal/logging/logfields"
)

// Selection chooses which declarations of a package are derived.
type Selection struct {
	// Types maps explicitly requested type names to their mod_path.
	// A non-empty mod_path here overrides the one given by a directive.
	Types map[string]string
	// Directives enables //quote:derive doc comments.
	Directives bool
}

// Target is a type declaration selected for derivation.
type Target struct {
	Obj     *types.TypeName
	Pos     token.Position
	ModPath string
}

// Targets returns the selected declarations of pkg ordered by source position.
// Requested names that pkg does not declare are not an error here; callers
// that load several packages report them once all packages were searched.
func Targets(pkg *Package, sel Selection) ([]Target, error) {
	var targets []Target

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				target, ok, err := selectSpec(pkg, ts, doc, sel)
				if err != nil {
					return nil, err
				}

				if ok {
					targets = append(targets, target)
				}
			}
		}
	}

	slices.SortFunc(targets, func(a, b Target) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Offset, b.Pos.Offset),
		)
	})

	return targets, nil
}

func selectSpec(pkg *Package, ts *ast.TypeSpec, doc *ast.CommentGroup, sel Selection) (Target, bool, error) {
	name := ts.Name.Name
	pos := pkg.Fset.Position(ts.Pos())

	var (
		selected bool
		modPath  string
	)

	if sel.Directives {
		d, err := directive.Find(doc)
		if err != nil {
			return Target{}, false, fmt.Errorf("%s: %s: %w", pos, name, err)
		}

		if d != nil {
			selected = true
			modPath = d.ModPath
		}
	}

	if requested, ok := sel.Types[name]; ok {
		selected = true
		if requested != "" {
			modPath = requested
		}
	}

	if !selected {
		return Target{}, false, nil
	}

	obj, err := pkg.Lookup(name)
	if err != nil {
		// Type declarations inside function bodies are not visited, so
		// this only happens for a broken package.
		return Target{}, false, fmt.Errorf("%s: %w", pos, err)
	}

	return Target{Obj: obj, Pos: pos, ModPath: modPath}, true, nil
}

// Shapes extracts the record shapes of targets, stopping at the first
// unsupported declaration.
func Shapes(targets []Target) ([]*RecordShape, error) {
	shapes := make([]*RecordShape, 0, len(targets))
	for _, t := range targets {
		shape, err := FromDeclaration(t.Obj, t.Pos, common.SplitPath(t.ModPath))
		if err != nil {
			return nil, err
		}

		log.WithFields(logrus.Fields{
			logfields.Type:    shape.Name,
			logfields.Layout:  shape.Layout,
			logfields.Fields:  len(shape.Fields),
			logfields.ModPath: t.ModPath,
		}).Debug("Extracted record shape")

		shapes = append(shapes, shape)
	}

	return shapes, nil
}
