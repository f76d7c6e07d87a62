package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"path/filepath"
	"text/template"

	"github.com/sirupsen/logrus"

	"quote-generator/internal/analyze"
	"quote-generator/internal/common"
	"quote-generator/internal/derive"
	"quote-generator/internal/logging"
	"quote-generator/internal/logging/logfields"
	"quote-generator/internal/wrap"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "gen")

// DefaultQuoteImport is the import path of the runtime the generated code
// calls into.
const DefaultQuoteImport = "quote-generator/quote"

// DefaultFilename is the name of the file generated into every package.
const DefaultFilename = "quote_gen.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// QuoteImport is the import path of the quote runtime package.
	QuoteImport string
	// Filename is the name of the generated file in each package.
	Filename string
	// OutputDir overrides the directory files are written to. Empty writes
	// next to the package sources.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		QuoteImport: DefaultQuoteImport,
		Filename:    DefaultFilename,
	}
}

// Generator generates the constructor and ToTokens method of records.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
// Empty fields fall back to DefaultGeneratorConfig.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()
	if config.QuoteImport == "" {
		config.QuoteImport = def.QuoteImport
	}
	if config.Filename == "" {
		config.Filename = def.Filename
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g., "quote_gen.go").
	Filename string
	// Dir is the directory the file belongs in.
	Dir string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// ConflictKind classifies a ConflictError.
type ConflictKind int

const (
	// ConstructorConflict: the package already declares the constructor name.
	ConstructorConflict ConflictKind = iota
	// MethodConflict: the type already has a hand-written ToTokens method.
	MethodConflict
	// ImportConflict: the package declares the name quote.
	ImportConflict
)

// ConflictError reports generated code that would clash with declarations of
// the target package.
type ConflictError struct {
	Kind ConflictKind
	Name string // The clashing identifier
	Type string // The record being derived; empty for import conflicts
	Pos  string // Position of the existing declaration
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConstructorConflict:
		return fmt.Sprintf("%s: cannot generate %s for %s: name already declared", e.Pos, e.Name, e.Type)
	case MethodConflict:
		return fmt.Sprintf("%s: cannot generate %s.%s: method already declared", e.Pos, e.Type, e.Name)
	default:
		return fmt.Sprintf("%s: package declares %s, which generated code uses as import name", e.Pos, e.Name)
	}
}

// Generate produces the generated file of pkg for shapes, which must belong
// to pkg. It returns nil when shapes is empty.
//
// others lists records derived in other packages of the same run, and may
// repeat those of shapes. Fields of those types rely on the ToTokens methods
// generated for them there.
func (g *Generator) Generate(pkg *analyze.Package, shapes []*analyze.RecordShape, others ...*types.TypeName) (*GeneratedFile, error) {
	if len(shapes) == 0 {
		return nil, nil
	}

	logger := log.WithFields(logrus.Fields{
		logfields.Package: pkg.Path,
		logfields.Count:   len(shapes),
	})
	logger.Debug("Generating package")

	imports := wrap.NewImports(pkg.Types, g.config.QuoteImport)
	if local, _ := imports.Local(g.config.QuoteImport); local != "quote" {
		return nil, &ConflictError{
			Kind: ImportConflict,
			Name: "quote",
			Pos:  declPos(pkg, pkg.Types.Scope().Lookup("quote")),
		}
	}

	if err := g.checkConflicts(pkg, shapes); err != nil {
		return nil, err
	}

	derived := make([]*types.TypeName, 0, len(others)+len(shapes))
	derived = append(derived, others...)
	ctorNames := make([]string, 0, len(shapes))
	for _, shape := range shapes {
		derived = append(derived, shape.Obj)
		ctorNames = append(ctorNames, ConstructorName(shape.Name))
	}

	models := make([][]*derive.Field, 0, len(shapes))
	for _, shape := range shapes {
		w := wrap.NewShapeWrapper(wrap.Options{
			Package:   pkg.Types,
			Imports:   imports,
			QuotePath: g.config.QuoteImport,
			Qualifier: shape.Qualifier(),
			Derived:   derived,
		})

		fields, err := derive.NewFields(shape, w, imports.Qualifier)
		if err != nil {
			return nil, err
		}
		models = append(models, fields)
	}

	// Only now is the import set complete.
	reserved := common.Set(imports.Names(), pkg.Types.Scope().Names(), ctorNames)

	data := fileData{
		PackageName: pkg.Name,
		Imports:     imports.Specs(),
	}
	for i, shape := range shapes {
		derive.AssignBindings(models[i], reserved)

		code, err := Emit(shape, models[i])
		if err != nil {
			return nil, err
		}
		data.Records = append(data.Records, code)

		logger.WithFields(logrus.Fields{
			logfields.Type:   shape.Name,
			logfields.Layout: shape.Layout,
			logfields.Fields: len(shape.Fields),
		}).Debug("Derived record")
	}

	dir := pkg.Dir
	if g.config.OutputDir != "" {
		dir = g.config.OutputDir
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(dir, g.config.Filename, buf.Bytes())

		return &GeneratedFile{
			Filename: g.config.Filename,
			Dir:      dir,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Dir:      dir,
		Content:  formatted,
	}, nil
}

func (g *Generator) checkConflicts(pkg *analyze.Package, shapes []*analyze.RecordShape) error {
	var errs []error

	scope := pkg.Types.Scope()
	for _, shape := range shapes {
		ctor := ConstructorName(shape.Name)
		if obj := scope.Lookup(ctor); obj != nil {
			errs = append(errs, &ConflictError{
				Kind: ConstructorConflict,
				Name: ctor,
				Type: shape.Name,
				Pos:  declPos(pkg, obj),
			})
		}

		named, ok := shape.Obj.Type().(*types.Named)
		if !ok {
			continue
		}
		for i := range named.NumMethods() {
			if m := named.Method(i); m.Name() == "ToTokens" {
				errs = append(errs, &ConflictError{
					Kind: MethodConflict,
					Name: m.Name(),
					Type: shape.Name,
					Pos:  declPos(pkg, m),
				})
			}
		}
	}

	return errors.Join(errs...)
}

func declPos(pkg *analyze.Package, obj types.Object) string {
	if obj == nil || pkg.Fset == nil || !obj.Pos().IsValid() {
		return common.UnknownStr
	}

	return pkg.Fset.Position(obj.Pos()).String()
}

type fileData struct {
	PackageName string
	Imports     []wrap.ImportSpec
	Records     []*GeneratedCode
}

var fileTemplate = template.Must(template.New("file").Parse(common.GeneratedHeader + `

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Records}}
{{.Constructor}}

{{.Tokenizer}}
{{end}}`))
