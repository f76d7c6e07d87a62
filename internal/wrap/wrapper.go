package wrap

import (
	"fmt"
	"go/types"
	"strconv"

	"quote-generator/internal/analyze"
)

// Wrapper produces, for a field type and an expression reading the field,
// Go source of an expression of type quote.ToTokens.
type Wrapper interface {
	Wrap(t types.Type, access string) (string, error)
}

// UnsupportedTypeError reports a type that has no literal representation.
type UnsupportedTypeError struct {
	Path string     // Where the type was met, e.g. "rec.Map[value]"
	Type types.Type // The offending type
	Kind string     // What the type is, e.g. "channel"
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot tokenize %s of type %s: %s is not supported", e.Path, e.Type, e.Kind)
}

// Options configures a ShapeWrapper.
type Options struct {
	// Package is the package the generated code lives in.
	Package *types.Package
	// Imports collects the imports of the generated file.
	Imports *Imports
	// QuotePath is the import path of the quote runtime package.
	QuotePath string
	// Qualifier prefixes types of Package in emitted expressions; empty
	// leaves them unqualified.
	Qualifier string
	// Derived holds the types derived in the same run, in any package of
	// it. Their ToTokens methods do not exist yet but may be relied upon.
	Derived []*types.TypeName
}

// ShapeWrapper is the default Wrapper. It dispatches on the shape of the
// type only: types that tokenize themselves, quote.Option and quote.Result,
// basic types, pointers, slices, arrays, maps and sets.
type ShapeWrapper struct {
	self      *types.Package
	imports   *Imports
	quotePath string
	qualifier string
	derived   map[string]bool
}

var _ Wrapper = (*ShapeWrapper)(nil)

// NewShapeWrapper creates a ShapeWrapper.
func NewShapeWrapper(opts Options) *ShapeWrapper {
	w := &ShapeWrapper{
		self:      opts.Package,
		imports:   opts.Imports,
		quotePath: opts.QuotePath,
		qualifier: opts.Qualifier,
		derived:   make(map[string]bool, len(opts.Derived)),
	}

	for _, obj := range opts.Derived {
		w.derived[derivedKey(obj)] = true
	}

	return w
}

// derivedKey identifies a declaration by package path and name. A package
// imported by another one of the same load is type-checked from export data
// there, so the *types.TypeName seen through the import differs from the one
// the package was derived from.
func derivedKey(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}

// Wrap implements Wrapper.
func (w *ShapeWrapper) Wrap(t types.Type, access string) (string, error) {
	return w.wrap(t, access, analyze.NewTypePath(access))
}

func (w *ShapeWrapper) wrap(t types.Type, access string, path *analyze.TypePath) (string, error) {
	t = types.Unalias(t)

	if named, ok := t.(*types.Named); ok {
		return w.wrapNamed(named, access, path)
	}

	return w.wrapStructural(t, t, access, path)
}

func (w *ShapeWrapper) wrapNamed(named *types.Named, access string, path *analyze.TypePath) (string, error) {
	if w.derived[derivedKey(named.Obj())] && named.TypeArgs().Len() == 0 {
		return access, nil
	}

	if ptr, ok := w.tokenizesItself(named); ok {
		if ptr {
			return "&" + access, nil
		}

		return access, nil
	}

	if obj := named.Obj(); obj.Pkg() != nil && obj.Pkg().Path() == w.quotePath {
		switch obj.Name() {
		case "Option":
			return w.wrapOption(named, access, path)
		case "Result":
			return w.wrapResult(named, access, path)
		}
	}

	switch u := named.Underlying().(type) {
	case *types.Basic:
		helper, err := w.basic(u, named, path)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("quote.Conv(%s, %s(%s(%s)))", w.spell(named), helper, u.Name(), access), nil
	case *types.Array:
		return w.wrapStructural(u, named, access, path)
	case *types.Slice, *types.Map:
		converted := fmt.Sprintf("%s(%s)", w.code(u), access)
		return w.wrapStructural(u, named, converted, path)
	case *types.Pointer:
		converted := fmt.Sprintf("(%s)(%s)", w.code(u), access)
		return w.wrapStructural(u, named, converted, path)
	default:
		return "", &UnsupportedTypeError{Path: path.String(), Type: named, Kind: analyze.DescribeType(named)}
	}
}

// wrapStructural wraps an unnamed type t. spelled is the type whose name
// appears in emitted literals, either t itself or the named type defined
// on top of it.
func (w *ShapeWrapper) wrapStructural(t, spelled types.Type, access string, path *analyze.TypePath) (string, error) {
	switch tt := t.(type) {
	case *types.Basic:
		helper, err := w.basic(tt, tt, path)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s(%s)", helper, access), nil
	case *types.Pointer:
		elem, err := w.elemFunc(tt.Elem(), path.Pointer())
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("quote.Ptr(%s, %s, %s)", w.spell(tt.Elem()), access, elem), nil
	case *types.Slice:
		elem, err := w.elemFunc(tt.Elem(), path.Elem())
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("quote.Slice(%s, %s, %s)", w.spell(spelled), access, elem), nil
	case *types.Array:
		elem, err := w.elemFunc(tt.Elem(), path.Elem())
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("quote.Array(%s, %s[:], %s)", w.spell(spelled), access, elem), nil
	case *types.Map:
		key, err := w.elemFunc(tt.Key(), path.Key())
		if err != nil {
			return "", err
		}

		if isEmptyStruct(tt.Elem()) {
			return fmt.Sprintf("quote.Set(%s, %s, %s)", w.spell(spelled), access, key), nil
		}

		val, err := w.elemFunc(tt.Elem(), path.Value())
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("quote.Map(%s, %s, %s, %s)", w.spell(spelled), access, key, val), nil
	default:
		return "", &UnsupportedTypeError{Path: path.String(), Type: t, Kind: analyze.DescribeType(t)}
	}
}

func (w *ShapeWrapper) wrapOption(named *types.Named, access string, path *analyze.TypePath) (string, error) {
	args := named.TypeArgs()
	if args.Len() != 1 {
		return "", &UnsupportedTypeError{Path: path.String(), Type: named, Kind: "uninstantiated option"}
	}

	elem, err := w.elemFunc(args.At(0), path.Value())
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("quote.OptionOf(%s, %s, %s)", w.spell(args.At(0)), access, elem), nil
}

func (w *ShapeWrapper) wrapResult(named *types.Named, access string, path *analyze.TypePath) (string, error) {
	args := named.TypeArgs()
	if args.Len() != 2 {
		return "", &UnsupportedTypeError{Path: path.String(), Type: named, Kind: "uninstantiated result"}
	}

	ok, err := w.elemFunc(args.At(0), path.Value())
	if err != nil {
		return "", err
	}

	failed, err := w.elemFunc(args.At(1), path.Field("err"))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("quote.ResultOf(%s, %s, %s, %s, %s)",
		w.spell(args.At(0)), w.spell(args.At(1)), access, ok, failed), nil
}

// elemFunc returns an expression of type func(T) quote.ToTokens.
func (w *ShapeWrapper) elemFunc(t types.Type, path *analyze.TypePath) (string, error) {
	if b, ok := types.Unalias(t).(*types.Basic); ok {
		return w.basic(b, b, path)
	}

	body, err := w.wrap(t, "v", path)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("func(v %s) quote.ToTokens { return %s }", w.code(t), body), nil
}

// basic returns the name of the quote helper for b.
func (w *ShapeWrapper) basic(b *types.Basic, declared types.Type, path *analyze.TypePath) (string, error) {
	name, ok := basicHelpers[b.Kind()]
	if !ok {
		return "", &UnsupportedTypeError{Path: path.String(), Type: declared, Kind: analyze.DescribeType(b)}
	}

	return "quote." + name, nil
}

var basicHelpers = map[types.BasicKind]string{
	types.Bool:       "Bool",
	types.String:     "String",
	types.Int:        "Int",
	types.Int8:       "Int8",
	types.Int16:      "Int16",
	types.Int32:      "Int32",
	types.Int64:      "Int64",
	types.Uint:       "Uint",
	types.Uint8:      "Uint8",
	types.Uint16:     "Uint16",
	types.Uint32:     "Uint32",
	types.Uint64:     "Uint64",
	types.Uintptr:    "Uintptr",
	types.Float32:    "Float32",
	types.Float64:    "Float64",
	types.Complex64:  "Complex64",
	types.Complex128: "Complex128",
}

// tokenizesItself reports whether named declares a ToTokens(*quote.Stream)
// method, and whether it has a pointer receiver. Promoted methods do not
// count: they would rebuild the embedded value only.
func (w *ShapeWrapper) tokenizesItself(named *types.Named) (ptr, ok bool) {
	obj, index, _ := types.LookupFieldOrMethod(named, true, named.Obj().Pkg(), "ToTokens")
	fn, isFunc := obj.(*types.Func)
	if !isFunc || len(index) != 1 {
		return false, false
	}

	sig, _ := fn.Type().(*types.Signature)
	if sig == nil || sig.Params().Len() != 1 || sig.Results().Len() != 0 {
		return false, false
	}

	param, isPtr := sig.Params().At(0).Type().(*types.Pointer)
	if !isPtr {
		return false, false
	}

	stream, isNamed := types.Unalias(param.Elem()).(*types.Named)
	if !isNamed || stream.Obj().Name() != "Stream" || stream.Obj().Pkg() == nil ||
		stream.Obj().Pkg().Path() != w.quotePath {
		return false, false
	}

	_, ptr = sig.Recv().Type().(*types.Pointer)

	return ptr, true
}

// code spells t for Go code in the generated file.
func (w *ShapeWrapper) code(t types.Type) string {
	return types.TypeString(t, w.imports.Qualifier)
}

// spell returns a quoted spelling of t for emitted expressions.
func (w *ShapeWrapper) spell(t types.Type) string {
	return strconv.Quote(types.TypeString(t, w.outputQualifier))
}

func (w *ShapeWrapper) outputQualifier(pkg *types.Package) string {
	switch {
	case pkg == nil:
		return ""
	case w.self != nil && pkg.Path() == w.self.Path():
		return w.qualifier
	case pkg.Path() == w.quotePath:
		return "quote"
	default:
		return pkg.Name()
	}
}

func isEmptyStruct(t types.Type) bool {
	st, ok := types.Unalias(t).(*types.Struct)
	return ok && st.NumFields() == 0
}
