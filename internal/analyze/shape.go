package analyze

import (
	"go/token"
	"go/types"
)

// FromDeclaration extracts the shape of a struct declaration.
//
// Fields keep their declaration order. A struct with no fields has layout
// NoFields, a struct whose fields are all embedded has layout Positional and
// anything else has layout Named. Aliases, non-struct types, generic structs
// and structs with blank fields yield an *UnsupportedDeclarationError.
func FromDeclaration(obj *types.TypeName, pos token.Position, qualifying []string) (*RecordShape, error) {
	unsupported := func(kind string) error {
		return &UnsupportedDeclarationError{Name: obj.Name(), Kind: kind, Pos: pos}
	}

	if obj.IsAlias() {
		return nil, unsupported("type alias")
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, unsupported(DescribeType(obj.Type()))
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, unsupported(DescribeType(named.Underlying()))
	}

	if named.TypeParams().Len() > 0 {
		return nil, unsupported("generic struct")
	}

	shape := &RecordShape{
		Name:           obj.Name(),
		QualifyingPath: qualifying,
		Pos:            pos,
		Obj:            obj,
	}

	if pkg := obj.Pkg(); pkg != nil {
		shape.PkgPath = pkg.Path()
		shape.PkgName = pkg.Name()
	}

	embedded := 0
	for i := range st.NumFields() {
		field := st.Field(i)
		if field.Name() == "_" {
			return nil, unsupported("struct with blank field")
		}

		if field.Embedded() {
			embedded++
		}

		shape.Fields = append(shape.Fields, FieldDescriptor{
			Name:     field.Name(),
			Position: i,
			Type:     field.Type(),
			Embedded: field.Embedded(),
			Selector: field.Name(),
		})
	}

	switch {
	case len(shape.Fields) == 0:
		shape.Layout = LayoutNoFields
	case embedded == len(shape.Fields):
		shape.Layout = LayoutPositional
		for i := range shape.Fields {
			shape.Fields[i].Name = ""
		}
	default:
		shape.Layout = LayoutNamed
	}

	return shape, nil
}
