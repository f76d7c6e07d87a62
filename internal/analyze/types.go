package analyze

import (
	"go/token"
	"go/types"
	"strings"

	"quote-generator/internal/common"
)

//go:generate go tool stringer -type=LayoutKind -linecomment -output=layoutkind_string.go

// LayoutKind classifies how a record declares its fields.
type LayoutKind int

const (
	LayoutNoFields   LayoutKind = iota // NoFields
	LayoutPositional                   // Positional
	LayoutNamed                        // Named
)

// FieldDescriptor describes one field of a record.
type FieldDescriptor struct {
	Name     string     // Field name; empty for positional fields
	Position int        // Zero-based declaration index
	Type     types.Type // Declared type
	Embedded bool       // Whether the field is embedded (anonymous)
	Selector string     // Name used to read the field (the type name for embedded fields)
}

// IsPositional reports whether the field has no explicit name.
func (f *FieldDescriptor) IsPositional() bool {
	return f.Name == ""
}

// RecordShape is the extracted description of a struct declaration that is
// ready for derivation.
type RecordShape struct {
	Name           string            // Declared type name
	PkgPath        string            // Import path of the declaring package
	PkgName        string            // Name of the declaring package
	Fields         []FieldDescriptor // In declaration order
	QualifyingPath []string          // Elements of mod_path; empty when unqualified
	Layout         LayoutKind
	Pos            token.Position

	// Obj is the type-checked declaration.
	Obj *types.TypeName
}

// Qualifier returns the identifier that prefixes emitted constructor calls,
// or the empty string when the record is unqualified.
func (r *RecordShape) Qualifier() string {
	return common.PkgAlias(r.ModPath())
}

// ModPath returns the qualifying path joined back into an import path.
func (r *RecordShape) ModPath() string {
	return strings.Join(r.QualifyingPath, "/")
}

// String returns the fully qualified type name.
func (r *RecordShape) String() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return r.PkgPath + "." + r.Name
}
