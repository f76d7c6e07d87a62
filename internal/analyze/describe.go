package analyze

import (
	"go/types"
	"strings"
)

// TypePath builds a readable path to a value nested inside a record.
// Examples:
//   - "TestStruct" for the record itself
//   - "TestStruct.Vec" for a field
//   - "TestStruct.Vec[]" for the elements of a slice or array field
//   - "TestStruct.Map[key]" and "TestStruct.Map[value]" for map entries
//   - "TestStruct.*Next" for the target of a pointer field
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Elem marks the elements of a slice or array.
func (p *TypePath) Elem() *TypePath {
	return p.suffix("[]")
}

// Key marks the keys of a map.
func (p *TypePath) Key() *TypePath {
	return p.suffix("[key]")
}

// Value marks the values of a map or the content of an optional value.
func (p *TypePath) Value() *TypePath {
	return p.suffix("[value]")
}

// Pointer marks the target of a pointer.
func (p *TypePath) Pointer() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"*"}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = "*" + newParts[len(newParts)-1]

	return &TypePath{parts: newParts}
}

func (p *TypePath) suffix(s string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{s}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s

	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// DescribeType names the kind of a type for error messages,
// e.g. "interface", "channel" or "basic type int32".
func DescribeType(t types.Type) string {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		return "basic type " + tt.Name()
	case *types.Pointer:
		return "pointer"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Map:
		return "map"
	case *types.Chan:
		return "channel"
	case *types.Signature:
		return "function"
	case *types.Interface:
		return "interface"
	case *types.Struct:
		return "struct"
	case *types.Named:
		return "named type " + tt.Obj().Name()
	case *types.TypeParam:
		return "type parameter " + tt.Obj().Name()
	default:
		return t.String()
	}
}
