// Package analyze provides package loading and record shape extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to find the struct declarations selected for derivation and to describe
// their fields in declaration order.
//
// Key types:
//   - Package: a loaded, type-checked package
//   - Target: a declaration selected by directive or by name
//   - RecordShape: name, layout, qualifying path and fields of a struct
//   - FieldDescriptor: describes field name, position, type and embedding
package analyze
