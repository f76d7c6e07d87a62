package derive

import (
	"fmt"
	"go/types"

	"quote-generator/internal/analyze"
	"quote-generator/internal/wrap"
)

// Receiver is the receiver name of generated ToTokens methods.
const Receiver = "rec"

// StreamParam is the stream parameter name of generated ToTokens methods.
const StreamParam = "tokens"

// Parameter is a constructor parameter.
type Parameter struct {
	Name string
	Type string
}

// Field is everything the emitter needs to know about one field.
type Field struct {
	Descriptor analyze.FieldDescriptor
	// Type is the declared type spelled for the generated file.
	Type string
	// Wrapped is a quote.ToTokens expression reading the field.
	Wrapped string

	binding string
}

// NewFields builds the field models of shape in declaration order. Field
// types are spelled with qualifier and wrapped with w; bindings are left
// unassigned until AssignBindings.
func NewFields(shape *analyze.RecordShape, w wrap.Wrapper, qualifier types.Qualifier) ([]*Field, error) {
	fields := make([]*Field, 0, len(shape.Fields))
	for _, desc := range shape.Fields {
		f := &Field{
			Descriptor: desc,
			Type:       types.TypeString(desc.Type, qualifier),
		}

		wrapped, err := w.Wrap(desc.Type, f.AccessPath())
		if err != nil {
			path := analyze.NewTypePath(shape.Name).Field(f.Label())
			return nil, fmt.Errorf("%s: field %s: %w", shape.Pos, path, err)
		}

		f.Wrapped = wrapped
		fields = append(fields, f)
	}

	return fields, nil
}

// Label names the field in messages: its name, or its position for
// positional fields.
func (f *Field) Label() string {
	if f.Descriptor.IsPositional() {
		return fmt.Sprintf("%d", f.Descriptor.Position)
	}

	return f.Descriptor.Name
}

// AccessPath returns the expression reading the field from the receiver.
// Embedded fields are read through their implicit name.
func (f *Field) AccessPath() string {
	return Receiver + "." + f.Descriptor.Selector
}

// LocalBindingName returns the identifier naming the field's value in the
// generated code. It is empty before AssignBindings.
func (f *Field) LocalBindingName() string {
	return f.binding
}

// ConstructorParameter returns the constructor parameter for the field.
func (f *Field) ConstructorParameter() Parameter {
	return Parameter{Name: f.binding, Type: f.Type}
}

// WrappedValueBinding returns the statement that binds the tokenized value.
func (f *Field) WrappedValueBinding() string {
	return f.binding + " := " + f.Wrapped
}
