package gen

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"quote-generator/internal/analyze"
	"quote-generator/internal/derive"
)

// GeneratedCode is the source of the two declarations derived for a record.
type GeneratedCode struct {
	// Constructor declares the constructor taking one parameter per field.
	Constructor string
	// Tokenizer declares the ToTokens method.
	Tokenizer string
}

// ErrUnboundField is returned by Emit for fields without a local binding.
var ErrUnboundField = errors.New("field has no binding")

// ConstructorName returns the name of the constructor generated for a type:
// New<Type> for exported types and new<Type> for unexported ones.
func ConstructorName(typeName string) string {
	r, size := utf8.DecodeRuneInString(typeName)
	if unicode.IsUpper(r) {
		return "New" + typeName
	}

	return "new" + string(unicode.ToUpper(r)) + typeName[size:]
}

type recordData struct {
	Name        string
	Ctor        string
	Qualifier   string
	Layout      analyze.LayoutKind
	Params      []derive.Parameter
	Keys        []string
	Bindings    []string
	WrappedDecl []string
}

// Emit renders the constructor and ToTokens method of shape. fields must
// come from derive.NewFields for the same shape and carry bindings.
func Emit(shape *analyze.RecordShape, fields []*derive.Field) (*GeneratedCode, error) {
	if len(fields) != len(shape.Fields) {
		return nil, fmt.Errorf("%s: %d field models for %d fields", shape.Name, len(fields), len(shape.Fields))
	}

	data := recordData{
		Name:      shape.Name,
		Ctor:      ConstructorName(shape.Name),
		Qualifier: shape.Qualifier(),
		Layout:    shape.Layout,
	}

	for _, f := range fields {
		if f.LocalBindingName() == "" {
			return nil, fmt.Errorf("%s: field %s: %w", shape.Name, f.Label(), ErrUnboundField)
		}

		data.Params = append(data.Params, f.ConstructorParameter())
		data.Keys = append(data.Keys, f.Descriptor.Selector)
		data.Bindings = append(data.Bindings, f.LocalBindingName())
		data.WrappedDecl = append(data.WrappedDecl, f.WrappedValueBinding())
	}

	constructor, err := execute(constructorTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("%s: constructor: %w", shape.Name, err)
	}

	tokenizer, err := execute(tokenizerTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("%s: tokenizer: %w", shape.Name, err)
	}

	return &GeneratedCode{Constructor: constructor, Tokenizer: tokenizer}, nil
}

func execute(tmpl *template.Template, data recordData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

var funcs = template.FuncMap{
	"positional": func(l analyze.LayoutKind) bool { return l == analyze.LayoutPositional },
	"named":      func(l analyze.LayoutKind) bool { return l == analyze.LayoutNamed },
	"join":       strings.Join,
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
}

var constructorTemplate = template.Must(template.New("constructor").Funcs(funcs).Parse(`
// {{.Ctor}} returns a new {{.Name}}.
func {{.Ctor}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.Type}}{{end}}) {{.Name}} {
{{- if named .Layout}}
	return {{.Name}}{
{{- range $i, $k := .Keys}}
		{{$k}}: {{index $.Bindings $i}},
{{- end}}
	}
{{- else if positional .Layout}}
	return {{.Name}}{ {{- join .Bindings ", " -}} }
{{- else}}
	return {{.Name}}{}
{{- end}}
}
`))

var tokenizerTemplate = template.Must(template.New("tokenizer").Funcs(funcs).Parse(`
// ToTokens appends an expression that rebuilds rec by calling {{.Ctor}}.
func (rec {{.Name}}) ToTokens(tokens *quote.Stream) {
{{- range .WrappedDecl}}
	{{.}}
{{- end}}
{{- if .Bindings}}
{{end}}
	tokens.Append(quote.Call({{quote .Qualifier}}, {{quote .Ctor}}{{range .Bindings}}, {{.}}{{end}}))
}
`))
