package gen

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-generator/internal/analyze"
	"quote-generator/internal/derive"
)

func TestConstructorName(t *testing.T) {
	tests := map[string]string{
		"Pair":   "NewPair",
		"span":   "newSpan",
		"URL":    "NewURL",
		"élan":   "newÉlan",
		"x":      "newX",
		"_under": "new_under",
	}

	for in, want := range tests {
		assert.Equal(t, want, ConstructorName(in), in)
	}
}

// literalWrapper wraps everything as W(access).
type literalWrapper struct{}

func (literalWrapper) Wrap(_ types.Type, access string) (string, error) {
	return "W(" + access + ")", nil
}

func shapeOf(name string, layout analyze.LayoutKind, fields ...analyze.FieldDescriptor) *analyze.RecordShape {
	return &analyze.RecordShape{Name: name, Layout: layout, Fields: fields}
}

func emit(t *testing.T, shape *analyze.RecordShape) *GeneratedCode {
	t.Helper()

	fields, err := derive.NewFields(shape, literalWrapper{}, nil)
	require.NoError(t, err)
	derive.AssignBindings(fields, nil)

	code, err := Emit(shape, fields)
	require.NoError(t, err)

	return code
}

func TestEmit_NoFields(t *testing.T) {
	code := emit(t, shapeOf("Unit", analyze.LayoutNoFields))

	assert.Equal(t, "// NewUnit returns a new Unit.\nfunc NewUnit() Unit {\n\treturn Unit{}\n}", code.Constructor)
	assert.Equal(t, "// ToTokens appends an expression that rebuilds rec by calling NewUnit.\n"+
		"func (rec Unit) ToTokens(tokens *quote.Stream) {\n"+
		"\ttokens.Append(quote.Call(\"\", \"NewUnit\"))\n}", code.Tokenizer)
}

func TestEmit_Positional(t *testing.T) {
	code := emit(t, shapeOf("Pair", analyze.LayoutPositional,
		analyze.FieldDescriptor{Position: 0, Type: types.Typ[types.Int32], Embedded: true, Selector: "int32"},
		analyze.FieldDescriptor{Position: 1, Type: types.Typ[types.Int64], Embedded: true, Selector: "int64"},
	))

	assert.Equal(t, "// NewPair returns a new Pair.\n"+
		"func NewPair(field0 int32, field1 int64) Pair {\n"+
		"\treturn Pair{field0, field1}\n}", code.Constructor)
	assert.Equal(t, "// ToTokens appends an expression that rebuilds rec by calling NewPair.\n"+
		"func (rec Pair) ToTokens(tokens *quote.Stream) {\n"+
		"\tfield0 := W(rec.int32)\n"+
		"\tfield1 := W(rec.int64)\n"+
		"\n"+
		"\ttokens.Append(quote.Call(\"\", \"NewPair\", field0, field1))\n}", code.Tokenizer)
}

func TestEmit_Named(t *testing.T) {
	shape := shapeOf("span", analyze.LayoutNamed,
		analyze.FieldDescriptor{Name: "Low", Position: 0, Type: types.Typ[types.Float64], Selector: "Low"},
		analyze.FieldDescriptor{Name: "Map", Position: 1, Type: types.Typ[types.String], Selector: "Map"},
	)
	shape.QualifyingPath = []string{"example.com", "geo"}

	code := emit(t, shape)

	assert.Equal(t, "// newSpan returns a new span.\n"+
		"func newSpan(low float64, map1 string) span {\n"+
		"\treturn span{\n"+
		"\t\tLow: low,\n"+
		"\t\tMap: map1,\n"+
		"\t}\n}", code.Constructor)
	assert.Contains(t, code.Tokenizer, "\tmap1 := W(rec.Map)\n")
	assert.Contains(t, code.Tokenizer, `tokens.Append(quote.Call("geo", "newSpan", low, map1))`)
}

func TestEmit_Unbound(t *testing.T) {
	shape := shapeOf("Pair", analyze.LayoutPositional,
		analyze.FieldDescriptor{Position: 0, Type: types.Typ[types.Int32], Embedded: true, Selector: "int32"},
	)

	fields, err := derive.NewFields(shape, literalWrapper{}, nil)
	require.NoError(t, err)

	_, err = Emit(shape, fields)
	assert.ErrorIs(t, err, ErrUnboundField)

	_, err = Emit(shape, nil)
	assert.Error(t, err)
}
