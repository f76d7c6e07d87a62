package directive

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	assert.True(t, Is("//quote:derive"))
	assert.True(t, Is(`//quote:derive mod_path="test"`))
	assert.True(t, Is(`//quote:derive(mod_path="test")`))
	assert.False(t, Is("//quote:derived"))
	assert.False(t, Is("// quote:derive"))
	assert.False(t, Is("//go:generate go tool quote-generator gen"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		modPath string
	}{
		{"bare", "//quote:derive", ""},
		{"trailing space", "//quote:derive  ", ""},
		{"option", `//quote:derive mod_path="test"`, "test"},
		{"spaced option", `//quote:derive mod_path = "example.com/geo"`, "example.com/geo"},
		{"parenthesized", `//quote:derive(mod_path = "test")`, "test"},
		{"trailing comma", `//quote:derive(mod_path="test",)`, "test"},
		{"raw string", "//quote:derive mod_path=`test`", "test"},
		{"empty parens", "//quote:derive()", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.comment)
			require.NoError(t, err)
			assert.Equal(t, tt.modPath, d.ModPath)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		msg     string
	}{
		{"unknown option", `//quote:derive crate="x"`, `unknown option "crate"`},
		{"missing value", `//quote:derive mod_path=`, "expected string value"},
		{"unquoted value", `//quote:derive mod_path=test`, "expected string value"},
		{"missing assign", `//quote:derive mod_path "test"`, "expected ="},
		{"duplicate", `//quote:derive mod_path="a" mod_path="b"`, "duplicate option"},
		{"unclosed paren", `//quote:derive(mod_path="a"`, "expected )"},
		{"garbage", `//quote:derive +`, "unexpected +"},
		{"bad path", `//quote:derive mod_path="/abs"`, "mod_path"},
		{"not an identifier", `//quote:derive mod_path="github.com/sergi/go-diff"`, "is not a valid identifier"},
		{"not a directive", "//quote:derived", "does not start with"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.comment)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateModPath(t *testing.T) {
	assert.NoError(t, ValidateModPath("test"))
	assert.NoError(t, ValidateModPath("example.com/geo/v2"))
	assert.Error(t, ValidateModPath(""))
	assert.Error(t, ValidateModPath("a//b"))
	assert.Error(t, ValidateModPath("example.com/1geo"))
	assert.Error(t, ValidateModPath("example.com/1geo/v3"))
}

const findSrc = `package p

// Point is documented.
//
//quote:derive mod_path="test"
type Point struct{ X int }

// Plain has no directive.
type Plain struct{}

//quote:derive
//quote:derive
type Twice struct{}
`

func TestFind(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", findSrc, parser.ParseComments)
	require.NoError(t, err)

	docs := make(map[string]*ast.CommentGroup)
	for _, decl := range file.Decls {
		gd := decl.(*ast.GenDecl)
		docs[gd.Specs[0].(*ast.TypeSpec).Name.Name] = gd.Doc
	}

	d, err := Find(docs["Point"])
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "test", d.ModPath)
	assert.Equal(t, 5, fset.Position(d.Pos).Line)

	d, err = Find(docs["Plain"])
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = Find(docs["Twice"])
	assert.ErrorIs(t, err, ErrInvalid)

	d, err = Find(nil)
	require.NoError(t, err)
	assert.Nil(t, d)
}
