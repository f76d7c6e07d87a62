package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
version: "1"
output: zz_quote.go
types:
  - example.com/geo.Unit
  - package: example.com/geo
    name: TestStruct
    mod_path: test
  - gopkg.in/yaml.v3.Node
`))
	require.NoError(t, err)

	assert.Equal(t, "zz_quote.go", c.Output)
	assert.Equal(t, "quote-generator/quote", c.QuoteImport)
	assert.Equal(t, []TypeEntry{
		{Package: "example.com/geo", Name: "Unit"},
		{Package: "example.com/geo", Name: "TestStruct", ModPath: "test"},
		{Package: "gopkg.in/yaml.v3", Name: "Node"},
	}, c.Types)
	assert.Equal(t, map[string]string{"Unit": "", "TestStruct": "test"}, c.ModPathsFor("example.com/geo"))
	assert.Empty(t, c.ModPathsFor("example.com/other"))
}

func TestSplitTypeRef(t *testing.T) {
	tests := []struct {
		ref, pkg, name string
	}{
		{"example.com/geo.Unit", "example.com/geo", "Unit"},
		{"gopkg.in/yaml.v3.Node", "gopkg.in/yaml.v3", "Node"},
		{"fixtures.Unit", "fixtures", "Unit"},
		{"Unit", "", "Unit"},
	}

	for _, tt := range tests {
		pkg, name := SplitTypeRef(tt.ref)
		assert.Equal(t, tt.pkg, pkg, tt.ref)
		assert.Equal(t, tt.name, name, tt.ref)
	}
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		yaml    string
		message string
	}{
		"unknown key":      {"outptu: x.go\n", "field outptu not found"},
		"version":          {"version: \"2\"\n", `unsupported version "2"`},
		"output dir":       {"output: sub/x.go\n", "must be a non-test .go file name"},
		"output test":      {"output: x_test.go\n", "must be a non-test .go file name"},
		"type name":        {"types: [\"p.not-a-name\"]\n", `"not-a-name" is not a type name`},
		"no package":       {"types: [A]\n", "A has no package"},
		"package":          {"types: [\"a b/p.A\"]\n", "package: malformed import path"},
		"duplicate":        {"types: [p.A, p.A]\n", "duplicate type p.A"},
		"mod_path":         {"types:\n  - package: p\n    name: A\n    mod_path: \"a/1b\"\n", "is not a valid identifier"},
		"entry kind":       {"types:\n  - [A]\n", "expected type name or mapping"},
		"quote_import bad": {"quote_import: \"a b\"\n", "quote_import"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestValidate_Collects(t *testing.T) {
	c := Default()
	c.Version = "0"
	c.Types = []TypeEntry{{Package: "p", Name: "A"}, {Package: "p", Name: "A"}}

	err := Validate(c)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "unsupported version")
	assert.Contains(t, err.Error(), "duplicate type p.A")

	// The same name in two packages selects two records.
	c = Default()
	c.Types = []TypeEntry{{Package: "p", Name: "A"}, {Package: "q", Name: "A"}}
	assert.NoError(t, Validate(c))

	assert.ErrorIs(t, Validate(nil), ErrInvalid)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	c := Default()
	c.Types = []TypeEntry{
		{Package: "example.com/geo", Name: "Unit"},
		{Package: "example.com/geo", Name: "TestStruct", ModPath: "test"},
	}
	require.NoError(t, WriteFile(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- example.com/geo.Unit\n")
	assert.Contains(t, string(data), "mod_path: test")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoad_Missing(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	_, err = Load("nope.yaml")
	assert.Error(t, err)
}
