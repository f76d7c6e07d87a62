package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const targetsSrc = `package shapes

//quote:derive
type B struct{ X int }

// A is documented.
//
//quote:derive mod_path="example.com/test"
type A struct{ Y string }

type C struct{}

type (
	//quote:derive
	D struct{}
	E struct{}
)
`

func targetNames(targets []Target) []string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.Obj.Name())
	}

	return names
}

func TestTargets_Directives(t *testing.T) {
	pkg := checkPackage(t, targetsSrc)

	targets, err := Targets(pkg, Selection{Directives: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D"}, targetNames(targets))
	assert.Equal(t, "", targets[0].ModPath)
	assert.Equal(t, "example.com/test", targets[1].ModPath)
	assert.Equal(t, 4, targets[0].Pos.Line)
}

func TestTargets_Names(t *testing.T) {
	pkg := checkPackage(t, targetsSrc)

	// Explicit names only
	targets, err := Targets(pkg, Selection{Types: map[string]string{"C": "", "E": "other"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "E"}, targetNames(targets))
	assert.Equal(t, "other", targets[1].ModPath)

	// Explicit mod_path overrides the directive
	targets, err = Targets(pkg, Selection{Directives: true, Types: map[string]string{"B": "override"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "D"}, targetNames(targets))
	assert.Equal(t, "override", targets[0].ModPath)

	// Names that are not declared are left to the caller
	targets, err = Targets(pkg, Selection{Types: map[string]string{"Missing": ""}})
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestTargets_BadDirective(t *testing.T) {
	pkg := checkPackage(t, `package shapes

//quote:derive crate="x"
type T struct{}
`)

	_, err := Targets(pkg, Selection{Directives: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown option "crate"`)
	assert.Contains(t, err.Error(), "shapes.go:4")
}

func TestShapes(t *testing.T) {
	pkg := checkPackage(t, targetsSrc)

	targets, err := Targets(pkg, Selection{Directives: true})
	require.NoError(t, err)

	shapes, err := Shapes(targets)
	require.NoError(t, err)
	require.Len(t, shapes, 3)
	assert.Equal(t, "A", shapes[1].Name)
	assert.Equal(t, []string{"example.com", "test"}, shapes[1].QualifyingPath)
	assert.Equal(t, LayoutNamed, shapes[1].Layout)
	assert.Equal(t, LayoutNoFields, shapes[2].Layout)
}

func TestPackage_Lookup(t *testing.T) {
	pkg := checkPackage(t, targetsSrc)

	_, err := pkg.Lookup("Nope")
	assert.ErrorIs(t, err, ErrTypeNotFound)
}
