package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-generator/internal/analyze"
	"quote-generator/internal/config"
)

const fixtures = "quote-generator/examples/fixtures"

const (
	crossa = "quote-generator/internal/gen/testdata/crossa"
	crossb = "quote-generator/internal/gen/testdata/crossb"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out, _, err := runStderr(t, args...)

	return out, err
}

func runStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newCmdRoot()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, types ...config.TypeEntry) string {
	t.Helper()

	cfg := config.Default()
	cfg.Types = types

	path := filepath.Join(t.TempDir(), config.DefaultFile)
	require.NoError(t, config.WriteFile(cfg, path))

	return path
}

func TestGen_DryRun(t *testing.T) {
	out, err := run(t, "gen", "--dry-run", fixtures)
	require.NoError(t, err)

	assert.Contains(t, out, "quote_gen.go\n// Code generated by quote-generator. DO NOT EDIT.")
	assert.Contains(t, out, "func NewPair(field0 int32, field1 int64) Pair {")
	assert.Contains(t, out, `tokens.Append(quote.Call("test", "NewTestStruct"`)
}

func TestGen_TypeFlag(t *testing.T) {
	out, err := run(t, "gen", "--dry-run", "--type", "Pair", "--mod-path", "example.com/geo", fixtures)
	require.NoError(t, err)

	assert.Contains(t, out, `quote.Call("geo", "NewPair", field0, field1)`)
	assert.NotContains(t, out, "NewTestStruct")
}

func TestGen_UnknownType(t *testing.T) {
	_, err := run(t, "gen", "--dry-run", "--type", "Nope", fixtures)
	require.ErrorIs(t, err, analyze.ErrTypeNotFound)
	assert.Contains(t, err.Error(), "Nope")
}

func TestGen_AcrossPackages(t *testing.T) {
	out, err := run(t, "gen", "--dry-run", crossa, crossb)
	require.NoError(t, err)

	assert.Contains(t, out, "func NewInner(code string) Inner {")
	assert.Contains(t, out, "func NewOuter(in crossa.Inner, many []crossa.Inner) Outer {")
}

func TestGen_ConfigEntries(t *testing.T) {
	path := writeConfig(t,
		config.TypeEntry{Package: crossa, Name: "Plain"},
		config.TypeEntry{Package: fixtures, Name: "Missing"},
	)

	// The fixtures entry does not apply to a run over crossa.
	out, stderr, err := runStderr(t, "gen", "--dry-run", "--config", path, crossa)
	require.NoError(t, err)
	assert.Contains(t, out, "func NewPlain(n int) Plain {")
	assert.Contains(t, out, "func NewInner(code string) Inner {")
	assert.Contains(t, stderr, "warning: [package_not_loaded] config selects Missing, but package "+fixtures+" is not part of this run")

	_, err = run(t, "gen", "--dry-run", "--config", path, fixtures)
	require.ErrorIs(t, err, analyze.ErrTypeNotFound)
	assert.Contains(t, err.Error(), "Missing in package "+fixtures)
}

func TestGen_NoRecordsInfo(t *testing.T) {
	_, stderr, err := runStderr(t, "gen", "--dry-run", "quote-generator/quote")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "no_records")

	_, stderr, err = runStderr(t, "gen", "--dry-run", "--debug", "quote-generator/quote")
	require.NoError(t, err)
	assert.Contains(t, stderr, "info: [no_records] package quote-generator/quote selects no record")
}

func TestGen_ModPathNeedsType(t *testing.T) {
	_, err := run(t, "gen", "--dry-run", "--mod-path", "geo", fixtures)
	assert.EqualError(t, err, "--mod-path requires --type")
}

func TestShapes(t *testing.T) {
	out, err := run(t, "shapes", fixtures)
	require.NoError(t, err)

	assert.Contains(t, out, "name: TestStruct")
	assert.Contains(t, out, "mod_path: test")
	assert.Contains(t, out, "layout: Positional")
	assert.Contains(t, out, "quote.Result[string, Problem]")
}

func TestCheck_Missing(t *testing.T) {
	out, err := run(t, "check", "--output", "zz_missing_gen.go", fixtures)
	require.ErrorIs(t, err, errStale)
	assert.Contains(t, out, "zz_missing_gen.go: missing")
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFile)

	out, err := run(t, "init", "--file", path, "--type", fixtures+".Unit")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []config.TypeEntry{{Package: fixtures, Name: "Unit"}}, cfg.Types)

	_, err = run(t, "init", "--file", path, "--force", "--type", "Unit")
	assert.ErrorContains(t, err, "Unit has no package")

	_, err = run(t, "init", "--file", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", "--file", path, "--force")
	assert.NoError(t, err)
}

func TestSelector(t *testing.T) {
	cfg := config.Default()
	cfg.Types = []config.TypeEntry{{Package: "p", Name: "A", ModPath: "x"}}

	s, err := (&selectParams{}).newSelector(cfg)
	require.NoError(t, err)

	sel := s.selection("p")
	assert.True(t, sel.Directives)
	assert.Equal(t, map[string]string{"A": "x"}, sel.Types)
	assert.Empty(t, s.selection("q").Types)

	s, err = (&selectParams{types: []string{"B"}, modPath: "y"}).newSelector(cfg)
	require.NoError(t, err)

	sel = s.selection("q")
	assert.False(t, sel.Directives)
	assert.Equal(t, map[string]string{"B": "y"}, sel.Types)

	_, err = (&selectParams{types: []string{"B"}, modPath: "a b"}).newSelector(cfg)
	assert.Error(t, err)
}
