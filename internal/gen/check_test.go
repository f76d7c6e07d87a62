package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffText(t *testing.T) {
	lines := DiffText("a\nb\nc\n", "a\nB\nc\n")

	assert.Equal(t, []DiffLine{
		{Op: diffmatchpatch.DiffEqual, Text: "a"},
		{Op: diffmatchpatch.DiffDelete, Text: "b"},
		{Op: diffmatchpatch.DiffInsert, Text: "B"},
		{Op: diffmatchpatch.DiffEqual, Text: "c"},
	}, lines)
	assert.Equal(t, []DiffLine{{Op: diffmatchpatch.DiffEqual, Text: "same"}}, DiffText("same\n", "same\n"))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	file := &GeneratedFile{Filename: "quote_gen.go", Dir: dir, Content: []byte("package p\n\nvar x = 1\n")}

	st, err := Check(file)
	require.NoError(t, err)
	assert.True(t, st.Stale)
	assert.True(t, st.Missing)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "quote_gen.go"), file.Content, 0o644))

	st, err = Check(file)
	require.NoError(t, err)
	assert.False(t, st.Stale)
	assert.Empty(t, st.Lines)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "quote_gen.go"), []byte("package p\n\nvar x = 2\n"), 0o644))

	st, err = Check(file)
	require.NoError(t, err)
	assert.True(t, st.Stale)
	assert.False(t, st.Missing)
	assert.Contains(t, st.Lines, DiffLine{Op: diffmatchpatch.DiffInsert, Text: "var x = 1"})
	assert.Contains(t, st.Lines, DiffLine{Op: diffmatchpatch.DiffDelete, Text: "var x = 2"})
}
