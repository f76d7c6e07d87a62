package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "test", PkgAlias("test"))
	assert.Equal(t, "fixtures", PkgAlias("quote-generator/examples/fixtures"))
	assert.Equal(t, "geo", PkgAlias("example.com/geo/v2"))
	assert.Equal(t, "yaml", PkgAlias("gopkg.in/yaml.v3"))
	assert.Equal(t, "v1", PkgAlias("example.com/v1"))
}

func TestSplitPath(t *testing.T) {
	assert.Nil(t, SplitPath(""))
	assert.Equal(t, []string{"example.com", "geo", "v2"}, SplitPath("example.com/geo/v2"))
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, IsGenerated([]byte(GeneratedHeader+"\n\npackage p\n")))
	assert.False(t, IsGenerated([]byte("package p\n")))
}

func TestSet(t *testing.T) {
	set := Set([]string{"a", "b"}, []string{"b", "c"})
	assert.Len(t, set, 3)
	assert.Contains(t, set, "c")
}
