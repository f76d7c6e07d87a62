package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "quote.yaml"

// Config is the root structure of a config file.
type Config struct {
	// Version is the config schema version.
	Version string `yaml:"version,omitempty"`

	// Output is the name of the file generated in every package.
	Output string `yaml:"output,omitempty"`

	// QuoteImport is the import path of the quote runtime package.
	QuoteImport string `yaml:"quote_import,omitempty"`

	// Types selects records in addition to those carrying a directive.
	Types []TypeEntry `yaml:"types,omitempty"`
}

// TypeEntry selects one record of one package.
type TypeEntry struct {
	Package string `yaml:"package"`
	Name    string `yaml:"name"`
	ModPath string `yaml:"mod_path,omitempty"`
}

// SplitTypeRef splits "import/path.Name" at the last dot of its last path
// element. A reference without a dot is returned as a bare name.
func SplitTypeRef(ref string) (pkgPath, name string) {
	slash := strings.LastIndex(ref, "/")

	dot := strings.LastIndex(ref[slash+1:], ".")
	if dot < 0 {
		return "", ref
	}
	dot += slash + 1

	return ref[:dot], ref[dot+1:]
}

// String returns the entry as "import/path.Name".
func (e TypeEntry) String() string {
	if e.Package == "" {
		return e.Name
	}

	return e.Package + "." + e.Name
}

// UnmarshalYAML accepts either an "import/path.Name" reference or a mapping.
func (e *TypeEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var ref string
		if err := node.Decode(&ref); err != nil {
			return err
		}
		e.Package, e.Name = SplitTypeRef(ref)

		return nil

	case yaml.MappingNode:
		type plain TypeEntry

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*e = TypeEntry(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected type name or mapping", node.Line)
	}
}

// MarshalYAML writes entries without a mod_path as a reference.
func (e TypeEntry) MarshalYAML() (any, error) {
	if e.ModPath == "" {
		return e.String(), nil
	}

	type plain TypeEntry

	return plain(e), nil
}

// ModPathsFor maps the names of the types selected in package pkgPath to
// their mod_path.
func (c *Config) ModPathsFor(pkgPath string) map[string]string {
	out := make(map[string]string)
	for _, t := range c.Types {
		if t.Package == pkgPath {
			out[t.Name] = t.ModPath
		}
	}

	return out
}
