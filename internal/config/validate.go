package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/mod/module"

	"quote-generator/internal/directive"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Validate checks a config and reports every problem found.
func Validate(c *Config) error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalid)
	}

	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Version != "1" {
		add("unsupported version %q", c.Version)
	}

	if filepath.Base(c.Output) != c.Output || !strings.HasSuffix(c.Output, ".go") || strings.HasSuffix(c.Output, "_test.go") {
		add("output %q must be a non-test .go file name", c.Output)
	}

	if err := module.CheckImportPath(c.QuoteImport); err != nil {
		add("quote_import: %v", err)
	}

	seen := make(map[string]struct{}, len(c.Types))
	for i, t := range c.Types {
		if !token.IsIdentifier(t.Name) {
			add("types[%d]: %q is not a type name", i, t.Name)
			continue
		}

		if t.Package == "" {
			add("types[%d]: %s has no package", i, t.Name)
		} else if err := module.CheckImportPath(t.Package); err != nil {
			add("types[%d]: package: %v", i, err)
		}

		if _, ok := seen[t.String()]; ok {
			add("types[%d]: duplicate type %s", i, t)
		}
		seen[t.String()] = struct{}{}

		if t.ModPath != "" {
			if err := directive.ValidateModPath(t.ModPath); err != nil {
				add("types[%d]: %v", i, err)
			}
		}
	}

	return errors.Join(errs...)
}
