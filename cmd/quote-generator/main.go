// Command quote-generator derives, for every marked struct of a package, a
// constructor and a ToTokens method that rebuilds a value as Go source.
//
// Usage:
//
//	quote-generator gen [packages]
//	quote-generator check [packages]
//	quote-generator shapes [packages]
//	quote-generator init
package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"quote-generator/internal/diagnostic"
)

func main() {
	if err := newCmdRoot().Execute(); err != nil {
		diagnostic.Fprint(os.Stderr, diagnostic.FromError(err), isTerminal(os.Stderr))
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
