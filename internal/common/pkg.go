package common

import (
	"path"
	"strings"

	"golang.org/x/mod/module"
)

// GeneratedHeader is the first line of every file written by quote-generator.
const GeneratedHeader = "// Code generated by quote-generator. DO NOT EDIT."

// UnknownStr is printed in place of values that could not be determined.
const UnknownStr = "unknown"

// PkgAlias returns the conventional package name of an import path: its
// last element, skipping a major version suffix ("example.com/geo/v2" and
// "gopkg.in/geo.v2" both give "geo"). Returns empty string if pkgPath is
// empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	if prefix, major, ok := module.SplitPathVersion(pkgPath); ok && major != "" {
		pkgPath = prefix
	}

	return path.Base(pkgPath)
}

// SplitPath splits an import path into its elements.
// Returns nil if pkgPath is empty.
func SplitPath(pkgPath string) []string {
	if pkgPath == "" {
		return nil
	}

	return strings.Split(pkgPath, "/")
}

// IsGenerated reports whether src starts with GeneratedHeader.
func IsGenerated(src []byte) bool {
	return strings.HasPrefix(string(src), GeneratedHeader)
}
