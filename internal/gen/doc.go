// Package gen emits, for every derived record of a package, a constructor
// and a ToTokens method into a single generated file.
//
// Generation uses text/template + go/format. Per package it:
//   - collects imports, starting with the quote runtime
//   - builds the field models of every record
//   - assigns local bindings that avoid every package-level name
//   - renders and formats the file
//
// Records are emitted in declaration order so output is byte-stable.
package gen
