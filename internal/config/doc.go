// Package config loads quote.yaml, the optional project file that selects
// records without editing their doc comments.
//
// Example:
//
//	version: "1"
//	output: quote_gen.go
//	quote_import: quote-generator/quote
//	types:
//	  - example.com/geo.Unit
//	  - package: example.com/geo
//	    name: TestStruct
//	    mod_path: test
//
// Entries name their package, so an entry only applies when that package is
// part of the run.
package config
