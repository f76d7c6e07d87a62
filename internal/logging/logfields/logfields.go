// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// Package is the import path of a package being processed
	Package = "package"

	// Type is the name of a record type
	Type = "type"

	// Layout is the field layout of a record
	Layout = "layout"

	// Fields is a number of fields
	Fields = "fields"

	// ModPath is the qualifying path of emitted constructor calls
	ModPath = "modPath"

	// File is a file path
	File = "file"

	// Count is a generic counter
	Count = "count"
)
