package diagnostic

import (
	"errors"
	"strings"

	"quote-generator/internal/analyze"
	"quote-generator/internal/directive"
	"quote-generator/internal/gen"
	"quote-generator/internal/wrap"
)

// Diagnostic codes.
const (
	CodeUnsupportedDeclaration = "unsupported_declaration"
	CodeUnsupportedFieldType   = "unsupported_field_type"
	CodeInvalidDirective       = "invalid_directive"
	CodeNameConflict           = "name_conflict"
	CodeTypeNotFound           = "type_not_found"
	CodeInternal               = "internal"

	// Warnings and infos of a run that succeeded.
	CodePackageNotLoaded = "package_not_loaded"
	CodeNoRecords        = "no_records"
)

// FromError converts err into error diagnostics, one per joined error.
func FromError(err error) *Diagnostics {
	d := &Diagnostics{}
	if err == nil {
		return d
	}

	for _, leaf := range split(err) {
		d.Add(classify(leaf))
	}

	return d
}

func split(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, split(e)...)
	}

	return out
}

func classify(err error) Diagnostic {
	diag := Diagnostic{Severity: DiagnosticError, Code: CodeInternal, Message: err.Error()}

	var (
		decl     *analyze.UnsupportedDeclarationError
		field    *wrap.UnsupportedTypeError
		conflict *gen.ConflictError
	)

	switch {
	case errors.As(err, &decl):
		diag.Code = CodeUnsupportedDeclaration
		diag.Type = decl.Name
		if decl.Pos.IsValid() {
			diag.Pos = decl.Pos.String()
			diag.Message = strings.TrimPrefix(diag.Message, diag.Pos+": ")
		}
		diag.Suggestions = []string{"only plain non-generic struct types can be derived"}

	case errors.As(err, &field):
		diag.Code = CodeUnsupportedFieldType
		diag.Suggestions = []string{"give the field a named type with a hand-written ToTokens method"}

	case errors.As(err, &conflict):
		diag.Code = CodeNameConflict
		diag.Type = conflict.Type
		diag.Pos = conflict.Pos
		diag.Message = strings.TrimPrefix(diag.Message, conflict.Pos+": ")

	case errors.Is(err, directive.ErrInvalid):
		diag.Code = CodeInvalidDirective

	case errors.Is(err, analyze.ErrTypeNotFound):
		diag.Code = CodeTypeNotFound
	}

	return diag
}
