package diagnostic

import (
	"fmt"

	"quote-generator/internal/common"
)

// Diagnostics holds the diagnostics of one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Pos is the source position the diagnostic refers to (if any).
	Pos string
	// Type names the record this relates to (if any).
	Type string
	// Suggestions are potential fixes.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, pos, typ string) {
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: code, Message: message, Pos: pos, Type: typ})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, pos, typ string) {
	d.Add(Diagnostic{Severity: DiagnosticInfo, Code: code, Message: message, Pos: pos, Type: typ})
}

// Merge appends the diagnostics of other, keeping their order.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Pos != "" {
		return d.Pos + ": " + msg
	}

	return msg
}
