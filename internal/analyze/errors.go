package analyze

import (
	"errors"
	"fmt"
	"go/token"
)

// ErrTypeNotFound is returned when a requested type is not declared in the package.
var ErrTypeNotFound = errors.New("type not found")

// UnsupportedDeclarationError reports a declaration that cannot be derived:
// anything other than a plain, non-generic struct without blank fields.
type UnsupportedDeclarationError struct {
	Name string         // Declared type name
	Kind string         // What was found instead, e.g. "interface" or "generic struct"
	Pos  token.Position // Declaration position
}

func (e *UnsupportedDeclarationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: cannot derive %s: %s is not supported", e.Pos, e.Name, e.Kind)
	}

	return fmt.Sprintf("cannot derive %s: %s is not supported", e.Name, e.Kind)
}
