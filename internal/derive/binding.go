package derive

import (
	"fmt"
	"go/token"
	"go/types"
	"maps"
	"unicode"

	"quote-generator/internal/common"
)

// AssignBindings gives every field a local identifier. Named fields use
// their name with the leading initialism lowered, positional fields use
// field<position>. Clashes with Go keywords, predeclared identifiers, the
// receiver, the stream parameter, names in reserved and earlier bindings are
// resolved by appending the smallest free number.
func AssignBindings(fields []*Field, reserved map[string]struct{}) {
	taken := maps.Clone(reserved)
	if taken == nil {
		taken = make(map[string]struct{})
	}
	taken[Receiver] = struct{}{}
	taken[StreamParam] = struct{}{}

	for _, f := range fields {
		base := fmt.Sprintf("field%d", f.Descriptor.Position)
		if !f.Descriptor.IsPositional() {
			base = lowerInitialism(f.Descriptor.Name)
		}

		if isPredeclared(base) {
			taken[base] = struct{}{}
		}

		f.binding = common.NewStem(base, taken).Claim()
	}
}

func isPredeclared(name string) bool {
	return token.IsKeyword(name) || types.Universe.Lookup(name) != nil
}

// lowerInitialism lowers the leading upper-case run of name, keeping the
// last upper-case letter when it starts the next word:
// "Basic" -> "basic", "ID" -> "id", "URLPath" -> "urlPath".
func lowerInitialism(name string) string {
	runes := []rune(name)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
